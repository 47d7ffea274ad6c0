package repository

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SequenceRepositoryImpl struct {
	collection *mongo.Collection
}

// NewSequenceRepository 카운터 저장소 구현체 생성
func NewSequenceRepository(database *mongo.Database) repository.SequenceRepository {
	return &SequenceRepositoryImpl{collection: database.Collection(db.CollectionCounters)}
}

// Next 카운터를 원자적으로 1 증가시키고 새 값을 반환합니다. 첫 호출은 1입니다.
func (r *SequenceRepositoryImpl) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

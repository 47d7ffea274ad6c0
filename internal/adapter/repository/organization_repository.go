package repository

import (
	"context"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrganizationRepositoryImpl struct {
	collection *mongo.Collection
}

// NewOrganizationRepository 조직 저장소 구현체 생성
func NewOrganizationRepository(database *mongo.Database) repository.OrganizationRepository {
	return &OrganizationRepositoryImpl{collection: database.Collection(db.CollectionOrganizations)}
}

// Create 새 조직 저장. 조직 코드가 중복되면 ErrDuplicateKey를 반환합니다.
func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *model.Organization) error {
	if org.ID.IsZero() {
		org.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, org)
	return wrapWriteError(err)
}

// FindByID ID로 조회
func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error) {
	var org model.Organization
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&org); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &org, nil
}

// FindByIDs ID 목록으로 조회. 최근 생성 순으로 정렬합니다.
func (r *OrganizationRepositoryImpl) FindByIDs(ctx context.Context, ids []primitive.ObjectID, filter repository.OrganizationFilter) ([]*model.Organization, error) {
	query := bson.M{"_id": bson.M{"$in": ids}}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	orgs := []*model.Organization{}
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Update 부분 수정 후 수정된 문서를 반환합니다.
func (r *OrganizationRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, update repository.OrganizationUpdate) (*model.Organization, error) {
	set, err := FlattenSet(update.Profile)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *update.Name})
	}
	if update.PasswordHash != nil {
		set = append(set, bson.E{Key: "password", Value: *update.PasswordHash})
	}
	if update.Status != nil {
		set = append(set, bson.E{Key: "status", Value: *update.Status})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now().UTC()})

	return r.findOneAndSet(ctx, id, bson.D{{Key: "$set", Value: set}})
}

// SoftDelete 비활성화 처리
func (r *OrganizationRepositoryImpl) SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*model.Organization, error) {
	return r.findOneAndSet(ctx, id, bson.M{"$set": bson.M{
		"status":    model.OrganizationInactive,
		"deletedAt": at,
		"updatedAt": at,
	}})
}

// Delete 문서를 완전히 삭제합니다. 생성 취소에만 사용합니다.
func (r *OrganizationRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *OrganizationRepositoryImpl) findOneAndSet(ctx context.Context, id primitive.ObjectID, update interface{}) (*model.Organization, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var org model.Organization
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&org); err != nil {
		return nil, notFoundAsNil(wrapWriteError(err))
	}
	return &org, nil
}

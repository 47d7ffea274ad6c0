package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SuperAdminRepositoryImpl struct {
	collection *mongo.Collection
}

// NewSuperAdminRepository 슈퍼 관리자 저장소 구현체 생성
func NewSuperAdminRepository(database *mongo.Database) repository.SuperAdminRepository {
	return &SuperAdminRepositoryImpl{collection: database.Collection(db.CollectionSuperAdmins)}
}

// Create 새 슈퍼 관리자 저장
func (r *SuperAdminRepositoryImpl) Create(ctx context.Context, admin *model.SuperAdmin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, admin)
	return wrapWriteError(err)
}

// FindByID ID로 조회
func (r *SuperAdminRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.SuperAdmin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail 이메일로 조회
func (r *SuperAdminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.SuperAdmin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *SuperAdminRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*model.SuperAdmin, error) {
	var admin model.SuperAdmin
	if err := r.collection.FindOne(ctx, filter).Decode(&admin); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &admin, nil
}

// UpdateLastLogin 마지막 로그인 시각 기록
func (r *SuperAdminRepositoryImpl) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"last_login": at},
	})
	return err
}

// AddLinkedOrganization 연결 조직 추가. 대상이 없으면 에러를 반환합니다.
func (r *SuperAdminRepositoryImpl) AddLinkedOrganization(ctx context.Context, id primitive.ObjectID, link model.LinkedOrganization) error {
	result, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"linked_organizations": link},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("슈퍼 관리자 %s 없음", id.Hex())
	}
	return nil
}

// RenameLinkedOrganization 모든 슈퍼 관리자의 연결 조직 이름을 갱신합니다.
func (r *SuperAdminRepositoryImpl) RenameLinkedOrganization(ctx context.Context, orgID primitive.ObjectID, name string) error {
	filter := bson.M{"linked_organizations.organization_id": orgID}
	update := bson.M{"$set": bson.M{"linked_organizations.$[link].organization_name": name}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"link.organization_id": orgID}},
	})

	_, err := r.collection.UpdateMany(ctx, filter, update, opts)
	return err
}

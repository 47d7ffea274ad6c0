package repository

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrgAdminRepositoryImpl struct {
	collection *mongo.Collection
}

// NewOrgAdminRepository 조직 관리자 저장소 구현체 생성
func NewOrgAdminRepository(database *mongo.Database) repository.OrgAdminRepository {
	return &OrgAdminRepositoryImpl{collection: database.Collection(db.CollectionOrgAdmins)}
}

// Create 새 조직 관리자 저장
func (r *OrgAdminRepositoryImpl) Create(ctx context.Context, admin *model.OrgAdmin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, admin)
	return wrapWriteError(err)
}

// FindByID ID로 조회
func (r *OrgAdminRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.OrgAdmin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByOrganizationCode 조직 코드로 조회
func (r *OrgAdminRepositoryImpl) FindByOrganizationCode(ctx context.Context, code string) (*model.OrgAdmin, error) {
	return r.findOne(ctx, bson.M{"organization_code": code})
}

func (r *OrgAdminRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*model.OrgAdmin, error) {
	var admin model.OrgAdmin
	if err := r.collection.FindOne(ctx, filter).Decode(&admin); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &admin, nil
}

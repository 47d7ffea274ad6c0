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

type PayrollRepositoryImpl struct {
	collection *mongo.Collection
}

// NewPayrollRepository 급여 저장소 구현체 생성
func NewPayrollRepository(database *mongo.Database) repository.PayrollRepository {
	return &PayrollRepositoryImpl{collection: database.Collection(db.CollectionPayrolls)}
}

// Create 새 급여 기록 저장
func (r *PayrollRepositoryImpl) Create(ctx context.Context, payroll *model.Payroll) error {
	if payroll.ID.IsZero() {
		payroll.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, payroll)
	return wrapWriteError(err)
}

// FindByID ID로 조회. 삭제된 기록도 반환합니다.
func (r *PayrollRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payroll, error) {
	var payroll model.Payroll
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payroll); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &payroll, nil
}

// FindByOrganization 조직의 급여 목록. 최근 생성 순입니다.
func (r *PayrollRepositoryImpl) FindByOrganization(ctx context.Context, orgID primitive.ObjectID, filter repository.PayrollFilter) ([]*model.Payroll, error) {
	query := payrollListQuery(orgID, filter)

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	payrolls := []*model.Payroll{}
	if err := cursor.All(ctx, &payrolls); err != nil {
		return nil, err
	}
	return payrolls, nil
}

func payrollListQuery(orgID primitive.ObjectID, filter repository.PayrollFilter) bson.M {
	query := bson.M{"organization_id": orgID}
	if !filter.IncludeDeleted {
		query["isDeleted"] = bson.M{"$ne": true}
	}
	if filter.Status != nil {
		query["payroll_cycle.payroll_status"] = *filter.Status
	}
	return query
}

// Update 상세 섹션을 병합하고 감사 기록을 추가합니다.
func (r *PayrollRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, details model.PayrollDetails, entry model.AuditEntry) (*model.Payroll, error) {
	set, err := FlattenSet(details)
	if err != nil {
		return nil, err
	}
	set = append(set, bson.E{Key: "updatedAt", Value: entry.At})

	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$set", Value: set},
		{Key: "$push", Value: bson.M{"audit_trail": entry}},
	})
}

// SoftDelete 삭제 표시와 함께 상태를 Cancelled로 바꿉니다.
func (r *PayrollRepositoryImpl) SoftDelete(ctx context.Context, id primitive.ObjectID, deletedBy primitive.ObjectID, at time.Time, entry model.AuditEntry) (*model.Payroll, error) {
	return r.findOneAndUpdate(ctx, id, bson.D{
		{Key: "$set", Value: bson.M{
			"isDeleted":                    true,
			"deletedAt":                    at,
			"deletedBy":                    deletedBy,
			"payroll_cycle.payroll_status": model.PayrollCancelled,
			"updatedAt":                    at,
		}},
		{Key: "$push", Value: bson.M{"audit_trail": entry}},
	})
}

func (r *PayrollRepositoryImpl) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.D) (*model.Payroll, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var payroll model.Payroll
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&payroll); err != nil {
		return nil, notFoundAsNil(err)
	}
	return &payroll, nil
}

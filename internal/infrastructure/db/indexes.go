package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func indexPlan() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: CollectionSuperAdmins,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "linked_organizations.organization_id", Value: 1}}},
			},
		},
		{
			collection: CollectionOrganizations,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "organization_code", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "status", Value: 1}}},
			},
		},
		{
			collection: CollectionOrgAdmins,
			models: []mongo.IndexModel{
				// 조직 코드당 관리자 한 명
				{Keys: bson.D{{Key: "organization_code", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "organization_id", Value: 1}}},
			},
		},
		{
			collection: CollectionPayrolls,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}}},
				{Keys: bson.D{{Key: "employee_id", Value: 1}}},
			},
		},
	}
}

// EnsureIndexes 필요한 인덱스를 생성합니다. 이미 있으면 아무것도 하지 않습니다.
func EnsureIndexes(ctx context.Context, database *mongo.Database, logger *zap.Logger) error {
	for _, plan := range indexPlan() {
		names, err := database.Collection(plan.collection).Indexes().CreateMany(ctx, plan.models)
		if err != nil {
			return fmt.Errorf("%s 인덱스 생성 실패: %w", plan.collection, err)
		}
		logger.Debug("인덱스 확인", zap.String("collection", plan.collection), zap.Strings("indexes", names))
	}
	return nil
}

// Package mocks provides testify mocks of the domain repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SuperAdminRepository struct {
	mock.Mock
}

func (m *SuperAdminRepository) Create(ctx context.Context, admin *model.SuperAdmin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *SuperAdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.SuperAdmin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SuperAdmin), args.Error(1)
}

func (m *SuperAdminRepository) FindByEmail(ctx context.Context, email string) (*model.SuperAdmin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SuperAdmin), args.Error(1)
}

func (m *SuperAdminRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *SuperAdminRepository) AddLinkedOrganization(ctx context.Context, id primitive.ObjectID, link model.LinkedOrganization) error {
	args := m.Called(ctx, id, link)
	return args.Error(0)
}

func (m *SuperAdminRepository) RenameLinkedOrganization(ctx context.Context, orgID primitive.ObjectID, name string) error {
	args := m.Called(ctx, orgID, name)
	return args.Error(0)
}

type OrganizationRepository struct {
	mock.Mock
}

func (m *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *OrganizationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *OrganizationRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID, filter repository.OrganizationFilter) ([]*model.Organization, error) {
	args := m.Called(ctx, ids, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Organization), args.Error(1)
}

func (m *OrganizationRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.OrganizationUpdate) (*model.Organization, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *OrganizationRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time) (*model.Organization, error) {
	args := m.Called(ctx, id, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *OrganizationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OrgAdminRepository struct {
	mock.Mock
}

func (m *OrgAdminRepository) Create(ctx context.Context, admin *model.OrgAdmin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *OrgAdminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.OrgAdmin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrgAdmin), args.Error(1)
}

func (m *OrgAdminRepository) FindByOrganizationCode(ctx context.Context, code string) (*model.OrgAdmin, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrgAdmin), args.Error(1)
}

type PayrollRepository struct {
	mock.Mock
}

func (m *PayrollRepository) Create(ctx context.Context, payroll *model.Payroll) error {
	args := m.Called(ctx, payroll)
	return args.Error(0)
}

func (m *PayrollRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payroll, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payroll), args.Error(1)
}

func (m *PayrollRepository) FindByOrganization(ctx context.Context, orgID primitive.ObjectID, filter repository.PayrollFilter) ([]*model.Payroll, error) {
	args := m.Called(ctx, orgID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payroll), args.Error(1)
}

func (m *PayrollRepository) Update(ctx context.Context, id primitive.ObjectID, details model.PayrollDetails, entry model.AuditEntry) (*model.Payroll, error) {
	args := m.Called(ctx, id, details, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payroll), args.Error(1)
}

func (m *PayrollRepository) SoftDelete(ctx context.Context, id primitive.ObjectID, deletedBy primitive.ObjectID, at time.Time, entry model.AuditEntry) (*model.Payroll, error) {
	args := m.Called(ctx, id, deletedBy, at, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payroll), args.Error(1)
}

type SequenceRepository struct {
	mock.Mock
}

func (m *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type CacheRepository struct {
	mock.Mock
}

func (m *CacheRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *CacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *CacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *CacheRepository) IsNotFound(err error) bool {
	args := m.Called(err)
	return args.Bool(0)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event model.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

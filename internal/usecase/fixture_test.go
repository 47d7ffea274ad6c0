package usecase_test

import (
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository/mocks"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/service"
	"github.com/wekeepgrowing/hrms-backend/internal/infrastructure/crypto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
)

const testSecret = "test-secret"

type fixture struct {
	logger        *zap.Logger
	superAdmins   *mocks.SuperAdminRepository
	organizations *mocks.OrganizationRepository
	orgAdmins     *mocks.OrgAdminRepository
	payrolls      *mocks.PayrollRepository
	sequences     *mocks.SequenceRepository
	events        *mocks.EventPublisher
	hasher        *crypto.BcryptHasher
	tokens        interfaces.TokenUseCase
	resolver      *service.AccessResolver
}

func newFixture() *fixture {
	hasher, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	f := &fixture{
		logger:        zap.NewNop(),
		superAdmins:   new(mocks.SuperAdminRepository),
		organizations: new(mocks.OrganizationRepository),
		orgAdmins:     new(mocks.OrgAdminRepository),
		payrolls:      new(mocks.PayrollRepository),
		sequences:     new(mocks.SequenceRepository),
		events:        new(mocks.EventPublisher),
		hasher:        hasher,
	}
	f.tokens = usecase.NewTokenUseCase(f.logger, usecase.TokenConfig{Secret: testSecret}, nil)
	f.resolver = service.NewAccessResolver(f.superAdmins, f.organizations, f.orgAdmins, nil, f.logger)
	f.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func (f *fixture) superAdminUseCase() interfaces.SuperAdminUseCase {
	return usecase.NewSuperAdminUseCase(f.logger, f.superAdmins, f.hasher, f.tokens, f.resolver)
}

func (f *fixture) organizationUseCase() interfaces.OrganizationUseCase {
	return usecase.NewOrganizationUseCase(f.logger, f.organizations, f.superAdmins, f.sequences, f.events, f.hasher, f.tokens, f.resolver)
}

func (f *fixture) orgAdminUseCase() interfaces.OrgAdminUseCase {
	return usecase.NewOrgAdminUseCase(f.logger, f.orgAdmins, f.organizations, f.events, f.hasher, f.tokens, f.resolver)
}

func (f *fixture) payrollUseCase() interfaces.PayrollUseCase {
	return usecase.NewPayrollUseCase(f.logger, f.payrolls, f.events, f.resolver)
}

// givenSuperAdmin registers a super admin linked to orgIDs with the resolver.
func (f *fixture) givenSuperAdmin(orgIDs ...primitive.ObjectID) (*model.SuperAdmin, model.Actor) {
	admin := &model.SuperAdmin{
		ID:       primitive.NewObjectID(),
		Username: "root_admin",
		Email:    "root@example.com",
		Role:     model.RoleSuperAdmin,
		Status:   model.SuperAdminActive,
	}
	for _, id := range orgIDs {
		admin.LinkedOrganizations = append(admin.LinkedOrganizations, model.LinkedOrganization{
			OrganizationID: id,
			AssignedDate:   time.Now(),
			RoleInOrg:      model.LinkRoleAdmin,
		})
	}
	f.superAdmins.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)
	return admin, model.Actor{ID: admin.ID.Hex(), Role: model.RoleSuperAdmin, Email: admin.Email}
}

// givenOrganization registers an active organization with the resolver.
func (f *fixture) givenOrganization() (*model.Organization, model.Actor) {
	org := &model.Organization{
		ID:               primitive.NewObjectID(),
		OrganizationCode: "ORG-1001",
		Name:             "Acme",
		Status:           model.OrganizationActive,
	}
	f.organizations.On("FindByID", mock.Anything, org.ID).Return(org, nil)
	return org, model.Actor{ID: org.ID.Hex(), Role: model.RoleOrganization, OrganizationID: org.ID.Hex()}
}

// givenOrgAdmin registers an organization admin linked to orgID.
func (f *fixture) givenOrgAdmin(orgID primitive.ObjectID) (*model.OrgAdmin, model.Actor) {
	admin := &model.OrgAdmin{
		ID:               primitive.NewObjectID(),
		Name:             "Ops",
		OrganizationCode: "ORG-1001",
		OrganizationID:   orgID,
		Role:             model.RoleOrgAdmin,
	}
	f.orgAdmins.On("FindByID", mock.Anything, admin.ID).Return(admin, nil)
	f.organizations.On("FindByID", mock.Anything, orgID).Return(&model.Organization{
		ID:               orgID,
		OrganizationCode: admin.OrganizationCode,
		Status:           model.OrganizationActive,
	}, nil)
	return admin, model.Actor{ID: admin.ID.Hex(), Role: model.RoleOrgAdmin, OrganizationID: orgID.Hex()}
}

func strPtr(s string) *string { return &s }

func amountPtr(s string) *model.Amount {
	a := model.MustAmount(s)
	return &a
}

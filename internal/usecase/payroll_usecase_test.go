package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
)

func newPayroll(orgID primitive.ObjectID) *model.Payroll {
	status := model.PayrollDraft
	return &model.Payroll{
		ID:             primitive.NewObjectID(),
		OrganizationID: orgID,
		EmployeeID:     primitive.NewObjectID(),
		PayrollDetails: model.PayrollDetails{
			PayrollCycle: &model.PayrollCycle{PayrollStatus: &status},
		},
	}
}

func TestPayrollUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to draft and records the creator", func(t *testing.T) {
		f := newFixture()
		org, actor := f.givenOrganization()
		employeeID := primitive.NewObjectID()

		f.payrolls.On("Create", mock.Anything, mock.AnythingOfType("*model.Payroll")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Payroll).ID = primitive.NewObjectID()
		}).Return(nil)

		payroll, err := f.payrollUseCase().Create(ctx, actor, dto.CreatePayrollRequest{
			OrganizationID: org.ID.Hex(),
			EmployeeID:     employeeID.Hex(),
			PayrollDetails: model.PayrollDetails{
				Earnings: &model.Earnings{Basic: amountPtr("50000.00")},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, org.ID, payroll.OrganizationID)
		assert.Equal(t, employeeID, payroll.EmployeeID)
		assert.Equal(t, model.PayrollDraft, payroll.Status())
		require.Len(t, payroll.AuditTrail, 1)
		assert.Equal(t, model.AuditActionCreated, payroll.AuditTrail[0].Action)
		assert.Equal(t, org.ID, payroll.AuditTrail[0].ActorID)
		assert.False(t, payroll.IsDeleted)
	})

	t.Run("foreign organization is forbidden and nothing is stored", func(t *testing.T) {
		f := newFixture()
		_, actor := f.givenOrganization()

		_, err := f.payrollUseCase().Create(ctx, actor, dto.CreatePayrollRequest{
			OrganizationID: primitive.NewObjectID().Hex(),
			EmployeeID:     primitive.NewObjectID().Hex(),
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
		f.payrolls.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("org admins cannot create", func(t *testing.T) {
		f := newFixture()
		orgID := primitive.NewObjectID()
		_, actor := f.givenOrgAdmin(orgID)

		_, err := f.payrollUseCase().Create(ctx, actor, dto.CreatePayrollRequest{
			OrganizationID: orgID.Hex(),
			EmployeeID:     primitive.NewObjectID().Hex(),
		})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
		f.orgAdmins.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing employee", func(t *testing.T) {
		f := newFixture()
		org, actor := f.givenOrganization()

		_, err := f.payrollUseCase().Create(ctx, actor, dto.CreatePayrollRequest{OrganizationID: org.ID.Hex()})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture()
		org, actor := f.givenOrganization()
		status := model.PayrollStatus("Paid")

		_, err := f.payrollUseCase().Create(ctx, actor, dto.CreatePayrollRequest{
			OrganizationID: org.ID.Hex(),
			EmployeeID:     primitive.NewObjectID().Hex(),
			PayrollDetails: model.PayrollDetails{PayrollCycle: &model.PayrollCycle{PayrollStatus: &status}},
		})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})
}

func TestPayrollUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("linked super admin reads", func(t *testing.T) {
		f := newFixture()
		orgID := primitive.NewObjectID()
		_, actor := f.givenSuperAdmin(orgID)
		payroll := newPayroll(orgID)
		f.payrolls.On("FindByID", mock.Anything, payroll.ID).Return(payroll, nil)

		got, err := f.payrollUseCase().Get(ctx, actor, payroll.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, payroll.ID, got.ID)
	})

	t.Run("other organization is forbidden", func(t *testing.T) {
		f := newFixture()
		_, actor := f.givenOrganization()
		payroll := newPayroll(primitive.NewObjectID())
		f.payrolls.On("FindByID", mock.Anything, payroll.ID).Return(payroll, nil)

		_, err := f.payrollUseCase().Get(ctx, actor, payroll.ID.Hex())
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
	})

	t.Run("missing payroll", func(t *testing.T) {
		f := newFixture()
		_, actor := f.givenOrganization()
		missing := primitive.NewObjectID()
		f.payrolls.On("FindByID", mock.Anything, missing).Return(nil, nil)

		_, err := f.payrollUseCase().Get(ctx, actor, missing.Hex())
		assert.True(t, apperrors.HasCode(err, apperrors.ErrNotFound))
	})

	t.Run("org admin with stale organization claim", func(t *testing.T) {
		f := newFixture()
		orgID := primitive.NewObjectID()
		_, actor := f.givenOrgAdmin(orgID)
		actor.OrganizationID = primitive.NewObjectID().Hex()

		_, err := f.payrollUseCase().Get(ctx, actor, primitive.NewObjectID().Hex())
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
		f.payrolls.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestPayrollUseCase_ListByOrganization(t *testing.T) {
	ctx := context.Background()

	t.Run("org admin lists own organization", func(t *testing.T) {
		f := newFixture()
		orgID := primitive.NewObjectID()
		_, actor := f.givenOrgAdmin(orgID)
		filter := repository.PayrollFilter{}
		f.payrolls.On("FindByOrganization", mock.Anything, orgID, filter).Return([]*model.Payroll{newPayroll(orgID), newPayroll(orgID)}, nil)

		result, err := f.payrollUseCase().ListByOrganization(ctx, actor, orgID.Hex(), filter)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		f := newFixture()
		org, actor := f.givenOrganization()
		f.payrolls.On("FindByOrganization", mock.Anything, org.ID, mock.Anything).Return(nil, nil)

		result, err := f.payrollUseCase().ListByOrganization(ctx, actor, org.ID.Hex(), repository.PayrollFilter{})
		require.NoError(t, err)
		assert.NotNil(t, result.Payrolls)
		assert.Equal(t, 0, result.Total)
	})

	t.Run("other organization is forbidden", func(t *testing.T) {
		f := newFixture()
		_, actor := f.givenOrganization()

		_, err := f.payrollUseCase().ListByOrganization(ctx, actor, primitive.NewObjectID().Hex(), repository.PayrollFilter{})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
	})

	t.Run("unknown status filter", func(t *testing.T) {
		f := newFixture()
		org, actor := f.givenOrganization()
		status := model.PayrollStatus("Paid")

		_, err := f.payrollUseCase().ListByOrganization(ctx, actor, org.ID.Hex(), repository.PayrollFilter{Status: &status})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})
}

func TestPayrollUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("records updated sections", func(t *testing.T) {
		f := newFixture()
		org, actor := f.givenOrganization()
		payroll := newPayroll(org.ID)
		f.payrolls.On("FindByID", mock.Anything, payroll.ID).Return(payroll, nil)

		details := model.PayrollDetails{
			Deductions: &model.Deductions{TDS: amountPtr("1200")},
			Metadata:   map[string]interface{}{"source": "import"},
		}
		f.payrolls.On("Update", mock.Anything, payroll.ID, details, mock.MatchedBy(func(e model.AuditEntry) bool {
			return e.Action == model.AuditActionUpdated &&
				assert.ObjectsAreEqual([]string{"deductions", "metadata"}, e.Fields)
		})).Return(payroll, nil).Once()

		_, err := f.payrollUseCase().Update(ctx, actor, payroll.ID.Hex(), dto.UpdatePayrollRequest{PayrollDetails: details})
		require.NoError(t, err)
		f.payrolls.AssertExpectations(t)
	})

	t.Run("empty body", func(t *testing.T) {
		f := newFixture()
		_, actor := f.givenOrganization()

		_, err := f.payrollUseCase().Update(ctx, actor, primitive.NewObjectID().Hex(), dto.UpdatePayrollRequest{})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})

	t.Run("other organization is forbidden", func(t *testing.T) {
		f := newFixture()
		_, actor := f.givenOrganization()
		payroll := newPayroll(primitive.NewObjectID())
		f.payrolls.On("FindByID", mock.Anything, payroll.ID).Return(payroll, nil)

		_, err := f.payrollUseCase().Update(ctx, actor, payroll.ID.Hex(), dto.UpdatePayrollRequest{
			PayrollDetails: model.PayrollDetails{Metadata: map[string]interface{}{"k": "v"}},
		})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
		f.payrolls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPayrollUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("org admin soft deletes", func(t *testing.T) {
		f := newFixture()
		orgID := primitive.NewObjectID()
		admin, actor := f.givenOrgAdmin(orgID)
		payroll := newPayroll(orgID)
		f.payrolls.On("FindByID", mock.Anything, payroll.ID).Return(payroll, nil)

		now := time.Now()
		deleted := *payroll
		deleted.IsDeleted = true
		deleted.DeletedAt = &now
		deleted.DeletedBy = &admin.ID
		f.payrolls.On("SoftDelete", mock.Anything, payroll.ID, admin.ID, mock.Anything, mock.MatchedBy(func(e model.AuditEntry) bool {
			return e.Action == model.AuditActionDeleted && e.ActorRole == model.RoleOrgAdmin
		})).Return(&deleted, nil).Once()

		result, err := f.payrollUseCase().Delete(ctx, actor, payroll.ID.Hex())
		require.NoError(t, err)
		assert.False(t, result.AlreadyDeleted)
		assert.True(t, result.Payroll.IsDeleted)
		f.payrolls.AssertExpectations(t)
	})

	t.Run("already deleted is a no-op", func(t *testing.T) {
		f := newFixture()
		org, actor := f.givenOrganization()
		payroll := newPayroll(org.ID)
		payroll.IsDeleted = true
		f.payrolls.On("FindByID", mock.Anything, payroll.ID).Return(payroll, nil)

		result, err := f.payrollUseCase().Delete(ctx, actor, payroll.ID.Hex())
		require.NoError(t, err)
		assert.True(t, result.AlreadyDeleted)
		f.payrolls.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("super admins cannot delete", func(t *testing.T) {
		f := newFixture()
		orgID := primitive.NewObjectID()
		_, actor := f.givenSuperAdmin(orgID)

		_, err := f.payrollUseCase().Delete(ctx, actor, primitive.NewObjectID().Hex())
		assert.True(t, apperrors.HasCode(err, apperrors.ErrUnauthorized))
	})
}

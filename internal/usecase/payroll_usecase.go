package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/service"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.uber.org/zap"
)

// 급여 에러 메시지
const (
	MsgPayrollFieldsRequired = "Organization ID and employee ID are required"
	MsgInvalidEmployeeID     = "Invalid employee ID"
	MsgInvalidPayrollID      = "Invalid payroll ID"
	MsgInvalidPayrollStatus  = "Invalid payroll status"
	MsgPayrollNotFound       = "Payroll not found"
	MsgPayrollForeignOrg     = "Payroll must belong to your organization"
	MsgPayrollViewDenied     = "Not authorized to view this payroll"
	MsgPayrollListDenied     = "Not authorized to view this organization payrolls"
	MsgPayrollUpdateDenied   = "Not authorized to update payroll"
	MsgPayrollDeleteDenied   = "Not authorized to delete payroll"
)

// PayrollUseCase 급여 유스케이스 구현체
type PayrollUseCase struct {
	logger      *zap.Logger
	payrollRepo repository.PayrollRepository
	events      repository.EventPublisher
	resolver    *service.AccessResolver
}

// NewPayrollUseCase 새 급여 유스케이스 생성
func NewPayrollUseCase(
	logger *zap.Logger,
	payrollRepo repository.PayrollRepository,
	events repository.EventPublisher,
	resolver *service.AccessResolver,
) interfaces.PayrollUseCase {
	return &PayrollUseCase{
		logger:      logger,
		payrollRepo: payrollRepo,
		events:      events,
		resolver:    resolver,
	}
}

// Create 조직이 자신의 급여 기록을 생성합니다.
func (uc *PayrollUseCase) Create(ctx context.Context, actor model.Actor, req dto.CreatePayrollRequest) (*model.Payroll, error) {
	// 1. 역할 검사
	if err := uc.resolver.CheckRole(actor, service.ResourcePayroll, service.ActionCreate); err != nil {
		return nil, err
	}

	// 2. 필수 항목 확인
	if strings.TrimSpace(req.OrganizationID) == "" || strings.TrimSpace(req.EmployeeID) == "" {
		return nil, apperrors.InvalidArgument(MsgPayrollFieldsRequired)
	}
	orgID, ok := parseObjectID(req.OrganizationID)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidOrganizationID)
	}
	employeeID, ok := parseObjectID(req.EmployeeID)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidEmployeeID)
	}

	// 3. 존재 검사 및 소유권 검사
	scope, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := scope.Require(orgID, MsgPayrollForeignOrg); err != nil {
		uc.logger.Warn("다른 조직의 급여 생성 시도",
			zap.String("actor_id", actor.ID),
			zap.String("organization_id", req.OrganizationID))
		return nil, err
	}

	details, err := withDefaultStatus(req.PayrollDetails)
	if err != nil {
		return nil, err
	}

	// 4. 저장
	now := time.Now().UTC()
	payroll := &model.Payroll{
		OrganizationID: orgID,
		EmployeeID:     employeeID,
		PayrollDetails: details,
		AuditTrail: []model.AuditEntry{
			newAuditEntry(model.AuditActionCreated, scope, now, nil),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.payrollRepo.Create(ctx, payroll); err != nil {
		uc.logger.Error("급여 저장 실패", zap.String("organization_id", req.OrganizationID), zap.Error(err))
		return nil, apperrors.Internal("Failed to create payroll", err)
	}

	uc.logger.Info("급여 생성",
		zap.String("payroll_id", payroll.ID.Hex()),
		zap.String("organization_id", orgID.Hex()),
		zap.String("employee_id", employeeID.Hex()))

	publishEvent(ctx, uc.logger, uc.events, model.EventPayrollCreated, actor, payroll.ID, orgID)
	return payroll, nil
}

// Get 급여 조회. 삭제된 기록도 반환합니다.
func (uc *PayrollUseCase) Get(ctx context.Context, actor model.Actor, payrollID string) (*model.Payroll, error) {
	scope, err := uc.resolver.Authorize(ctx, actor, service.ResourcePayroll, service.ActionRead)
	if err != nil {
		return nil, err
	}

	payroll, err := uc.loadPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if err := scope.Require(payroll.OrganizationID, MsgPayrollViewDenied); err != nil {
		return nil, err
	}

	return payroll, nil
}

// ListByOrganization 조직의 급여 목록
func (uc *PayrollUseCase) ListByOrganization(ctx context.Context, actor model.Actor, organizationID string, filter repository.PayrollFilter) (*dto.PayrollListResult, error) {
	scope, err := uc.resolver.Authorize(ctx, actor, service.ResourcePayroll, service.ActionList)
	if err != nil {
		return nil, err
	}

	orgID, ok := parseObjectID(organizationID)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidOrganizationID)
	}
	if err := scope.Require(orgID, MsgPayrollListDenied); err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.InvalidArgument(MsgInvalidPayrollStatus)
	}

	payrolls, err := uc.payrollRepo.FindByOrganization(ctx, orgID, filter)
	if err != nil {
		uc.logger.Error("급여 목록 조회 실패", zap.String("organization_id", organizationID), zap.Error(err))
		return nil, apperrors.Internal("Failed to list payrolls", err)
	}
	if payrolls == nil {
		payrolls = []*model.Payroll{}
	}

	return &dto.PayrollListResult{Total: len(payrolls), Payrolls: payrolls}, nil
}

// Update 급여 상세 섹션 부분 수정
func (uc *PayrollUseCase) Update(ctx context.Context, actor model.Actor, payrollID string, req dto.UpdatePayrollRequest) (*model.Payroll, error) {
	if err := uc.resolver.CheckRole(actor, service.ResourcePayroll, service.ActionUpdate); err != nil {
		return nil, err
	}
	if req.PayrollDetails.IsZero() {
		return nil, apperrors.InvalidArgument(MsgNoDataToUpdate)
	}

	scope, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	payroll, err := uc.loadPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if err := scope.Require(payroll.OrganizationID, MsgPayrollUpdateDenied); err != nil {
		return nil, err
	}

	if cycle := req.PayrollCycle; cycle != nil && cycle.PayrollStatus != nil && !cycle.PayrollStatus.Valid() {
		return nil, apperrors.InvalidArgument(MsgInvalidPayrollStatus)
	}

	entry := newAuditEntry(model.AuditActionUpdated, scope, time.Now().UTC(), req.Sections())
	updated, err := uc.payrollRepo.Update(ctx, payroll.ID, req.PayrollDetails, entry)
	if err != nil {
		uc.logger.Error("급여 수정 실패", zap.String("payroll_id", payrollID), zap.Error(err))
		return nil, apperrors.Internal("Failed to update payroll", err)
	}
	if updated == nil {
		return nil, apperrors.NotFound(MsgPayrollNotFound)
	}

	uc.logger.Info("급여 수정",
		zap.String("payroll_id", payrollID),
		zap.Strings("sections", entry.Fields))

	publishEvent(ctx, uc.logger, uc.events, model.EventPayrollUpdated, actor, updated.ID, updated.OrganizationID)
	return updated, nil
}

// Delete 급여 소프트 삭제. 이미 삭제된 기록은 변경 없이 성공합니다.
func (uc *PayrollUseCase) Delete(ctx context.Context, actor model.Actor, payrollID string) (*dto.DeletePayrollResult, error) {
	scope, err := uc.resolver.Authorize(ctx, actor, service.ResourcePayroll, service.ActionDelete)
	if err != nil {
		return nil, err
	}

	payroll, err := uc.loadPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if err := scope.Require(payroll.OrganizationID, MsgPayrollDeleteDenied); err != nil {
		return nil, err
	}
	if payroll.IsDeleted {
		return &dto.DeletePayrollResult{Payroll: payroll, AlreadyDeleted: true}, nil
	}

	now := time.Now().UTC()
	entry := newAuditEntry(model.AuditActionDeleted, scope, now, nil)
	deleted, err := uc.payrollRepo.SoftDelete(ctx, payroll.ID, scope.ActorID, now, entry)
	if err != nil {
		uc.logger.Error("급여 삭제 실패", zap.String("payroll_id", payrollID), zap.Error(err))
		return nil, apperrors.Internal("Failed to delete payroll", err)
	}
	if deleted == nil {
		return nil, apperrors.NotFound(MsgPayrollNotFound)
	}

	uc.logger.Info("급여 삭제",
		zap.String("payroll_id", payrollID),
		zap.String("actor_id", actor.ID))

	publishEvent(ctx, uc.logger, uc.events, model.EventPayrollDeleted, actor, deleted.ID, deleted.OrganizationID)
	return &dto.DeletePayrollResult{Payroll: deleted}, nil
}

func (uc *PayrollUseCase) loadPayroll(ctx context.Context, payrollID string) (*model.Payroll, error) {
	id, ok := parseObjectID(payrollID)
	if !ok {
		return nil, apperrors.InvalidArgument(MsgInvalidPayrollID)
	}

	payroll, err := uc.payrollRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("급여 조회 실패", zap.String("payroll_id", payrollID), zap.Error(err))
		return nil, apperrors.Internal("Failed to load payroll", err)
	}
	if payroll == nil {
		return nil, apperrors.NotFound(MsgPayrollNotFound)
	}
	return payroll, nil
}

// withDefaultStatus 상태가 없으면 Draft로 채웁니다. 요청 구조체는 변경하지 않습니다.
func withDefaultStatus(details model.PayrollDetails) (model.PayrollDetails, error) {
	cycle := model.PayrollCycle{}
	if details.PayrollCycle != nil {
		cycle = *details.PayrollCycle
	}

	if cycle.PayrollStatus == nil {
		status := model.PayrollDraft
		cycle.PayrollStatus = &status
	} else if !cycle.PayrollStatus.Valid() {
		return details, apperrors.InvalidArgument(MsgInvalidPayrollStatus)
	}

	details.PayrollCycle = &cycle
	return details, nil
}

func newAuditEntry(action string, scope *service.Scope, at time.Time, fields []string) model.AuditEntry {
	return model.AuditEntry{
		Action:    action,
		ActorID:   scope.ActorID,
		ActorRole: scope.Actor.Role,
		Fields:    fields,
		At:        at,
	}
}

package service

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Resource 권한 판단 대상 리소스 종류
type Resource string

const (
	ResourceOrganization Resource = "organization"
	ResourceOrgAdmin     Resource = "org_admin"
	ResourcePayroll      Resource = "payroll"
)

// Action 리소스에 대한 작업 종류
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

// 에러 메시지
const (
	MsgRoleDenied           = "Access denied. You are not allowed to perform this action."
	MsgSuperAdminNotFound   = "Super admin not found"
	MsgOrganizationNotFound = "Organization not found"
	MsgOrgAdminNotFound     = "Organization admin not found"
	MsgOrganizationMismatch = "Token organization does not match this admin"
	MsgUnknownRole          = "Unknown actor role"
)

// Policy 리소스/작업별 허용 역할 표.
// 작업 항목이 없으면 거부하고, 빈 목록이면 역할 검사를 생략합니다.
type Policy map[Resource]map[Action][]model.Role

// DefaultPolicy 기본 권한 표
func DefaultPolicy() Policy {
	return Policy{
		ResourceOrganization: {
			ActionCreate: {model.RoleSuperAdmin},
			ActionRead:   {model.RoleSuperAdmin},
			ActionUpdate: {model.RoleSuperAdmin},
			ActionDelete: {model.RoleSuperAdmin},
			ActionList:   {},
		},
		ResourceOrgAdmin: {
			ActionCreate: {model.RoleSuperAdmin},
		},
		ResourcePayroll: {
			ActionCreate: {model.RoleOrganization},
			ActionRead:   {model.RoleSuperAdmin, model.RoleOrganization, model.RoleOrgAdmin},
			ActionUpdate: {model.RoleOrganization},
			ActionDelete: {model.RoleOrganization, model.RoleOrgAdmin},
			ActionList:   {model.RoleSuperAdmin, model.RoleOrganization, model.RoleOrgAdmin},
		},
	}
}

// Allows 역할 검사 통과 여부
func (p Policy) Allows(role model.Role, resource Resource, action Action) bool {
	roles, ok := p[resource][action]
	if !ok {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Scope 존재 검사를 통과한 행위자와 접근 가능한 조직 목록
type Scope struct {
	Actor   model.Actor
	ActorID primitive.ObjectID

	// 역할에 맞는 항목만 채워집니다. 조직 관리자는 연결된 조직도 함께 채워집니다.
	SuperAdmin   *model.SuperAdmin
	Organization *model.Organization
	OrgAdmin     *model.OrgAdmin

	OrganizationIDs []primitive.ObjectID
}

// Covers 조직이 행위자의 접근 범위에 포함되는지 확인합니다.
func (s *Scope) Covers(orgID primitive.ObjectID) bool {
	for _, id := range s.OrganizationIDs {
		if id == orgID {
			return true
		}
	}
	return false
}

// Require 소유권 검사. 범위 밖이면 message로 403을 반환합니다.
func (s *Scope) Require(orgID primitive.ObjectID, message string) error {
	if !s.Covers(orgID) {
		return apperrors.Unauthorized(message)
	}
	return nil
}

// AccessResolver 역할 검사 → 존재 검사 → 소유권 검사 순서로 접근을 판단합니다.
// 소유권 검사는 Resolve가 돌려준 Scope로 호출자가 수행합니다.
type AccessResolver struct {
	superAdmins   repository.SuperAdminRepository
	organizations repository.OrganizationRepository
	orgAdmins     repository.OrgAdminRepository
	policy        Policy
	logger        *zap.Logger
}

// NewAccessResolver 접근 판단기 생성
func NewAccessResolver(
	superAdmins repository.SuperAdminRepository,
	organizations repository.OrganizationRepository,
	orgAdmins repository.OrgAdminRepository,
	policy Policy,
	logger *zap.Logger,
) *AccessResolver {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &AccessResolver{
		superAdmins:   superAdmins,
		organizations: organizations,
		orgAdmins:     orgAdmins,
		policy:        policy,
		logger:        logger,
	}
}

// CheckRole 역할 검사. 저장소를 조회하지 않습니다.
func (r *AccessResolver) CheckRole(actor model.Actor, resource Resource, action Action) error {
	if !r.policy.Allows(actor.Role, resource, action) {
		r.logger.Debug("역할 검사 거부",
			zap.String("actor_id", actor.ID),
			zap.String("role", actor.Role.String()),
			zap.String("resource", string(resource)),
			zap.String("action", string(action)))
		return apperrors.Unauthorized(MsgRoleDenied)
	}
	return nil
}

// Authorize 역할 검사 후 존재 검사를 수행하고 Scope를 반환합니다.
func (r *AccessResolver) Authorize(ctx context.Context, actor model.Actor, resource Resource, action Action) (*Scope, error) {
	if err := r.CheckRole(actor, resource, action); err != nil {
		return nil, err
	}
	return r.Resolve(ctx, actor)
}

// Resolve 존재 검사. 행위자를 해당 역할의 저장소에서 찾습니다.
func (r *AccessResolver) Resolve(ctx context.Context, actor model.Actor) (*Scope, error) {
	switch actor.Role {
	case model.RoleSuperAdmin:
		return r.ResolveSuperAdmin(ctx, actor)
	case model.RoleOrganization:
		return r.resolveOrganization(ctx, actor)
	case model.RoleOrgAdmin:
		return r.resolveOrgAdmin(ctx, actor)
	default:
		return nil, apperrors.Unauthorized(MsgUnknownRole)
	}
}

// ResolveSuperAdmin 역할과 무관하게 행위자 ID를 슈퍼 관리자 저장소에서 찾습니다.
func (r *AccessResolver) ResolveSuperAdmin(ctx context.Context, actor model.Actor) (*Scope, error) {
	id, ok := actor.ObjectID()
	if !ok {
		return nil, apperrors.NotFound(MsgSuperAdminNotFound)
	}

	admin, err := r.superAdmins.FindByID(ctx, id)
	if err != nil {
		r.logger.Error("슈퍼 관리자 조회 실패", zap.String("actor_id", actor.ID), zap.Error(err))
		return nil, apperrors.Internal("Failed to load super admin", err)
	}
	if admin == nil || admin.IsDeleted() {
		return nil, apperrors.NotFound(MsgSuperAdminNotFound)
	}

	return &Scope{
		Actor:           actor,
		ActorID:         id,
		SuperAdmin:      admin,
		OrganizationIDs: admin.LinkedOrganizationIDs(),
	}, nil
}

func (r *AccessResolver) resolveOrganization(ctx context.Context, actor model.Actor) (*Scope, error) {
	id, ok := actor.ObjectID()
	if !ok {
		return nil, apperrors.NotFound(MsgOrganizationNotFound)
	}

	org, err := r.organizations.FindByID(ctx, id)
	if err != nil {
		r.logger.Error("조직 조회 실패", zap.String("actor_id", actor.ID), zap.Error(err))
		return nil, apperrors.Internal("Failed to load organization", err)
	}
	if org == nil || org.IsDeleted() {
		return nil, apperrors.NotFound(MsgOrganizationNotFound)
	}

	return &Scope{
		Actor:           actor,
		ActorID:         id,
		Organization:    org,
		OrganizationIDs: []primitive.ObjectID{org.ID},
	}, nil
}

func (r *AccessResolver) resolveOrgAdmin(ctx context.Context, actor model.Actor) (*Scope, error) {
	id, ok := actor.ObjectID()
	if !ok {
		return nil, apperrors.NotFound(MsgOrgAdminNotFound)
	}

	admin, err := r.orgAdmins.FindByID(ctx, id)
	if err != nil {
		r.logger.Error("조직 관리자 조회 실패", zap.String("actor_id", actor.ID), zap.Error(err))
		return nil, apperrors.Internal("Failed to load organization admin", err)
	}
	if admin == nil {
		return nil, apperrors.NotFound(MsgOrgAdminNotFound)
	}

	// 토큰의 organization_id 클레임은 저장된 연결과 같아야 합니다.
	if actor.OrganizationID != admin.OrganizationID.Hex() {
		r.logger.Warn("조직 관리자 토큰의 조직 불일치",
			zap.String("actor_id", actor.ID),
			zap.String("claim_org", actor.OrganizationID),
			zap.String("stored_org", admin.OrganizationID.Hex()))
		return nil, apperrors.Unauthorized(MsgOrganizationMismatch)
	}

	// 연결된 조직이 비활성화되면 조직 관리자도 접근할 수 없습니다.
	org, err := r.organizations.FindByID(ctx, admin.OrganizationID)
	if err != nil {
		r.logger.Error("조직 관리자의 조직 조회 실패",
			zap.String("actor_id", actor.ID),
			zap.String("organization_id", admin.OrganizationID.Hex()),
			zap.Error(err))
		return nil, apperrors.Internal("Failed to load organization", err)
	}
	if org == nil || org.IsDeleted() {
		return nil, apperrors.NotFound(MsgOrganizationNotFound)
	}

	return &Scope{
		Actor:           actor,
		ActorID:         id,
		Organization:    org,
		OrgAdmin:        admin,
		OrganizationIDs: []primitive.ObjectID{admin.OrganizationID},
	}, nil
}

package dto

import "github.com/wekeepgrowing/hrms-backend/internal/domain/model"

// CreateOrganizationRequest 조직 생성 요청
type CreateOrganizationRequest struct {
	Name             string `json:"name"`
	Password         string `json:"password"`
	OrganizationCode string `json:"organization_code"`
	model.OrganizationProfile
}

// UpdateOrganizationRequest 조직 부분 수정 요청. 식별자 필드는 포함하지 않습니다.
type UpdateOrganizationRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1"`
	model.OrganizationProfile
}

// IsEmpty 변경 내용이 없는지 확인합니다.
func (r UpdateOrganizationRequest) IsEmpty() bool {
	return r.Name == nil && r.Password == nil && r.OrganizationProfile.IsZero()
}

// OrganizationLoginRequest 조직 로그인 요청
type OrganizationLoginRequest struct {
	OrganizationID string `json:"organization_id"`
	Password       string `json:"password"`
}

// OrganizationView 로그인 응답용 조직 정보
type OrganizationView struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	OrganizationCode string     `json:"organization_code"`
	ContactEmail     string     `json:"contact_email,omitempty"`
	Role             model.Role `json:"role"`
}

// OrganizationLoginResult 조직 로그인 결과
type OrganizationLoginResult struct {
	Token        string            `json:"token"`
	Organization *OrganizationView `json:"organization"`
}

// OrganizationListResult 슈퍼 관리자 연결 조직 목록
type OrganizationListResult struct {
	Total         int                   `json:"total"`
	Organizations []*model.Organization `json:"organizations"`
	// Linked 슈퍼 관리자에 연결된 조직 수 (필터 적용 전)
	Linked int `json:"-"`
}

// PerformedBy 작업 수행자 정보
type PerformedBy struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// DeleteOrganizationResult 조직 비활성화 결과
type DeleteOrganizationResult struct {
	Organization    *model.Organization
	AlreadyInactive bool
	PerformedBy     *PerformedBy
}

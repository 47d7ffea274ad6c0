package dto

import "github.com/wekeepgrowing/hrms-backend/internal/domain/model"

// CreateOrgAdminRequest 조직 관리자 생성 요청
type CreateOrgAdminRequest struct {
	Name     string `json:"name"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// OrgAdminLoginRequest 조직 관리자 로그인 요청
type OrgAdminLoginRequest struct {
	OrganizationCode string `json:"organization_code"`
	Password         string `json:"password"`
}

// OrgAdminView 응답용 조직 관리자 정보
type OrgAdminView struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	OrganizationCode string     `json:"organization_code"`
	OrganizationID   string     `json:"organization_id"`
	Email            string     `json:"email,omitempty"`
	Role             model.Role `json:"role"`
}

// NewOrgAdminView 비밀번호를 제외한 응답 정보 생성
func NewOrgAdminView(admin *model.OrgAdmin) *OrgAdminView {
	return &OrgAdminView{
		ID:               admin.ID.Hex(),
		Name:             admin.Name,
		OrganizationCode: admin.OrganizationCode,
		OrganizationID:   admin.OrganizationID.Hex(),
		Email:            admin.Email,
		Role:             admin.Role,
	}
}

// OrgAdminLoginResult 조직 관리자 로그인 결과
type OrgAdminLoginResult struct {
	Token string        `json:"token"`
	Admin *OrgAdminView `json:"admin"`
}

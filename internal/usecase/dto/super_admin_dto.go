package dto

import "github.com/wekeepgrowing/hrms-backend/internal/domain/model"

// RegisterSuperAdminRequest 슈퍼 관리자 가입 요청
type RegisterSuperAdminRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Username       string `json:"username"`
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	ContactNumber  string `json:"contact_number"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,url"`
}

// SuperAdminLoginRequest 슈퍼 관리자 로그인 요청
type SuperAdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SuperAdminView 응답용 슈퍼 관리자 정보
type SuperAdminView struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name,omitempty"`
	LastName      string     `json:"last_name,omitempty"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	ContactNumber string     `json:"contact_number,omitempty"`
	Role          model.Role `json:"role"`
	AccessLevel   string     `json:"access_level,omitempty"`
}

// NewSuperAdminView 비밀번호를 제외한 응답 정보 생성
func NewSuperAdminView(admin *model.SuperAdmin) *SuperAdminView {
	return &SuperAdminView{
		ID:            admin.ID.Hex(),
		FirstName:     admin.FirstName,
		LastName:      admin.LastName,
		Email:         admin.Email,
		Username:      admin.Username,
		ContactNumber: admin.ContactNumber,
		Role:          admin.Role,
		AccessLevel:   admin.AccessLevel,
	}
}

// SuperAdminLoginResult 로그인 결과
type SuperAdminLoginResult struct {
	Token      string          `json:"token"`
	SuperAdmin *SuperAdminView `json:"superAdmin"`
}

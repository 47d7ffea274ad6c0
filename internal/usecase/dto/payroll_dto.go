package dto

import "github.com/wekeepgrowing/hrms-backend/internal/domain/model"

// CreatePayrollRequest 급여 생성 요청
type CreatePayrollRequest struct {
	OrganizationID string `json:"organization_id" validate:"omitempty,objectid"`
	EmployeeID     string `json:"employee_id" validate:"omitempty,objectid"`
	model.PayrollDetails
}

// UpdatePayrollRequest 급여 부분 수정 요청. 식별자와 삭제 표시 필드는 포함하지 않습니다.
type UpdatePayrollRequest struct {
	model.PayrollDetails
}

// PayrollListResult 조직 급여 목록
type PayrollListResult struct {
	Total    int              `json:"total"`
	Payrolls []*model.Payroll `json:"payrolls"`
}

// DeletePayrollResult 급여 삭제 결과
type DeletePayrollResult struct {
	Payroll        *model.Payroll
	AlreadyDeleted bool
}

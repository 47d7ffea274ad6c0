package model

import (
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PayrollStatus is the processing state of a payroll run.
type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "Draft"
	PayrollProcessed PayrollStatus = "Processed"
	PayrollApproved  PayrollStatus = "Approved"
	PayrollReleased  PayrollStatus = "Released"
	PayrollCancelled PayrollStatus = "Cancelled"
)

// Valid reports whether s is one of the known payroll states.
func (s PayrollStatus) Valid() bool {
	switch s {
	case PayrollDraft, PayrollProcessed, PayrollApproved, PayrollReleased, PayrollCancelled:
		return true
	}
	return false
}

// Audit trail actions.
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

type PayrollCycle struct {
	Month         *string        `bson:"month,omitempty" json:"month,omitempty"`
	Year          *int           `bson:"year,omitempty" json:"year,omitempty" validate:"omitempty,min=1900,max=9999"`
	PeriodStart   *time.Time     `bson:"period_start,omitempty" json:"period_start,omitempty"`
	PeriodEnd     *time.Time     `bson:"period_end,omitempty" json:"period_end,omitempty"`
	ProcessedOn   *time.Time     `bson:"processed_on,omitempty" json:"processed_on,omitempty"`
	PayrollStatus *PayrollStatus `bson:"payroll_status,omitempty" json:"payroll_status,omitempty" validate:"omitempty,oneof=Draft Processed Approved Released Cancelled"`
	BatchID       *string        `bson:"batch_id,omitempty" json:"batch_id,omitempty"`
}

type EmployeeSnapshot struct {
	EmployeeCode    *string    `bson:"employee_code,omitempty" json:"employee_code,omitempty"`
	FullName        *string    `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Email           *string    `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	DesignationName *string    `bson:"designation_name,omitempty" json:"designation_name,omitempty"`
	DepartmentName  *string    `bson:"department_name,omitempty" json:"department_name,omitempty"`
	BranchName      *string    `bson:"branch_name,omitempty" json:"branch_name,omitempty"`
	DateOfJoining   *time.Time `bson:"date_of_joining,omitempty" json:"date_of_joining,omitempty"`
	PanNumber       *string    `bson:"pan_number,omitempty" json:"pan_number,omitempty"`
	BankAccount     *string    `bson:"bank_account,omitempty" json:"bank_account,omitempty"`
}

type SalaryStructure struct {
	StructureName *string `bson:"structure_name,omitempty" json:"structure_name,omitempty"`
	CTC           *Amount `bson:"ctc,omitempty" json:"ctc,omitempty"`
	MonthlyGross  *Amount `bson:"monthly_gross,omitempty" json:"monthly_gross,omitempty"`
	Currency      *string `bson:"currency,omitempty" json:"currency,omitempty" validate:"omitempty,iso4217"`
}

type Earnings struct {
	Basic            *Amount `bson:"basic,omitempty" json:"basic,omitempty"`
	HRA              *Amount `bson:"hra,omitempty" json:"hra,omitempty"`
	Conveyance       *Amount `bson:"conveyance,omitempty" json:"conveyance,omitempty"`
	MedicalAllowance *Amount `bson:"medical_allowance,omitempty" json:"medical_allowance,omitempty"`
	SpecialAllowance *Amount `bson:"special_allowance,omitempty" json:"special_allowance,omitempty"`
	Overtime         *Amount `bson:"overtime,omitempty" json:"overtime,omitempty"`
	Incentives       *Amount `bson:"incentives,omitempty" json:"incentives,omitempty"`
	OtherAllowances  *Amount `bson:"other_allowances,omitempty" json:"other_allowances,omitempty"`
}

type Deductions struct {
	ProvidentFund   *Amount `bson:"provident_fund,omitempty" json:"provident_fund,omitempty"`
	ESI             *Amount `bson:"esi,omitempty" json:"esi,omitempty"`
	ProfessionalTax *Amount `bson:"professional_tax,omitempty" json:"professional_tax,omitempty"`
	TDS             *Amount `bson:"tds,omitempty" json:"tds,omitempty"`
	LoanRecovery    *Amount `bson:"loan_recovery,omitempty" json:"loan_recovery,omitempty"`
	AdvanceRecovery *Amount `bson:"advance_recovery,omitempty" json:"advance_recovery,omitempty"`
	LossOfPay       *Amount `bson:"loss_of_pay,omitempty" json:"loss_of_pay,omitempty"`
	OtherDeductions *Amount `bson:"other_deductions,omitempty" json:"other_deductions,omitempty"`
}

type Totals struct {
	GrossEarnings   *Amount `bson:"gross_earnings,omitempty" json:"gross_earnings,omitempty"`
	TotalDeductions *Amount `bson:"total_deductions,omitempty" json:"total_deductions,omitempty"`
	NetPay          *Amount `bson:"net_pay,omitempty" json:"net_pay,omitempty"`
	NetPayInWords   *string `bson:"net_pay_in_words,omitempty" json:"net_pay_in_words,omitempty"`
}

type TaxComputation struct {
	Regime        *string `bson:"regime,omitempty" json:"regime,omitempty"`
	TaxableIncome *Amount `bson:"taxable_income,omitempty" json:"taxable_income,omitempty"`
	Exemptions    *Amount `bson:"exemptions,omitempty" json:"exemptions,omitempty"`
	AnnualTax     *Amount `bson:"annual_tax,omitempty" json:"annual_tax,omitempty"`
	MonthlyTDS    *Amount `bson:"monthly_tds,omitempty" json:"monthly_tds,omitempty"`
	FinancialYear *string `bson:"financial_year,omitempty" json:"financial_year,omitempty"`
}

type AttendanceSummary struct {
	WorkingDays   *float64 `bson:"working_days,omitempty" json:"working_days,omitempty" validate:"omitempty,min=0"`
	PresentDays   *float64 `bson:"present_days,omitempty" json:"present_days,omitempty" validate:"omitempty,min=0"`
	PaidLeaves    *float64 `bson:"paid_leaves,omitempty" json:"paid_leaves,omitempty" validate:"omitempty,min=0"`
	UnpaidLeaves  *float64 `bson:"unpaid_leaves,omitempty" json:"unpaid_leaves,omitempty" validate:"omitempty,min=0"`
	Holidays      *float64 `bson:"holidays,omitempty" json:"holidays,omitempty" validate:"omitempty,min=0"`
	OvertimeHours *float64 `bson:"overtime_hours,omitempty" json:"overtime_hours,omitempty" validate:"omitempty,min=0"`
}

type DisbursementDetails struct {
	Mode          *string    `bson:"mode,omitempty" json:"mode,omitempty"`
	BankName      *string    `bson:"bank_name,omitempty" json:"bank_name,omitempty"`
	AccountNumber *string    `bson:"account_number,omitempty" json:"account_number,omitempty"`
	IfscCode      *string    `bson:"ifsc_code,omitempty" json:"ifsc_code,omitempty"`
	TransactionID *string    `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	PaidOn        *time.Time `bson:"paid_on,omitempty" json:"paid_on,omitempty"`
	Status        *string    `bson:"status,omitempty" json:"status,omitempty"`
}

type LeaveEncashment struct {
	Days   *float64 `bson:"days,omitempty" json:"days,omitempty" validate:"omitempty,min=0"`
	Rate   *Amount  `bson:"rate,omitempty" json:"rate,omitempty"`
	Amount *Amount  `bson:"amount,omitempty" json:"amount,omitempty"`
}

type Bonus struct {
	Type    string     `bson:"type" json:"type" validate:"required"`
	Amount  Amount     `bson:"amount" json:"amount"`
	Remarks string     `bson:"remarks,omitempty" json:"remarks,omitempty"`
	PaidOn  *time.Time `bson:"paid_on,omitempty" json:"paid_on,omitempty"`
}

type PayslipInfo struct {
	PayslipNumber *string    `bson:"payslip_number,omitempty" json:"payslip_number,omitempty"`
	GeneratedOn   *time.Time `bson:"generated_on,omitempty" json:"generated_on,omitempty"`
	URL           *string    `bson:"url,omitempty" json:"url,omitempty" validate:"omitempty,url"`
	EmailedOn     *time.Time `bson:"emailed_on,omitempty" json:"emailed_on,omitempty"`
}

// PayrollDetails holds the caller-editable sections of a payroll record.
// Like OrganizationProfile, nil fields mean "not provided".
type PayrollDetails struct {
	BranchID      *primitive.ObjectID `bson:"branch_id,omitempty" json:"branch_id,omitempty"`
	DepartmentID  *primitive.ObjectID `bson:"department_id,omitempty" json:"department_id,omitempty"`
	DesignationID *primitive.ObjectID `bson:"designation_id,omitempty" json:"designation_id,omitempty"`

	PayrollCycle        *PayrollCycle        `bson:"payroll_cycle,omitempty" json:"payroll_cycle,omitempty"`
	EmployeeSnapshot    *EmployeeSnapshot    `bson:"employee_snapshot,omitempty" json:"employee_snapshot,omitempty"`
	SalaryStructure     *SalaryStructure     `bson:"salary_structure,omitempty" json:"salary_structure,omitempty"`
	Earnings            *Earnings            `bson:"earnings,omitempty" json:"earnings,omitempty"`
	Deductions          *Deductions          `bson:"deductions,omitempty" json:"deductions,omitempty"`
	Totals              *Totals              `bson:"totals,omitempty" json:"totals,omitempty"`
	TaxComputation      *TaxComputation      `bson:"tax_computation,omitempty" json:"tax_computation,omitempty"`
	AttendanceSummary   *AttendanceSummary   `bson:"attendance_summary,omitempty" json:"attendance_summary,omitempty"`
	DisbursementDetails *DisbursementDetails `bson:"disbursement_details,omitempty" json:"disbursement_details,omitempty"`
	LeaveEncashment     *LeaveEncashment     `bson:"leave_encashment,omitempty" json:"leave_encashment,omitempty"`
	BonusDetails        []Bonus              `bson:"bonus_details,omitempty" json:"bonus_details,omitempty" validate:"omitempty,dive"`
	PayslipInfo         *PayslipInfo         `bson:"payslip_info,omitempty" json:"payslip_info,omitempty"`

	// Free-form sections. Their shape differs between payroll providers.
	AutomationFlags      primitive.M `bson:"automation_flags,omitempty" json:"automation_flags,omitempty"`
	PerformanceReference primitive.M `bson:"performance_reference,omitempty" json:"performance_reference,omitempty"`
	Metadata             primitive.M `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Status returns the cycle status, Draft when unset.
func (d PayrollDetails) Status() PayrollStatus {
	if d.PayrollCycle == nil || d.PayrollCycle.PayrollStatus == nil {
		return PayrollDraft
	}
	return *d.PayrollCycle.PayrollStatus
}

// IsZero reports whether no section was provided.
func (d PayrollDetails) IsZero() bool {
	return reflect.ValueOf(d).IsZero()
}

// Sections lists the bson names of the provided top-level sections.
func (d PayrollDetails) Sections() []string {
	v := reflect.ValueOf(d)
	t := v.Type()
	var names []string
	for i := 0; i < t.NumField(); i++ {
		if v.Field(i).IsZero() {
			continue
		}
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("bson"), ",")
		names = append(names, name)
	}
	return names
}

// AuditEntry records one mutation of a payroll record.
type AuditEntry struct {
	Action    string             `bson:"action" json:"action"`
	ActorID   primitive.ObjectID `bson:"actor_id" json:"actor_id"`
	ActorRole Role               `bson:"actor_role" json:"actor_role"`
	Fields    []string           `bson:"fields,omitempty" json:"fields,omitempty"`
	At        time.Time          `bson:"at" json:"at"`
}

// Payroll is one employee's pay record for one cycle.
type Payroll struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	EmployeeID     primitive.ObjectID `bson:"employee_id" json:"employee_id"`

	PayrollDetails `bson:",inline"`

	AuditTrail []AuditEntry        `bson:"audit_trail" json:"audit_trail"`
	IsDeleted  bool                `bson:"isDeleted" json:"isDeleted"`
	DeletedAt  *time.Time          `bson:"deletedAt" json:"deletedAt"`
	DeletedBy  *primitive.ObjectID `bson:"deletedBy" json:"deletedBy"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}

package model

import (
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationStatus is the soft-delete flag of an organization.
type OrganizationStatus string

const (
	OrganizationActive   OrganizationStatus = "active"
	OrganizationInactive OrganizationStatus = "inactive"
)

// Valid reports whether s is a known organization status.
func (s OrganizationStatus) Valid() bool {
	return s == OrganizationActive || s == OrganizationInactive
}

type RegistrationDetails struct {
	PanNumber *string `bson:"pan_number,omitempty" json:"pan_number,omitempty"`
	GstNumber *string `bson:"gst_number,omitempty" json:"gst_number,omitempty"`
	CinNumber *string `bson:"cin_number,omitempty" json:"cin_number,omitempty"`
	TanNumber *string `bson:"tan_number,omitempty" json:"tan_number,omitempty"`
}

type ContactDetails struct {
	OfficialEmail *string `bson:"official_email,omitempty" json:"official_email,omitempty" validate:"omitempty,email"`
	OfficialPhone *string `bson:"official_phone,omitempty" json:"official_phone,omitempty"`
	Website       *string `bson:"website,omitempty" json:"website,omitempty" validate:"omitempty,url"`
}

type Address struct {
	AddressLine1 *string  `bson:"address_line1,omitempty" json:"address_line1,omitempty"`
	AddressLine2 *string  `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         *string  `bson:"city,omitempty" json:"city,omitempty"`
	State        *string  `bson:"state,omitempty" json:"state,omitempty"`
	Country      *string  `bson:"country,omitempty" json:"country,omitempty"`
	Pincode      *string  `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Latitude     *float64 `bson:"latitude,omitempty" json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `bson:"longitude,omitempty" json:"longitude,omitempty" validate:"omitempty,longitude"`
}

type BranchContact struct {
	Email *string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type ShiftTimings struct {
	StartTime *string `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime   *string `bson:"end_time,omitempty" json:"end_time,omitempty"`
}

type Department struct {
	DepartmentName string              `bson:"department_name" json:"department_name" validate:"required"`
	DepartmentCode string              `bson:"department_code,omitempty" json:"department_code,omitempty"`
	HeadID         *primitive.ObjectID `bson:"head_id,omitempty" json:"head_id,omitempty"`
	Description    string              `bson:"description,omitempty" json:"description,omitempty"`
}

type Branch struct {
	BranchName   string              `bson:"branch_name" json:"branch_name" validate:"required"`
	BranchCode   string              `bson:"branch_code,omitempty" json:"branch_code,omitempty"`
	Address      *Address            `bson:"address,omitempty" json:"address,omitempty"`
	Contact      *BranchContact      `bson:"contact,omitempty" json:"contact,omitempty"`
	BranchHeadID *primitive.ObjectID `bson:"branch_head_id,omitempty" json:"branch_head_id,omitempty"`
	WorkingDays  []string            `bson:"working_days,omitempty" json:"working_days,omitempty"`
	ShiftTimings *ShiftTimings       `bson:"shift_timings,omitempty" json:"shift_timings,omitempty"`
	Departments  []Department        `bson:"departments,omitempty" json:"departments,omitempty" validate:"omitempty,dive"`
}

type LeavePolicy struct {
	AnnualLeaves *int  `bson:"annual_leaves,omitempty" json:"annual_leaves,omitempty" validate:"omitempty,min=0"`
	CasualLeaves *int  `bson:"casual_leaves,omitempty" json:"casual_leaves,omitempty" validate:"omitempty,min=0"`
	SickLeaves   *int  `bson:"sick_leaves,omitempty" json:"sick_leaves,omitempty" validate:"omitempty,min=0"`
	CarryForward *bool `bson:"carry_forward,omitempty" json:"carry_forward,omitempty"`
}

type AttendancePolicy struct {
	GracePeriodMinutes *int     `bson:"grace_period_minutes,omitempty" json:"grace_period_minutes,omitempty" validate:"omitempty,min=0"`
	HalfDayHours       *float64 `bson:"half_day_hours,omitempty" json:"half_day_hours,omitempty" validate:"omitempty,min=0"`
	FullDayHours       *float64 `bson:"full_day_hours,omitempty" json:"full_day_hours,omitempty" validate:"omitempty,min=0"`
}

type NoticePeriodPolicy struct {
	DefaultDays         *int `bson:"default_days,omitempty" json:"default_days,omitempty" validate:"omitempty,min=0"`
	ProbationNoticeDays *int `bson:"probation_notice_days,omitempty" json:"probation_notice_days,omitempty" validate:"omitempty,min=0"`
}

type Policies struct {
	LeavePolicy        *LeavePolicy        `bson:"leave_policy,omitempty" json:"leave_policy,omitempty"`
	AttendancePolicy   *AttendancePolicy   `bson:"attendance_policy,omitempty" json:"attendance_policy,omitempty"`
	NoticePeriodPolicy *NoticePeriodPolicy `bson:"notice_period_policy,omitempty" json:"notice_period_policy,omitempty"`
}

type LifecycleRules struct {
	ProbationPeriodDays         *int  `bson:"probation_period_days,omitempty" json:"probation_period_days,omitempty" validate:"omitempty,min=0"`
	TerminationNoticeDays       *int  `bson:"termination_notice_days,omitempty" json:"termination_notice_days,omitempty" validate:"omitempty,min=0"`
	ResignationApprovalRequired *bool `bson:"resignation_approval_required,omitempty" json:"resignation_approval_required,omitempty"`
	ExitClearanceRequired       *bool `bson:"exit_clearance_required,omitempty" json:"exit_clearance_required,omitempty"`
}

type FinancialInfo struct {
	BankName       *string `bson:"bank_name,omitempty" json:"bank_name,omitempty"`
	AccountNumber  *string `bson:"account_number,omitempty" json:"account_number,omitempty"`
	IfscCode       *string `bson:"ifsc_code,omitempty" json:"ifsc_code,omitempty"`
	BranchName     *string `bson:"branch_name,omitempty" json:"branch_name,omitempty"`
	PaymentGateway *string `bson:"payment_gateway,omitempty" json:"payment_gateway,omitempty"`
	SalaryCurrency *string `bson:"salary_currency,omitempty" json:"salary_currency,omitempty" validate:"omitempty,iso4217"`
}

type Branding struct {
	LogoURL    *string `bson:"logo_url,omitempty" json:"logo_url,omitempty" validate:"omitempty,url"`
	ThemeColor *string `bson:"theme_color,omitempty" json:"theme_color,omitempty"`
	FaviconURL *string `bson:"favicon_url,omitempty" json:"favicon_url,omitempty" validate:"omitempty,url"`
}

type SubscriptionPlan struct {
	PlanType        *string    `bson:"plan_type,omitempty" json:"plan_type,omitempty"`
	StartDate       *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	ExpiryDate      *time.Time `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`
	MaxUsersAllowed *int       `bson:"max_users_allowed,omitempty" json:"max_users_allowed,omitempty" validate:"omitempty,min=0"`
	Status          *string    `bson:"status,omitempty" json:"status,omitempty"`
}

type Compliance struct {
	PfRegistrationNo    *string             `bson:"pf_registration_no,omitempty" json:"pf_registration_no,omitempty"`
	EsiRegistrationNo   *string             `bson:"esi_registration_no,omitempty" json:"esi_registration_no,omitempty"`
	LabourLicenseNo     *string             `bson:"labour_license_no,omitempty" json:"labour_license_no,omitempty"`
	ComplianceOfficerID *primitive.ObjectID `bson:"compliance_officer_id,omitempty" json:"compliance_officer_id,omitempty"`
}

type Settings struct {
	TimeZone                 *string `bson:"time_zone,omitempty" json:"time_zone,omitempty" validate:"omitempty,timezone"`
	Currency                 *string `bson:"currency,omitempty" json:"currency,omitempty" validate:"omitempty,iso4217"`
	Language                 *string `bson:"language,omitempty" json:"language,omitempty"`
	FinancialYearStart       *string `bson:"financial_year_start,omitempty" json:"financial_year_start,omitempty"`
	AutoGenerateEmployeeCode *bool   `bson:"auto_generate_employee_code,omitempty" json:"auto_generate_employee_code,omitempty"`
	EmployeeCodePrefix       *string `bson:"employee_code_prefix,omitempty" json:"employee_code_prefix,omitempty"`
}

type Holiday struct {
	Date             time.Time `bson:"date" json:"date" validate:"required"`
	Title            string    `bson:"title" json:"title" validate:"required"`
	Type             string    `bson:"type,omitempty" json:"type,omitempty"`
	BranchApplicable []string  `bson:"branch_applicable,omitempty" json:"branch_applicable,omitempty"`
}

type Modules struct {
	Attendance        *bool `bson:"attendance,omitempty" json:"attendance,omitempty"`
	Payroll           *bool `bson:"payroll,omitempty" json:"payroll,omitempty"`
	Recruitment       *bool `bson:"recruitment,omitempty" json:"recruitment,omitempty"`
	Training          *bool `bson:"training,omitempty" json:"training,omitempty"`
	AssetManagement   *bool `bson:"asset_management,omitempty" json:"asset_management,omitempty"`
	PerformanceReview *bool `bson:"performance_review,omitempty" json:"performance_review,omitempty"`
}

type Integrations struct {
	GoogleWorkspace *bool   `bson:"google_workspace,omitempty" json:"google_workspace,omitempty"`
	MicrosoftTeams  *bool   `bson:"microsoft_teams,omitempty" json:"microsoft_teams,omitempty"`
	Slack           *bool   `bson:"slack,omitempty" json:"slack,omitempty"`
	BiometricSystem *string `bson:"biometric_system,omitempty" json:"biometric_system,omitempty"`
}

// OrganizationProfile holds every caller-editable section of an organization.
// All fields are optional; a nil field means "not provided", which lets the
// same type describe both a full document and a partial update.
type OrganizationProfile struct {
	LegalName              *string              `bson:"legal_name,omitempty" json:"legal_name,omitempty"`
	IndustryType           *string              `bson:"industry_type,omitempty" json:"industry_type,omitempty"`
	RegistrationDetails    *RegistrationDetails `bson:"registration_details,omitempty" json:"registration_details,omitempty"`
	ContactDetails         *ContactDetails      `bson:"contact_details,omitempty" json:"contact_details,omitempty"`
	HeadOffice             *Address             `bson:"head_office,omitempty" json:"head_office,omitempty"`
	Branches               []Branch             `bson:"branches,omitempty" json:"branches,omitempty" validate:"omitempty,dive"`
	Policies               *Policies            `bson:"policies,omitempty" json:"policies,omitempty"`
	EmployeeLifecycleRules *LifecycleRules      `bson:"employee_lifecycle_rules,omitempty" json:"employee_lifecycle_rules,omitempty"`
	SupportedLanguages     []string             `bson:"supported_languages,omitempty" json:"supported_languages,omitempty"`
	FinancialInfo          *FinancialInfo       `bson:"financial_info,omitempty" json:"financial_info,omitempty"`
	Branding               *Branding            `bson:"branding,omitempty" json:"branding,omitempty"`
	SubscriptionPlan       *SubscriptionPlan    `bson:"subscription_plan,omitempty" json:"subscription_plan,omitempty"`
	Compliance             *Compliance          `bson:"compliance,omitempty" json:"compliance,omitempty"`
	Settings               *Settings            `bson:"settings,omitempty" json:"settings,omitempty"`
	HolidayCalendar        []Holiday            `bson:"holiday_calendar,omitempty" json:"holiday_calendar,omitempty" validate:"omitempty,dive"`
	Modules                *Modules             `bson:"modules,omitempty" json:"modules,omitempty"`
	Integrations           *Integrations        `bson:"integrations,omitempty" json:"integrations,omitempty"`
}

// IsZero reports whether no section was provided.
func (p OrganizationProfile) IsZero() bool {
	return reflect.ValueOf(p).IsZero()
}

// OfficialEmail returns the contact email or "" when unset.
func (p OrganizationProfile) OfficialEmail() string {
	if p.ContactDetails == nil || p.ContactDetails.OfficialEmail == nil {
		return ""
	}
	return *p.ContactDetails.OfficialEmail
}

// Organization is a tenant. It signs in with its own password.
type Organization struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrganizationCode string             `bson:"organization_code" json:"organization_code"`
	Name             string             `bson:"name" json:"name"`
	Password         string             `bson:"password" json:"-"`

	OrganizationProfile `bson:",inline"`

	CreatedBy primitive.ObjectID `bson:"created_by,omitempty" json:"created_by"`
	Status    OrganizationStatus `bson:"status" json:"status"`
	DeletedAt *time.Time         `bson:"deletedAt" json:"deletedAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsDeleted reports whether the organization has been soft-deleted.
func (o *Organization) IsDeleted() bool {
	return o.DeletedAt != nil
}

// IsInactive reports whether the organization is already marked inactive.
func (o *Organization) IsInactive() bool {
	return o.Status == OrganizationInactive
}

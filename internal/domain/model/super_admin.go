package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Super admin account states.
const (
	SuperAdminActive      = "active"
	SuperAdminSuspended   = "suspended"
	SuperAdminDeactivated = "deactivated"
)

// Roles a super admin can hold inside a linked organization.
const (
	LinkRoleAdmin      = "admin"
	LinkRoleObserver   = "observer"
	LinkRoleSupervisor = "supervisor"
)

// Permissions is the capability matrix granted to a super admin.
type Permissions struct {
	ManageOrganizations bool `bson:"manage_organizations" json:"manage_organizations"`
	ManageUsers         bool `bson:"manage_users" json:"manage_users"`
	ManageDepartments   bool `bson:"manage_departments" json:"manage_departments"`
	ManageRoles         bool `bson:"manage_roles" json:"manage_roles"`
	ManagePayroll       bool `bson:"manage_payroll" json:"manage_payroll"`
	ManageAttendance    bool `bson:"manage_attendance" json:"manage_attendance"`
	ManageLeave         bool `bson:"manage_leave" json:"manage_leave"`
	ManageAssets        bool `bson:"manage_assets" json:"manage_assets"`
	ManageAnnouncement  bool `bson:"manage_announcement" json:"manage_announcement"`
	ViewReports         bool `bson:"view_reports" json:"view_reports"`
	ManageSettings      bool `bson:"manage_settings" json:"manage_settings"`
	CreateBackup        bool `bson:"create_backup" json:"create_backup"`
	RestoreBackup       bool `bson:"restore_backup" json:"restore_backup"`
}

// FullPermissions grants every capability.
func FullPermissions() Permissions {
	return Permissions{
		ManageOrganizations: true,
		ManageUsers:         true,
		ManageDepartments:   true,
		ManageRoles:         true,
		ManagePayroll:       true,
		ManageAttendance:    true,
		ManageLeave:         true,
		ManageAssets:        true,
		ManageAnnouncement:  true,
		ViewReports:         true,
		ManageSettings:      true,
		CreateBackup:        true,
		RestoreBackup:       true,
	}
}

// LinkedOrganization grants a super admin administrative access to one organization.
type LinkedOrganization struct {
	OrganizationID   primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	OrganizationName string             `bson:"organization_name" json:"organization_name"`
	AssignedDate     time.Time          `bson:"assigned_date" json:"assigned_date"`
	RoleInOrg        string             `bson:"role_in_org" json:"role_in_org"`
}

// SuperAdmin is the system-level administrator account.
type SuperAdmin struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	FirstName           string               `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName            string               `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Username            string               `bson:"username" json:"username"`
	Email               string               `bson:"email" json:"email"`
	Password            string               `bson:"password" json:"-"`
	ContactNumber       string               `bson:"contact_number,omitempty" json:"contact_number,omitempty"`
	ProfilePicture      string               `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	Role                Role                 `bson:"role" json:"role"`
	AccessLevel         string               `bson:"access_level" json:"access_level"`
	Permissions         Permissions          `bson:"permissions" json:"permissions"`
	LinkedOrganizations []LinkedOrganization `bson:"linked_organizations" json:"linked_organizations"`
	Status              string               `bson:"status" json:"status"`
	AccountVerified     bool                 `bson:"account_verified" json:"account_verified"`
	EmailVerified       bool                 `bson:"email_verified" json:"email_verified"`
	LastLogin           *time.Time           `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedBy           string               `bson:"created_by" json:"created_by"`
	CreatedAt           time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt           *time.Time           `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	DeletedAt           *time.Time           `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the account has been removed.
func (s *SuperAdmin) IsDeleted() bool {
	return s.DeletedAt != nil
}

// IsActive reports whether the account may sign in.
func (s *SuperAdmin) IsActive() bool {
	return s.Status == "" || s.Status == SuperAdminActive
}

// LinkedOrganizationIDs returns the ids of every organization this admin may administer.
func (s *SuperAdmin) LinkedOrganizationIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(s.LinkedOrganizations))
	for _, link := range s.LinkedOrganizations {
		ids = append(ids, link.OrganizationID)
	}
	return ids
}

// IsLinkedTo reports whether orgID appears in the admin's linked organizations.
func (s *SuperAdmin) IsLinkedTo(orgID primitive.ObjectID) bool {
	for _, link := range s.LinkedOrganizations {
		if link.OrganizationID == orgID {
			return true
		}
	}
	return false
}

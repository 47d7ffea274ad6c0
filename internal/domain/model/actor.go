package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role identifies which credential store an authenticated actor belongs to.
type Role string

const (
	RoleSuperAdmin   Role = "superAdmin"
	RoleOrganization Role = "organization"
	RoleOrgAdmin     Role = "admin"
)

func (r Role) String() string { return string(r) }

// Valid reports whether r is one of the known actor roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOrganization, RoleOrgAdmin:
		return true
	}
	return false
}

// Actor is the identity carried by a verified session token.
type Actor struct {
	ID             string `json:"id"`
	Role           Role   `json:"role"`
	OrganizationID string `json:"organization_id,omitempty"`
	Email          string `json:"email,omitempty"`
}

// ObjectID parses the actor id. The second value is false when the id is
// not a valid ObjectID hex string.
func (a Actor) ObjectID() (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(a.ID)
	return id, err == nil
}

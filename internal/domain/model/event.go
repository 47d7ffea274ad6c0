package model

import "time"

// Domain event types published on the audit channel.
const (
	EventOrganizationCreated     = "organization.created"
	EventOrganizationUpdated     = "organization.updated"
	EventOrganizationDeactivated = "organization.deactivated"
	EventOrgAdminCreated         = "org_admin.created"
	EventPayrollCreated          = "payroll.created"
	EventPayrollUpdated          = "payroll.updated"
	EventPayrollDeleted          = "payroll.deleted"
)

// DomainEvent is the audit record emitted after a successful mutation.
type DomainEvent struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	ActorID        string    `json:"actor_id"`
	ActorRole      Role      `json:"actor_role"`
	ResourceID     string    `json:"resource_id"`
	OrganizationID string    `json:"organization_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

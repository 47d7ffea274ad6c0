package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrgAdmin is an administrator account scoped to exactly one organization.
type OrgAdmin struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name"`
	OrganizationCode string             `bson:"organization_code" json:"organization_code"`
	OrganizationID   primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	Password         string             `bson:"password" json:"-"`
	Role             Role               `bson:"role" json:"role"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedBy        primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

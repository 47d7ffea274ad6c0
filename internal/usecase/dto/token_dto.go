package dto

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
)

// TokenClaims 액세스 토큰 클레임
type TokenClaims struct {
	ActorID        string     `json:"id"`
	Role           model.Role `json:"role"`
	OrganizationID string     `json:"organization_id,omitempty"`
	Email          string     `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Actor 클레임을 행위자로 변환합니다.
func (c *TokenClaims) Actor() model.Actor {
	return model.Actor{
		ID:             c.ActorID,
		Role:           c.Role,
		OrganizationID: c.OrganizationID,
		Email:          c.Email,
	}
}

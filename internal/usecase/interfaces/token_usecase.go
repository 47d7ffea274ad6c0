package interfaces

import (
	"context"

	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
)

// TokenUseCase 토큰 관련 유스케이스 인터페이스
type TokenUseCase interface {
	// GenerateAccessToken 행위자 정보로 액세스 토큰 생성
	GenerateAccessToken(ctx context.Context, actor model.Actor) (string, error)

	// VerifyAccessToken 서명과 만료만 검증합니다. 부수 효과가 없습니다.
	VerifyAccessToken(accessToken string) (*dto.TokenClaims, error)

	// ValidateAccessToken 검증 후 폐기 목록을 확인합니다.
	ValidateAccessToken(ctx context.Context, accessToken string) (*model.Actor, error)

	// RevokeAccessToken 액세스 토큰 폐기
	RevokeAccessToken(ctx context.Context, accessToken string) error
}

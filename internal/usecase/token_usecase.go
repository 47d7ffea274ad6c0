package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/repository"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/constants"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/dto"
	"github.com/wekeepgrowing/hrms-backend/internal/usecase/interfaces"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.uber.org/zap"
)

// 토큰 에러 메시지
const (
	MsgInvalidToken          = "Invalid or expired token."
	MsgRevocationUnavailable = "Token revocation is not available"
)

// TokenConfig 토큰 관련 설정
type TokenConfig struct {
	Issuer            string        // 발급자
	Secret            string        // HS256 서명 키
	AccessTokenExpiry time.Duration // 액세스 토큰 만료 시간
}

// TokenUseCase 토큰 유스케이스 구현체
type TokenUseCase struct {
	logger          *zap.Logger
	config          TokenConfig
	cacheRepository repository.CacheRepository
}

// NewTokenUseCase 새 토큰 유스케이스 생성. cacheRepo가 nil이면 폐기 기능을 사용하지 않습니다.
func NewTokenUseCase(
	logger *zap.Logger,
	config TokenConfig,
	cacheRepo repository.CacheRepository,
) interfaces.TokenUseCase {
	if config.AccessTokenExpiry <= 0 {
		config.AccessTokenExpiry = constants.DefaultAccessTokenExpiry
	}
	return &TokenUseCase{
		logger:          logger,
		config:          config,
		cacheRepository: cacheRepo,
	}
}

// GenerateAccessToken 행위자 정보로 액세스 토큰 생성
func (uc *TokenUseCase) GenerateAccessToken(ctx context.Context, actor model.Actor) (string, error) {
	now := time.Now()

	claims := dto.TokenClaims{
		ActorID:        actor.ID,
		Role:           actor.Role,
		OrganizationID: actor.OrganizationID,
		Email:          actor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    uc.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.config.AccessTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(uc.config.Secret))
	if err != nil {
		uc.logger.Error("액세스 토큰 서명 실패", zap.Error(err))
		return "", apperrors.Internal("Failed to sign access token", err)
	}

	return signedToken, nil
}

// VerifyAccessToken 서명, 알고리즘, 만료를 검증하고 클레임을 반환합니다.
func (uc *TokenUseCase) VerifyAccessToken(accessToken string) (*dto.TokenClaims, error) {
	claims := &dto.TokenClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("잘못된 서명 알고리즘: %v", token.Header["alg"])
		}
		return []byte(uc.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthenticated, MsgInvalidToken, err)
	}

	if claims.ActorID == "" || !claims.Role.Valid() {
		return nil, apperrors.Unauthenticated(MsgInvalidToken)
	}

	return claims, nil
}

// ValidateAccessToken 토큰 검증 후 폐기 목록을 확인합니다.
func (uc *TokenUseCase) ValidateAccessToken(ctx context.Context, accessToken string) (*model.Actor, error) {
	// 1) 서명 및 만료 검증
	claims, err := uc.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	// 2) 폐기 여부 확인
	if uc.cacheRepository != nil {
		revoked, err := uc.cacheRepository.Get(ctx, revokedTokenKey(accessToken))
		switch {
		case err == nil && revoked == "true":
			return nil, apperrors.Unauthenticated(MsgInvalidToken)
		case err != nil && !uc.cacheRepository.IsNotFound(err):
			uc.logger.Error("토큰 폐기 여부 확인 실패", zap.Error(err))
			return nil, apperrors.Internal("Failed to check token revocation", err)
		}
	}

	actor := claims.Actor()
	return &actor, nil
}

// RevokeAccessToken 남은 유효 기간 동안 토큰을 폐기 목록에 둡니다.
func (uc *TokenUseCase) RevokeAccessToken(ctx context.Context, accessToken string) error {
	if uc.cacheRepository == nil {
		return apperrors.NotImplemented(MsgRevocationUnavailable)
	}

	claims, err := uc.VerifyAccessToken(accessToken)
	if err != nil {
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := uc.cacheRepository.Set(ctx, revokedTokenKey(accessToken), "true", remaining); err != nil {
		uc.logger.Error("액세스 토큰 폐기 실패", zap.Error(err))
		return apperrors.Internal("Failed to revoke access token", err)
	}

	uc.logger.Info("액세스 토큰 폐기",
		zap.String("actor_id", claims.ActorID),
		zap.Duration("remaining", remaining))
	return nil
}

// revokedTokenKey 토큰 원문 대신 SHA-256 해시를 키로 사용합니다.
func revokedTokenKey(accessToken string) string {
	hashValue := sha256.Sum256([]byte(accessToken))
	return constants.RevokedTokenPrefix + hex.EncodeToString(hashValue[:])
}

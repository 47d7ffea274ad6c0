package constants

import "time"

// Redis 키 관련 상수
const (
	// RevokedTokenPrefix 폐기된 토큰 키 접두사
	RevokedTokenPrefix = "revoked_token:"

	// DefaultAccessTokenExpiry 설정이 없을 때 사용하는 액세스 토큰 만료 시간
	DefaultAccessTokenExpiry = 12 * time.Hour
)

// 조직 코드 형식
const (
	// OrganizationCodePrefix 조직 코드 접두사
	OrganizationCodePrefix = "ORG-"

	// OrganizationCodeBase 카운터 값에 더하는 기준값 (첫 코드 ORG-1001)
	OrganizationCodeBase = 1000
)

// 사용자 이름 생성
const (
	// UsernameAlphabet 자동 생성 사용자 이름 접미사 문자 집합
	UsernameAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// UsernameSuffixLength 접미사 길이
	UsernameSuffixLength = 10
)

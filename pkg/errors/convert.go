package errors

import "net/http"

// 에러 코드 → HTTP 상태 코드 매핑 테이블
var codeMapping = map[string]int{
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidArgument:    http.StatusBadRequest,
	ErrUnauthenticated:    http.StatusUnauthorized,
	ErrMissingCredentials: http.StatusForbidden,
	ErrUnauthorized:       http.StatusForbidden,
	ErrConflict:           http.StatusConflict,
	ErrTooManyRequests:    http.StatusTooManyRequests,
	ErrTimeout:            http.StatusGatewayTimeout,
	ErrNotImplemented:     http.StatusNotImplemented,
}

// GetCodeMapping은 에러 코드에 대응하는 HTTP 상태 코드를 반환합니다.
// 알 수 없는 코드는 500으로 처리합니다.
func GetCodeMapping(code string) int {
	if status, ok := codeMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

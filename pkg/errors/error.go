package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string  // 에러 코드 반환
	Unwrap() error // 내부 에러 반환
}

// AppError는 기본 에러 구현체입니다
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message는 내부 에러를 제외한 메시지만 반환합니다
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap은 기존 에러를 래핑합니다
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 기존 AppError인 경우 코드를 유지합니다
	var appErr *AppError
	if As(err, &appErr) {
		return NewAppError(appErr.Code(), message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// Code는 에러 체인에서 AppError 코드를 찾아 반환합니다. 없으면 ErrInternal.
func Code(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

// HasCode는 에러가 주어진 코드를 가지는지 확인합니다
func HasCode(err error, code string) bool {
	return err != nil && Code(err) == code
}

// 자주 쓰는 에러 생성 헬퍼

func InvalidArgument(message string) *AppError {
	return NewAppError(ErrInvalidArgument, message, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

func Unauthenticated(message string) *AppError {
	return NewAppError(ErrUnauthenticated, message, nil)
}

func MissingCredentials(message string) *AppError {
	return NewAppError(ErrMissingCredentials, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(ErrUnauthorized, message, nil)
}

func Conflict(message string) *AppError {
	return NewAppError(ErrConflict, message, nil)
}

func NotImplemented(message string) *AppError {
	return NewAppError(ErrNotImplemented, message, nil)
}

// Internal은 저장소/런타임 실패를 감쌉니다. 내부 메시지는 응답에 그대로 노출됩니다.
func Internal(message string, err error) *AppError {
	return NewAppError(ErrInternal, message, err)
}

package errors

import (
	"go.uber.org/zap"
)

// LogError는 에러를 구조화된 로그로 기록합니다.
// 클라이언트 에러(4xx 계열 코드)는 Warn, 나머지는 Error 레벨로 기록합니다.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil || logger == nil {
		return
	}

	allFields := make([]zap.Field, 0, len(fields)+3)
	allFields = append(allFields, zap.Error(err))

	code := Code(err)
	status := ToHTTPStatus(code)
	allFields = append(allFields,
		zap.String("error_code", code),
		zap.Int("http_status", status),
	)
	allFields = append(allFields, fields...)

	if status < 500 {
		logger.Warn(msg, allFields...)
		return
	}
	logger.Error(msg, allFields...)
}

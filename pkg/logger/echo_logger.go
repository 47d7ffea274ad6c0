package logger

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"go.uber.org/zap"
)

// maskAuthorization Bearer 토큰의 앞/뒤 일부만 남기고 마스킹합니다.
func maskAuthorization(val string) string {
	if len(val) > 15 {
		return val[:10] + "..." + val[len(val)-5:]
	}
	return "[MASKED]"
}

// NewEchoRequestLogger는 Echo 서버를 위한 Request Logger를 생성합니다.
// 4xx는 Warn, 5xx는 Error, 나머지는 Info 레벨로 기록합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		// 에러는 글로벌 핸들러로 넘겨 실제 응답 상태 코드를 기록합니다
		HandleError:   true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogMethod:     true,
		LogURI:        true,
		LogRoutePath:  true,
		LogRequestID:  true,
		LogUserAgent:  true,
		LogStatus:     true,
		LogError:      true,
		LogHeaders:    []string{"Authorization"},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.uri", v.URI),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
			}

			// Authorization 헤더는 마스킹 처리
			for k, values := range v.Headers {
				if len(values) > 0 && http.CanonicalHeaderKey(k) == "Authorization" {
					fields = append(fields, zap.String("request.authorization", maskAuthorization(values[0])))
				}
			}

			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}

			switch {
			case v.Status >= 500:
				logger.Error("Server error", fields...)
			case v.Status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	})
}

// WithEchoLogger Echo에 zap 로거와 envelope 형식의 에러 핸들러를 설정합니다.
// 모든 에러 응답은 {status, statusCode, message} 형식으로 작성됩니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.Logger = NewEchoZapLogger(logger)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		status := http.StatusInternalServerError
		message := err.Error()

		var echoErr *echo.HTTPError
		if apperrors.As(err, &echoErr) && apperrors.Code(err) == apperrors.ErrInternal {
			// 라우팅/바인딩 등 Echo 내부 에러
			status = echoErr.Code
			if m, ok := echoErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
			err = apperrors.FromHTTPError(echoErr)
		} else {
			status = apperrors.ToHTTPStatus(apperrors.Code(err))
			// 4xx 응답에는 내부 원인을 붙이지 않습니다
			var appErr *apperrors.AppError
			if status < 500 && apperrors.As(err, &appErr) {
				message = appErr.Message()
			}
		}

		apperrors.LogError(logger, err, "HTTP error",
			zap.Int("status", status),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.String("ip", c.RealIP()),
		)

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, map[string]interface{}{
				"status":     apperrors.StatusLabel(status),
				"statusCode": status,
				"message":    message,
			})
		}
		if err != nil {
			logger.Error("Failed to send error response", zap.Error(err))
		}
	}
}

// EchoZapLogger는 echo.Logger 인터페이스를 구현한 zap 로거 래퍼입니다.
type EchoZapLogger struct {
	Logger *zap.Logger
	level  log.Lvl
}

// NewEchoZapLogger는 Echo의 Logger 인터페이스를 구현한 zap 로거 래퍼를 생성합니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	return &EchoZapLogger{Logger: logger, level: log.INFO}
}

func (l *EchoZapLogger) sugar() *zap.SugaredLogger { return l.Logger.Sugar() }

// Output Echo 로깅을 위한 Writer를 반환합니다.
func (l *EchoZapLogger) Output() io.Writer { return &zapWriter{logger: l.Logger} }

// 아래 설정 메서드들은 zap 설정을 따르므로 무시됩니다.
func (l *EchoZapLogger) SetOutput(w io.Writer) {}
func (l *EchoZapLogger) Level() log.Lvl        { return l.level }
func (l *EchoZapLogger) SetLevel(v log.Lvl)    { l.level = v }
func (l *EchoZapLogger) SetHeader(h string)    {}
func (l *EchoZapLogger) Prefix() string        { return "" }
func (l *EchoZapLogger) SetPrefix(p string)    {}

func (l *EchoZapLogger) Print(i ...interface{})                    { l.sugar().Info(i...) }
func (l *EchoZapLogger) Printf(format string, i ...interface{})    { l.sugar().Infof(format, i...) }
func (l *EchoZapLogger) Printj(j log.JSON)                         { l.Logger.Info("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Debug(i ...interface{})                    { l.sugar().Debug(i...) }
func (l *EchoZapLogger) Debugf(format string, i ...interface{})    { l.sugar().Debugf(format, i...) }
func (l *EchoZapLogger) Debugj(j log.JSON)                         { l.Logger.Debug("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Info(i ...interface{})                     { l.sugar().Info(i...) }
func (l *EchoZapLogger) Infof(format string, i ...interface{})     { l.sugar().Infof(format, i...) }
func (l *EchoZapLogger) Infoj(j log.JSON)                          { l.Logger.Info("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Warn(i ...interface{})                     { l.sugar().Warn(i...) }
func (l *EchoZapLogger) Warnf(format string, i ...interface{})     { l.sugar().Warnf(format, i...) }
func (l *EchoZapLogger) Warnj(j log.JSON)                          { l.Logger.Warn("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Error(i ...interface{})                    { l.sugar().Error(i...) }
func (l *EchoZapLogger) Errorf(format string, i ...interface{})    { l.sugar().Errorf(format, i...) }
func (l *EchoZapLogger) Errorj(j log.JSON)                         { l.Logger.Error("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Fatal(i ...interface{})                    { l.sugar().Fatal(i...) }
func (l *EchoZapLogger) Fatalf(format string, i ...interface{})    { l.sugar().Fatalf(format, i...) }
func (l *EchoZapLogger) Fatalj(j log.JSON)                         { l.Logger.Fatal("json_message", zap.Any("json", j)) }
func (l *EchoZapLogger) Panic(i ...interface{})                    { l.sugar().Panic(i...) }
func (l *EchoZapLogger) Panicf(format string, i ...interface{})    { l.sugar().Panicf(format, i...) }
func (l *EchoZapLogger) Panicj(j log.JSON)                         { l.Logger.Panic("json_message", zap.Any("json", j)) }

// zapWriter는 io.Writer 인터페이스를 구현한 zap 로거 래퍼입니다.
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.logger.Info(string(p))
	return len(p), nil
}

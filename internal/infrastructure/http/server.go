package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	handlers "github.com/wekeepgrowing/hrms-backend/internal/adapter/handler/http"
	"github.com/wekeepgrowing/hrms-backend/internal/domain/model"
	appinit "github.com/wekeepgrowing/hrms-backend/internal/init"
	"github.com/wekeepgrowing/hrms-backend/internal/middleware/auth"
	apperrors "github.com/wekeepgrowing/hrms-backend/pkg/errors"
	"github.com/wekeepgrowing/hrms-backend/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MsgTooManyRequests 로그인 요청 제한 초과 메시지
const MsgTooManyRequests = "Too many login attempts. Please try again later."

// Config HTTP 서버 설정
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	BodyLimit       string
	AllowOrigins    []string

	// 로그인 요청 제한 (IP당 초당 요청 수, 버스트). 0이면 제한하지 않습니다.
	LoginRateLimit float64
	LoginBurst     int
}

// Server HTTP 서버 구조체
type Server struct {
	config   Config
	router   *echo.Echo
	server   *http.Server
	logger   *zap.Logger
	useCases *appinit.UseCases
	health   map[string]handlers.Pinger
}

// NewServer HTTP 서버 생성
func NewServer(cfg Config, useCases *appinit.UseCases, health map[string]handlers.Pinger, zapLogger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// 요청 본문 디코딩과 검증
	e.Binder = handlers.NewStrictBinder()
	e.Validator = handlers.NewRequestValidator()

	// 기본 미들웨어 설정
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	// 로그 미들웨어 설정
	e.Use(logger.NewEchoRequestLogger(zapLogger))

	// Echo 로거와 envelope 에러 핸들러 설정
	logger.WithEchoLogger(e, zapLogger)

	return &Server{
		config: cfg,
		router: e,
		server: &http.Server{
			Addr:         cfg.Address,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger:   zapLogger,
		useCases: useCases,
		health:   health,
	}
}

// Router Echo 인스턴스 반환
func (s *Server) Router() *echo.Echo {
	return s.router
}

// RegisterRoutes HTTP 라우트 등록
func (s *Server) RegisterRoutes() {
	superAdminHandler := handlers.NewSuperAdminHandler(s.logger, s.useCases.SuperAdminUseCase)
	organizationHandler := handlers.NewOrganizationHandler(s.logger, s.useCases.OrganizationUseCase)
	orgAdminHandler := handlers.NewOrgAdminHandler(s.logger, s.useCases.OrgAdminUseCase)
	payrollHandler := handlers.NewPayrollHandler(s.logger, s.useCases.PayrollUseCase)
	authHandler := handlers.NewAuthHandler(s.logger, s.useCases.TokenUseCase)
	healthHandler := handlers.NewHealthHandler(s.logger, s.health)

	// 헬스 체크
	s.router.GET("/health", healthHandler.Health)

	api := s.router.Group("/api")

	// 인증 미들웨어와 역할 게이트
	requireToken := auth.JWTMiddleware(auth.JWTConfig{
		TokenUseCase: s.useCases.TokenUseCase,
		Logger:       s.logger,
	})
	superAdminOnly := auth.RequireRole(auth.MsgSuperAdminOnly, model.RoleSuperAdmin)
	organizationOnly := auth.RequireRole(auth.MsgOrganizationOnly, model.RoleOrganization)
	loginLimit := s.loginRateLimiter()

	// 슈퍼 관리자
	superAdmin := api.Group("/superadmin")
	superAdmin.POST("/register", superAdminHandler.Register)
	superAdmin.POST("/login", superAdminHandler.Login, loginLimit)
	superAdmin.GET("/me", superAdminHandler.Me, requireToken, superAdminOnly)

	// 조직
	organization := api.Group("/organization")
	organization.POST("/login", organizationHandler.Login, loginLimit)
	organization.POST("/create", organizationHandler.Create, requireToken, superAdminOnly)
	organization.GET("/superadmin/all", organizationHandler.ListForSuperAdmin, requireToken)
	organization.GET("/:id", organizationHandler.Get, requireToken, superAdminOnly)
	organization.PUT("/:id", organizationHandler.Update, requireToken, superAdminOnly)
	organization.DELETE("/:id", organizationHandler.Delete, requireToken, superAdminOnly)
	organization.POST("/:id/admins", orgAdminHandler.Create, requireToken, superAdminOnly)

	// 조직 관리자
	api.POST("/orgadmin/login", orgAdminHandler.Login, loginLimit)

	// 급여
	payroll := api.Group("/payroll", requireToken)
	payroll.POST("/create", payrollHandler.Create, organizationOnly)
	payroll.GET("/organization/getall/:orgId", payrollHandler.ListByOrganization)
	payroll.GET("/:payrollId", payrollHandler.Get)
	payroll.PUT("/:payrollId", payrollHandler.Update, organizationOnly)
	payroll.DELETE("/:payrollId", payrollHandler.Delete)

	// 토큰 폐기
	api.POST("/auth/logout", authHandler.Logout, requireToken)
}

// loginRateLimiter 클라이언트 IP 기준 로그인 요청 제한 미들웨어
func (s *Server) loginRateLimiter() echo.MiddlewareFunc {
	if s.config.LoginRateLimit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(s.config.LoginRateLimit),
		Burst:     s.config.LoginBurst,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Internal("Failed to identify client", err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			s.logger.Warn("로그인 요청 제한 초과", zap.String("ip", identifier))
			return apperrors.NewAppError(apperrors.ErrTooManyRequests, MsgTooManyRequests, nil)
		},
	})
}

// Start HTTP 서버 시작
func (s *Server) Start() error {
	s.logger.Info("HTTP 서버 시작", zap.String("address", s.config.Address))

	s.server.Handler = s.router
	if err := s.router.StartServer(s.server); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP 서버 시작 실패: %w", err)
	}
	return nil
}

// Stop HTTP 서버 종료
func (s *Server) Stop() error {
	s.logger.Info("HTTP 서버 종료 중...")

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP 서버 종료 실패: %w", err)
	}

	s.logger.Info("HTTP 서버 종료 완료")
	return nil
}

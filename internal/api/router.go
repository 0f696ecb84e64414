package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/starsky/backend/internal/api/handler"
	"github.com/starsky/backend/internal/api/middleware"
	"github.com/starsky/backend/internal/core/domain"
	"github.com/starsky/backend/internal/core/service"
	"github.com/starsky/backend/internal/infrastructure/config"
	"github.com/starsky/backend/internal/infrastructure/db/postgres"
)

// version is reported by GET /version.
const version = "1.0.0"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *gorm.DB, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("starsky"))
	// Browsers cache the preflight answer, so the method list is the superset
	// the frontend will ever need.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{
			http.MethodOptions, http.MethodGet, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))

	// --- Dependencies ---
	tokens, err := service.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	userRepo := postgres.NewUserRepository(db)
	teamRepo := postgres.NewTeamRepository(db)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo)
	inviteService := service.NewInviteService()

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, userService)
	teamHandler := handler.NewTeamHandler(teamService)
	inviteHandler := handler.NewInviteHandler(inviteService)

	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.Token)
	e.GET("/auth/token/validate", authHandler.Validate, authRequired)

	// --- User routes ---
	e.POST("/users/", userHandler.Register)
	e.GET("/user", userHandler.Self, authRequired)
	e.PATCH("/user", userHandler.UpdateSelf, authRequired)

	// --- Role gated routes ---
	e.GET("/team", teamHandler.List, authRequired,
		middleware.RoleGuard(domain.RoleManager, domain.RoleEmployee))
	e.POST("/invites/", inviteHandler.Create, authRequired,
		middleware.RoleGuard(domain.RoleManager))

	// --- Probes and metadata (no auth required) ---
	versionHandler := handler.NewVersionHandler(version, cfg.Env)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/version", versionHandler.Version)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

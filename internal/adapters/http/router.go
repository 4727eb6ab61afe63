package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/exercises-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/exercises-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/exercises-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/exercises-service/internal/platform/config"
	"github.com/jsamuelsen/exercises-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	AuthConfig *config.AuthConfig
	AppConfig  *config.AppConfig

	HealthHandler     *handlers.HealthHandler
	QuaternionHandler *handlers.QuaternionHandler
	ExerciseHandler   *handlers.ExerciseHandler

	// Timeout is the deadline put on every /api/v1 request. Zero disables it.
	Timeout time.Duration
}

// SetupRouter installs the middleware chain and all routes. Global
// middleware runs in this order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing, then request metrics
//  5. Logging (skips /-/)
//
// /-/ carries the operational endpoints with no auth and no deadline.
// /api/v1 adds the request timeout and the request-scoped memo.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "exercises-service"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(nil),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	engine.NoRoute(func(c *gin.Context) {
		dto.RespondWithCode(c, dto.ErrorCodeNotFound, "route "+c.Request.URL.Path+" not found")
	})
	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest, "method "+c.Request.Method+" not allowed",
		).WithTraceID(dto.GetTraceID(c)))
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1")
	apiV1.Use(middleware.Timeout(cfg.Timeout), middleware.RequestScope())

	setupAPIRoutes(apiV1, cfg)
}

func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuaternionHandler != nil {
		cfg.QuaternionHandler.RegisterQuaternionRoutes(rg)
	}

	if cfg.ExerciseHandler != nil {
		cfg.ExerciseHandler.RegisterExerciseRoutes(rg, middleware.Guards(cfg.AuthConfig)...)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with the default timeout.
func NewDefaultRouterConfig(
	appCfg *config.AppConfig,
	authCfg *config.AuthConfig,
	health *handlers.HealthHandler,
	quaternions *handlers.QuaternionHandler,
	exercises *handlers.ExerciseHandler,
) RouterConfig {
	return RouterConfig{
		AuthConfig:        authCfg,
		AppConfig:         appCfg,
		HealthHandler:     health,
		QuaternionHandler: quaternions,
		ExerciseHandler:   exercises,
		Timeout:           DefaultRequestTimeout,
	}
}

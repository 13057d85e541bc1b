package handlers

import (
	"github.com/SscSPs/ar_statements/cmd/docs"
	portssvc "github.com/SscSPs/ar_statements/internal/core/ports/services"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// sendLimiter throttles statement sending and tracker receives business
// events; either may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	sendLimiter *limiter.Limiter,
	tracker middleware.EventTracker,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, sendLimiter, tracker)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	sendLimiter *limiter.Limiter,
	tracker middleware.EventTracker,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	var sendLimits []gin.HandlerFunc
	if sendLimiter != nil {
		sendLimits = append(sendLimits, middleware.RateLimit(sendLimiter))
	}

	registerCurrencyRoutes(v1, service.Currency)
	registerReportingRoutes(v1, service.OutstandingReport, cfg.DefaultCompanyID)

	partners := v1.Group("/partners")
	registerPartnerRoutes(partners, service.Partner, service.OutstandingReport)
	registerDueStatementRoutes(partners, service.DueStatement)
	registerDispatchRoutes(partners, service.Dispatch, tracker, sendLimits...)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

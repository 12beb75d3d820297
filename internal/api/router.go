package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/tradelens/internal/middleware"
)

// RouterConfig holds the cross-cutting limits applied to every route.
type RouterConfig struct {
	RequestTimeout     time.Duration
	RateLimitPerMinute int
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any) and stored screenshots (/uploads).
//   - Configures API v1 routes (/api/v1).
//
// Health and readiness endpoints are registered by app.InitializeApp.
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	registerValidators()

	router := gin.New()
	router.MaxMultipartMemory = handler.opts.MaxUploadBytes

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute),
		middleware.Timeout(cfg.RequestTimeout),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if up := handler.Uploads(); up != nil {
		router.Static(up.Prefix(), up.Dir())
	}

	v1 := router.Group("/api/v1")
	{
		trades := v1.Group("/trades")
		trades.GET("", handler.ListTrades)
		trades.POST("", handler.CreateTrade)
		trades.GET("/stats", handler.GetStats)
		trades.GET("/:id", handler.GetTrade)
		trades.PUT("/:id", handler.UpdateTrade)
		trades.DELETE("/:id", handler.DeleteTrade)
		trades.POST("/:id/screenshots", handler.AddScreenshots)
		trades.DELETE("/:id/screenshots/:name", handler.DeleteScreenshot)

		v1.POST("/extract", handler.ExtractScreenshot)
		v1.POST("/extract/text", handler.ExtractText)
	}

	return router
}

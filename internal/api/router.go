package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tastebite/orderapi/internal/api/handlers"
	"github.com/tastebite/orderapi/internal/api/middleware"
	"github.com/tastebite/orderapi/internal/catalog"
	"github.com/tastebite/orderapi/internal/config"
	"github.com/tastebite/orderapi/internal/placement"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, cat *catalog.Catalog, store *placement.Store, svc *placement.Service, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.Prometheus())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/menu", handlers.HandleGetMenu(cat))
		v1.POST("/cart/quote", handlers.HandleCartQuote(cfg, logger))
		v1.POST("/checkout", handlers.HandleCheckout(cfg, svc, logger))
		v1.GET("/orders", handlers.HandleListOrders(store, logger))
		v1.GET("/orders/:id", handlers.HandleGetOrder(store, logger))
		v1.GET("/orders/:id/tracking", handlers.HandleGetOrderTracking(store, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

package handlers

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the HTTP-level settings of NewRouter.
type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter wires middleware and the /api/v1 routes.
func NewRouter(searchH *SearchHandler, sessionH *SessionHandler, cfg RouterConfig) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	config := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = cfg.AllowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		// Search Routes
		api.GET("/categories", searchH.ListCategories)
		api.GET("/search", searchH.Search)

		// Session Routes
		api.POST("/sessions", sessionH.Mount)
		api.GET("/sessions/:id", sessionH.Get)
		api.POST("/sessions/:id/query", sessionH.SubmitQuery)
		api.POST("/sessions/:id/filter", sessionH.SelectFilter)
		api.POST("/sessions/:id/clear", sessionH.Clear)
		api.PUT("/sessions/:id/refinement", sessionH.ApplyRefinement)
		api.DELETE("/sessions/:id/refinement", sessionH.ClearRefinement)
		api.DELETE("/sessions/:id", sessionH.Unmount)
	}
	return r, nil
}

// RequestLogger logs one line per request, at error level for 5xx responses.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		if status >= 500 {
			logger.Error("request failed", attrs...)
			return
		}
		logger.Info("request", attrs...)
	}
}

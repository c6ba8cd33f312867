package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unmute/config"
	"unmute/di"
	middleware_custom "unmute/middleware"
	"unmute/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request ID first so every later log line carries one.
	e.Use(middleware_custom.RequestIDMiddleware())

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Request-ID"},
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/metrics")
		},
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	feedHandler := NewFeedHandler(container.FeedOrchestrator)
	v1.GET("/feeds/:feedType", feedHandler.GetFeedPage)
	v1.POST("/feeds/sessions", feedHandler.OpenSession)
	v1.POST("/feeds/sessions/:id/more", feedHandler.FetchMore)
	v1.POST("/feeds/sessions/:id/refresh", feedHandler.Refresh)
	v1.DELETE("/feeds/sessions/:id", feedHandler.CloseSession)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
)

// MetricsExporter принимает метрики запросов и отдает их по /metrics.
type MetricsExporter interface {
	middlewares.RequestObserver
	Handler() http.Handler
}

type RouterParams struct {
	LinkService LinkShortener
	PingService ConnectionChecker
	// Metrics необязателен. Без него /metrics не регистрируется.
	Metrics        MetricsExporter
	Logger         *zap.Logger
	BaseURL        string
	RequestTimeout time.Duration
}

func SetupRouter(params RouterParams) *gin.Engine {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware(logger))
	r.Use(middlewares.RecoveryWithLogger(logger))
	if params.Metrics != nil {
		r.Use(middlewares.Metrics(params.Metrics))
	}
	r.Use(middlewares.ContextTimeout(params.RequestTimeout))
	r.Use(middlewares.GzipMiddleware())

	linksController := NewLinksController(params.LinkService, params.BaseURL)
	redirectsController := NewRedirectsController(params.LinkService)

	if params.PingService != nil {
		r.GET("/ping", NewPingController(params.PingService).Ping)
	}
	if params.Metrics != nil {
		r.GET("/metrics", gin.WrapH(params.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	api.POST("/links", linksController.Create)
	api.GET("/links/:slug", linksController.Show)

	r.GET("/:slug", redirectsController.Redirect)
	r.NoRoute(NotFoundPage)
	return r
}

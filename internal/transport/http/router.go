package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/gift_ledger/internal/ports"
	"github.com/Gunvolt24/gift_ledger/pkg/httpx"
)

// maxBodyBytes — предел тела POST-запросов с пакетами.
const maxBodyBytes = 32 << 20

// maxTopK — верхняя граница k в /regions/top_list/:number.
const maxTopK = 10_000

type Handler struct {
	service        ports.LedgerService
	log            ports.Logger
	handlerTimeout time.Duration
}

// NewHandler — handlerTimeout <= 0 отключает таймаут обработчика.
func NewHandler(service ports.LedgerService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — маршруты реестра, служебные эндпоинты и middleware.
// Пустой otelServiceName отключает трассировку запросов.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/reset", h.reset)

	r.POST("/regions", h.insertRegions)
	r.GET("/regions/total", h.regionTotals)
	r.GET("/regions/top_list/:number", h.topList)

	r.POST("/orders", h.insertOrders)
	r.GET("/orders/total", h.ordersTotal)
	r.GET("/orders/popular", h.popularGift)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.handlerTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.handlerTimeout)
}

package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/gift_ledger/internal/ports"
)

// RequestLogger — журнал запросов к реестру; уровень по статусу ответа:
// 5xx — error, 4xx — warn, остальное — info. /metrics и /ping не логируются.
// request_id, source и trace_id добавляет сам логгер из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		switch route {
		case "/metrics", "/ping":
			return
		case "":
			route = "unmatched"
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		const format = "http %s %s route=%s status=%d size=%d ip=%s duration=%s"
		args := []any{
			c.Request.Method, c.Request.URL.Path, route, status,
			c.Writer.Size(), c.ClientIP(), time.Since(start),
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Errorf(ctx, format, args...)
		case status >= http.StatusBadRequest:
			log.Warnf(ctx, format, args...)
		default:
			log.Infof(ctx, format, args...)
		}
	}
}

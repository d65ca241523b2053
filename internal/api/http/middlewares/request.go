package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// quietPaths — пробы и скрейп метрик, их пишем только на debug.
var quietPaths = map[string]bool{
	"/liveness":  true,
	"/readyness": true,
	"/metrics":   true,
}

// RequestLogger логирует запрос после ответа. Уровень по статусу: 5xx — error, 4xx — warn,
// остальное — info. Если в маршруте есть :id, он пишется как session_id.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", path,
			"status", status,
			"ip", c.ClientIP(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if id := c.Param("id"); id != "" {
			attrs = append(attrs, "session_id", id)
		}
		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs, "error", last.Error())
		}

		switch {
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		case quietPaths[c.Request.URL.Path]:
			log.Debug("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}

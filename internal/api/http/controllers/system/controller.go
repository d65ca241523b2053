package system

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger — зависимость, доступность которой проверяет readiness (БД журнала, Redis и т.п.).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller — системные маршруты: liveness, readiness, метрики.
type Controller struct {
	checks map[string]Pinger
	log    *slog.Logger
}

// New создаёт системный контроллер. checks — имя зависимости -> проверка; пустой набор означает "всегда готов".
func New(checks map[string]Pinger, log *slog.Logger) *Controller {
	return &Controller{checks: checks, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.checks[name].Ping(ctx.Request.Context()); err != nil {
			c.log.Warn("ready check failed", "dependency", name, "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "dependency": name, "error": err.Error()})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhive/admin-gateway/internal/service"
)

type upstreamPinger interface {
	Ping(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics  *service.MetricsService
	upstream upstreamPinger
}

// NewMetricsHandler constructs a metrics handler. upstream may be nil, in
// which case readiness degrades to liveness.
func NewMetricsHandler(metrics *service.MetricsService, upstream upstreamPinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, upstream: upstream}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds OK as long as the process serves requests.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the gateway can do useful work, which for a pure
// proxy means the upstream API answers.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.upstream != nil {
		if err := h.upstream.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "upstream": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

package server

import (
	"net/http"

	"github.com/anygymuk/anygymAPI/internal/api"
	"github.com/anygymuk/anygymAPI/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// @Summary      Notification queue status
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /queue-status [get]
func QueueStatus(notifier *notify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		length := notifier.QueueLength(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"queued": length})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

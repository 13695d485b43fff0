package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RavinduUni/coinpulse/pkg/config"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health returns basic liveness status
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "coinpulse",
		"timestamp": time.Now(),
	})
}

// Ready reports whether the service can actually reach its upstream: without
// a base URL and API key every page would 502, so readiness fails them.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.cfg.Validate(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "not ready",
			"service":   "coinpulse",
			"error":     err.Error(),
			"timestamp": time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"service":   "coinpulse",
		"upstream":  h.cfg.Upstream.BaseURL,
		"timestamp": time.Now(),
	})
}

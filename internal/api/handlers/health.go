package handlers

import (
	"net/http"
	"time"

	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	healthService service.HealthServiceInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService service.HealthServiceInterface) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health reports spreadsheet connectivity and row counts
// @Summary Health check
// @Description Reads every collection and reports whether the spreadsheet is reachable, with per-collection row counts
// @Tags health
// @Produce json
// @Success 200 {object} service.HealthStatus "Spreadsheet reachable"
// @Failure 503 {object} service.HealthStatus "Spreadsheet unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())

	code := http.StatusOK
	if !status.Connected {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

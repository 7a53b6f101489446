package handlers

import (
	"net/http"

	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConfigHandler serves the CONFIG tab
type ConfigHandler struct {
	configService service.ConfigServiceInterface
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configService service.ConfigServiceInterface) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// GetConfig handles GET /config
// @Summary Get configuration
// @Description Raw CONFIG rows plus the effective ordered pipeline stages
// @Tags config
// @Produce json
// @Success 200 {object} service.ConfigResponse
// @Failure 500 {object} ErrorResponse
// @Router /config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.configService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

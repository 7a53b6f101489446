package handlers

import (
	"net/http"

	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StartupHandler handles HTTP requests for startups
type StartupHandler struct {
	startupService service.StartupServiceInterface
}

// NewStartupHandler creates a new startup handler
func NewStartupHandler(startupService service.StartupServiceInterface) *StartupHandler {
	return &StartupHandler{startupService: startupService}
}

// ListStartups handles GET /startups
// @Summary List startups
// @Tags startups
// @Produce json
// @Success 200 {array} models.Startup
// @Failure 500 {object} ErrorResponse
// @Router /startups [get]
func (h *StartupHandler) ListStartups(c *gin.Context) {
	startups, err := h.startupService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, startups)
}

// ListStartupSummaries handles GET /startups/summary
// @Summary List startups with dashboard counters
// @Description Each startup with its project count, open task count and number of linked materials
// @Tags startups
// @Produce json
// @Success 200 {array} service.StartupSummary
// @Failure 500 {object} ErrorResponse
// @Router /startups/summary [get]
func (h *StartupHandler) ListStartupSummaries(c *gin.Context) {
	summaries, err := h.startupService.Summaries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// CreateStartup handles POST /startups
// @Summary Create a startup
// @Tags startups
// @Accept json
// @Produce json
// @Param startup body service.CreateStartupRequest true "Startup"
// @Success 201 {object} models.Startup
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /startups [post]
func (h *StartupHandler) CreateStartup(c *gin.Context) {
	var req service.CreateStartupRequest
	if !bindJSON(c, &req) {
		return
	}

	startup, err := h.startupService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, startup)
}

// UpdateStartup handles PUT /startups
// @Summary Update a startup
// @Description Partial update keyed by startup_id; omitted fields keep their current value
// @Tags startups
// @Accept json
// @Produce json
// @Param startup body service.UpdateStartupRequest true "Fields to change"
// @Success 200 {object} models.Startup
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /startups [put]
func (h *StartupHandler) UpdateStartup(c *gin.Context) {
	var req service.UpdateStartupRequest
	if !bindJSON(c, &req) {
		return
	}

	startup, err := h.startupService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, startup)
}

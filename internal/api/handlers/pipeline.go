package handlers

import (
	"net/http"

	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PipelineHandler handles HTTP requests for project pipelines and the legacy startup pipeline
type PipelineHandler struct {
	pipelineService service.PipelineServiceInterface
	legacyService   service.LegacyPipelineServiceInterface
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService service.PipelineServiceInterface, legacyService service.LegacyPipelineServiceInterface) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
		legacyService:   legacyService,
	}
}

// ListProjectInvestors handles GET /project-investors?project_id=
// @Summary List project pipeline links
// @Tags pipeline
// @Produce json
// @Param project_id query string false "Only links of this project"
// @Success 200 {array} models.ProjectInvestor
// @Failure 500 {object} ErrorResponse
// @Router /project-investors [get]
func (h *PipelineHandler) ListProjectInvestors(c *gin.Context) {
	links, err := h.pipelineService.List(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// GetBoard handles GET /project-investors/board?project_id=
// @Summary Pipeline board
// @Description Links grouped into one column per configured stage, in order; links in stages no longer configured are listed under unstaged
// @Tags pipeline
// @Produce json
// @Param project_id query string true "Project ID"
// @Success 200 {object} service.PipelineBoard
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /project-investors/board [get]
func (h *PipelineHandler) GetBoard(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "project_id is required"})
		return
	}

	board, err := h.pipelineService.Board(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// CreateProjectInvestor handles POST /project-investors
// @Summary Add an investor to a project pipeline
// @Description The stage defaults to the first configured stage. A project holds one link per investor.
// @Tags pipeline
// @Accept json
// @Produce json
// @Param link body service.CreateProjectInvestorRequest true "Link"
// @Success 201 {object} models.ProjectInvestor
// @Failure 400 {object} ErrorResponse "Missing ids or unknown stage"
// @Failure 409 {object} ErrorResponse "Investor already in this project's pipeline"
// @Failure 500 {object} ErrorResponse
// @Router /project-investors [post]
func (h *PipelineHandler) CreateProjectInvestor(c *gin.Context) {
	var req service.CreateProjectInvestorRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.pipelineService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateProjectInvestor handles PUT /project-investors
// @Summary Update a project pipeline link
// @Description Moving the link to another stage stamps last_update with today's date
// @Tags pipeline
// @Accept json
// @Produce json
// @Param link body service.UpdateProjectInvestorRequest true "Fields to change"
// @Success 200 {object} models.ProjectInvestor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /project-investors [put]
func (h *PipelineHandler) UpdateProjectInvestor(c *gin.Context) {
	var req service.UpdateProjectInvestorRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.pipelineService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// ListStartupInvestors handles GET /startup-investors?startup_id=
// @Summary List legacy startup pipeline links
// @Tags legacy-pipeline
// @Produce json
// @Param startup_id query string false "Only links of this startup"
// @Success 200 {array} models.StartupInvestor
// @Failure 500 {object} ErrorResponse
// @Router /startup-investors [get]
func (h *PipelineHandler) ListStartupInvestors(c *gin.Context) {
	links, err := h.legacyService.List(c.Request.Context(), c.Query("startup_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// CreateStartupInvestor handles POST /startup-investors
// @Summary Create a legacy startup pipeline link
// @Tags legacy-pipeline
// @Accept json
// @Produce json
// @Param link body service.CreateStartupInvestorRequest true "Link"
// @Success 201 {object} models.StartupInvestor
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /startup-investors [post]
func (h *PipelineHandler) CreateStartupInvestor(c *gin.Context) {
	var req service.CreateStartupInvestorRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.legacyService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateStartupInvestor handles PUT /startup-investors
// @Summary Update a legacy startup pipeline link
// @Tags legacy-pipeline
// @Accept json
// @Produce json
// @Param link body service.UpdateStartupInvestorRequest true "Fields to change"
// @Success 200 {object} models.StartupInvestor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /startup-investors [put]
func (h *PipelineHandler) UpdateStartupInvestor(c *gin.Context) {
	var req service.UpdateStartupInvestorRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.legacyService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

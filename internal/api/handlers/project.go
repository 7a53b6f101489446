package handlers

import (
	"net/http"

	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects handles GET /projects?startup_id=
// @Summary List projects
// @Tags projects
// @Produce json
// @Param startup_id query string false "Only projects of this startup"
// @Success 200 {array} models.Project
// @Failure 500 {object} ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context(), c.Query("startup_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListProjectSummaries handles GET /projects/summary?startup_id=
// @Summary List projects with counters
// @Description Each project with its startup name, open task count and pipeline size
// @Tags projects
// @Produce json
// @Param startup_id query string false "Only projects of this startup"
// @Success 200 {array} service.ProjectSummary
// @Failure 500 {object} ErrorResponse
// @Router /projects/summary [get]
func (h *ProjectHandler) ListProjectSummaries(c *gin.Context) {
	summaries, err := h.projectService.Summaries(c.Request.Context(), c.Query("startup_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// CreateProject handles POST /projects
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Startup not found"
// @Failure 500 {object} ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /projects
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req service.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

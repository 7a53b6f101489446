package handlers

import (
	"net/http"

	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team members
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListTeam handles GET /team
// @Summary List team members
// @Tags team
// @Produce json
// @Success 200 {array} models.TeamMember
// @Failure 500 {object} ErrorResponse
// @Router /team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	members, err := h.teamService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateTeamMember handles POST /team
// @Summary Add a team member
// @Tags team
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member"
// @Success 201 {object} models.TeamMember
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /team [post]
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember handles PUT /team
// @Summary Update a team member
// @Tags team
// @Accept json
// @Produce json
// @Param member body service.UpdateTeamMemberRequest true "Fields to change, keyed by team_id"
// @Success 200 {object} models.TeamMember
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /team [put]
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	var req service.UpdateTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.teamService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

package handlers

import (
	"net/http"

	"dealflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvestorHandler handles HTTP requests for the investor directory
type InvestorHandler struct {
	investorService service.InvestorServiceInterface
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(investorService service.InvestorServiceInterface) *InvestorHandler {
	return &InvestorHandler{investorService: investorService}
}

// ListInvestors handles GET /investors?tag=
// @Summary List investors
// @Tags investors
// @Produce json
// @Param tag query string false "Only investors carrying this tag"
// @Success 200 {array} models.Investor
// @Failure 500 {object} ErrorResponse
// @Router /investors [get]
func (h *InvestorHandler) ListInvestors(c *gin.Context) {
	investors, err := h.investorService.List(c.Request.Context(), c.Query("tag"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, investors)
}

// CreateInvestor handles POST /investors
// @Summary Create an investor
// @Tags investors
// @Accept json
// @Produce json
// @Param investor body service.CreateInvestorRequest true "Investor"
// @Success 201 {object} models.Investor
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /investors [post]
func (h *InvestorHandler) CreateInvestor(c *gin.Context) {
	var req service.CreateInvestorRequest
	if !bindJSON(c, &req) {
		return
	}

	investor, err := h.investorService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, investor)
}

// UpdateInvestor handles PUT /investors
// @Summary Update an investor
// @Tags investors
// @Accept json
// @Produce json
// @Param investor body service.UpdateInvestorRequest true "Fields to change"
// @Success 200 {object} models.Investor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /investors [put]
func (h *InvestorHandler) UpdateInvestor(c *gin.Context) {
	var req service.UpdateInvestorRequest
	if !bindJSON(c, &req) {
		return
	}

	investor, err := h.investorService.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, investor)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"moneyharbor/internal/llm"
	"moneyharbor/internal/services"
)

// GuideHandler handles guide expansion.
type GuideHandler struct {
	guideService services.GuideServicer
}

// NewGuideHandler creates a new GuideHandler.
func NewGuideHandler(guideService services.GuideServicer) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

// ExpandGuideRequest represents the request payload for a guide.
type ExpandGuideRequest struct {
	InvestmentID string          `json:"investmentId" binding:"required"`
	UserAmount   decimal.Decimal `json:"userAmount" swaggertype:"number"`
}

// ExpandGuideResponse wraps a generated guide.
type ExpandGuideResponse struct {
	Success bool       `json:"success"`
	Guide   *llm.Guide `json:"guide"`
}

// ExpandGuide handles generating an educational guide for one option.
// @Summary     Expand a guide
// @Description Generate a detailed educational report for a catalog option
// @Tags        guides
// @Accept      json
// @Produce     json
// @Param       request body ExpandGuideRequest true "Investment"
// @Success     200 {object} ExpandGuideResponse "Generated guide"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Investment not found"
// @Failure     502 {object} ErrorResponse "AI assistant failed"
// @Failure     503 {object} ErrorResponse "AI assistant not configured"
// @Router      /guides [post]
func (h *GuideHandler) ExpandGuide(c *gin.Context) {
	var req ExpandGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	guide, err := h.guideService.ExpandGuide(c.Request.Context(), req.InvestmentID, req.UserAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpandGuideResponse{Success: true, Guide: guide})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"moneyharbor/internal/catalog"
	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/recommend"
	"moneyharbor/internal/services"
)

// RecommendationHandler handles recommendation requests.
type RecommendationHandler struct {
	recommendationService services.RecommendationServicer
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService services.RecommendationServicer) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// RecommendationRequest represents the search form. Either riskLevel or
// riskScore must be set; riskLevel wins when both are.
type RecommendationRequest struct {
	Amount          decimal.Decimal `json:"amount" swaggertype:"number"`
	TimeHorizon     string          `json:"timeHorizon" binding:"required,horizon_label"`
	RiskLevel       string          `json:"riskLevel" binding:"omitempty,risk_level"`
	RiskScore       *int            `json:"riskScore" binding:"omitempty,min=0,max=100"`
	Liquidity       string          `json:"liquidity" binding:"required,liquidity_label"`
	KnowledgeLevel  string          `json:"knowledgeLevel" binding:"omitempty,knowledge_level"`
	AdditionalNotes string          `json:"additionalNotes" binding:"max=2000"`
	ClientID        string          `json:"clientId" binding:"omitempty,max=64"`
}

func (r RecommendationRequest) preferences() (recommend.UserPreferences, error) {
	if !r.Amount.IsPositive() {
		return recommend.UserPreferences{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	var risk catalog.Level
	switch {
	case r.RiskLevel != "":
		risk = catalog.Level(r.RiskLevel)
	case r.RiskScore != nil:
		risk = recommend.RiskLevelFromScore(*r.RiskScore)
	default:
		return recommend.UserPreferences{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "riskLevel or riskScore is required")
	}

	return recommend.UserPreferences{
		Amount:          r.Amount,
		TimeHorizon:     r.TimeHorizon,
		RiskLevel:       risk,
		Liquidity:       r.Liquidity,
		KnowledgeLevel:  catalog.KnowledgeLevel(r.KnowledgeLevel),
		AdditionalNotes: r.AdditionalNotes,
	}, nil
}

// Recommend handles a recommendation search.
// @Summary     Get recommendations
// @Description Score the catalog against the investor profile and return three diverse options. The AI recommender is used when configured, with the rules engine as fallback. Results are saved to My Harbor when clientId is set.
// @Tags        recommendations
// @Accept      json
// @Produce     json
// @Param       request body RecommendationRequest true "Investor profile"
// @Success     200 {object} services.RecommendationResult "Recommendations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recommendations [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	prefs, err := req.preferences()
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recommendationService.Recommend(c.Request.Context(), prefs, req.ClientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

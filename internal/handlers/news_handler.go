package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/services"
)

// NewsHandler serves the market news briefing.
type NewsHandler struct {
	newsService services.NewsServicer
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService services.NewsServicer) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// GetNews returns the current briefing.
// @Summary     Get news briefing
// @Description Get the cached AI market briefing, or demo content when AI is unavailable
// @Tags        news
// @Produce     json
// @Success     200 {object} services.NewsBriefing "Briefing"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /news [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	briefing, err := h.newsService.GetBriefing(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, briefing)
}

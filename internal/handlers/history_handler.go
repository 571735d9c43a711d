package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/models"
	"moneyharbor/internal/services"
)

// HistoryHandler serves My Harbor search history.
type HistoryHandler struct {
	historyService services.HistoryServicer
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService services.HistoryServicer) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// UpdateBatchStatusRequest represents the request payload for recording
// what the visitor did with a batch.
type UpdateBatchStatusRequest struct {
	Status        models.BatchStatus `json:"status" binding:"required,batch_status"`
	InvestedCount *int               `json:"investedCount" binding:"omitempty,min=0,max=10"`
}

// GetHarbor handles listing a visitor's history.
// @Summary     Get My Harbor
// @Description Get a visitor's saved searches, newest first, and how many options they invested in
// @Tags        harbor
// @Produce     json
// @Param       client_id path string true "Anonymous client ID"
// @Success     200 {object} services.HarborSummary "History"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /harbor/{client_id} [get]
func (h *HistoryHandler) GetHarbor(c *gin.Context) {
	summary, err := h.historyService.GetSummary(c.Param("client_id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateBatchStatus handles a status change on a saved batch.
// @Summary     Update batch status
// @Tags        harbor
// @Accept      json
// @Produce     json
// @Param       client_id path string                   true "Anonymous client ID"
// @Param       id        path string                   true "Batch ID"
// @Param       request   body UpdateBatchStatusRequest true "New status"
// @Success     200 {object} models.SearchBatch "Updated batch"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Batch not found"
// @Router      /harbor/{client_id}/batches/{id} [patch]
func (h *HistoryHandler) UpdateBatchStatus(c *gin.Context) {
	var req UpdateBatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	batch, err := h.historyService.UpdateStatus(c.Param("client_id"), c.Param("id"), req.Status, req.InvestedCount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"batch": batch})
}

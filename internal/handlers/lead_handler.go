package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/pagination"
	"moneyharbor/internal/services"
)

// LeadHandler serves the admin leads view.
type LeadHandler struct {
	leadService services.LeadServicer
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leadService services.LeadServicer) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// GetLeads handles listing leads.
// @Summary     List leads
// @Description Get a paginated list of leads, newest first
// @Tags        admin
// @Produce     json
// @Security    AdminKey
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Lead] "Paginated leads"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Admin not configured"
// @Router      /admin/leads [get]
func (h *LeadHandler) GetLeads(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.leadService.GetLeads(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLead handles fetching one lead.
// @Summary     Get a lead
// @Tags        admin
// @Produce     json
// @Security    AdminKey
// @Param       id path string true "Lead ID"
// @Success     200 {object} models.Lead "Lead"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Lead not found"
// @Router      /admin/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadService.GetLeadByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// GetLeadStats handles the lead summary.
// @Summary     Lead statistics
// @Description Count, total amount, beginners, and leads in the last seven days
// @Tags        admin
// @Produce     json
// @Security    AdminKey
// @Success     200 {object} models.LeadStats "Statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     503 {object} ErrorResponse "Admin not configured"
// @Router      /admin/leads/stats [get]
func (h *LeadHandler) GetLeadStats(c *gin.Context) {
	stats, err := h.leadService.GetLeadStats()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneyharbor/internal/recommend"
	"moneyharbor/internal/services"
)

// ReportHandler handles report delivery.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SendReportRequest represents the request payload for emailing a report.
type SendReportRequest struct {
	Email        string                      `json:"email" binding:"omitempty,email"`
	FullName     string                      `json:"fullName" binding:"max=200"`
	Investment   *recommend.ScoredInvestment `json:"investment"`
	PDFBase64    string                      `json:"pdfBase64"`
	SearchParams *services.SearchParams      `json:"searchParams"`
}

// SendReportResponse is returned after the email is accepted.
type SendReportResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

// SendReport handles emailing a client-rendered PDF report.
// @Summary     Email a report
// @Description Email the PDF report for one investment and record the lead
// @Tags        reports
// @Accept      json
// @Produce     json
// @Param       request body SendReportRequest true "Report details"
// @Success     200 {object} SendReportResponse "Email sent"
// @Failure     400 {object} ErrorResponse "Missing required fields"
// @Failure     413 {object} ErrorResponse "PDF too large"
// @Failure     502 {object} ErrorResponse "Email provider failed"
// @Router      /reports [post]
func (h *ReportHandler) SendReport(c *gin.Context) {
	var req SendReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	messageID, err := h.reportService.SendReport(c.Request.Context(), services.ReportRequest{
		Email:        req.Email,
		FullName:     req.FullName,
		Investment:   req.Investment,
		PDFBase64:    req.PDFBase64,
		SearchParams: req.SearchParams,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SendReportResponse{Success: true, MessageID: messageID})
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/logger"
	"moneyharbor/internal/mailer"
	"moneyharbor/internal/models"
)

// reportService emails generated reports and records the lead.
type reportService struct {
	sender      mailer.Sender
	leads       LeadServicer
	maxReportMB float64
	now         func() time.Time
}

// NewReportService creates a new ReportServicer. Reports whose estimated
// decoded size exceeds maxReportMB are rejected.
func NewReportService(sender mailer.Sender, leads LeadServicer, maxReportMB float64) ReportServicer {
	return &reportService{sender: sender, leads: leads, maxReportMB: maxReportMB, now: time.Now}
}

// estimatedMB approximates the decoded size of a base64 payload.
func estimatedMB(b64 string) float64 {
	return float64(len(b64)) * 0.75 / 1024 / 1024
}

// SendReport emails the PDF and returns the provider's message id. The lead
// is recorded after a successful send; failing to record it is logged only.
func (s *reportService) SendReport(ctx context.Context, req ReportRequest) (string, error) {
	if strings.TrimSpace(req.Email) == "" || req.Investment == nil || req.PDFBase64 == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing required fields: email, investment, pdfBase64")
	}
	if s.maxReportMB > 0 && estimatedMB(req.PDFBase64) > s.maxReportMB {
		return "", apperrors.ErrPayloadTooLarge
	}

	html, err := mailer.RenderReport(mailer.ReportEmail{
		FullName:       req.FullName,
		InvestmentName: req.Investment.Name,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sentAt := s.now()
	messageID, err := s.sender.Send(ctx, mailer.Message{
		To:      []mailer.Address{{Name: req.FullName, Email: req.Email}},
		Subject: mailer.ReportSubject(req.Investment.Name),
		HTML:    html,
		Attachments: []mailer.Attachment{{
			Content: req.PDFBase64,
			Name:    mailer.ReportAttachmentName(sentAt),
		}},
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrEmailFailed, err)
	}

	logger.Get().Infow("report email sent", "message_id", messageID, "investment", req.Investment.ID)

	if _, err := s.leads.CreateLead(buildLead(req, sentAt)); err != nil {
		logger.Get().Errorw("failed to save lead", "email", req.Email, "error", err)
	}

	return messageID, nil
}

func buildLead(req ReportRequest, sentAt time.Time) *models.Lead {
	inv := req.Investment
	params := req.SearchParams
	if params == nil {
		params = &SearchParams{}
	}

	lead := &models.Lead{
		Email:          strings.TrimSpace(req.Email),
		InvestmentName: inv.Name,
		RiskLevel:      params.RiskLevel,
		PDFSent:        true,
		SentAt:         sentAt,
	}
	if req.FullName != "" {
		lead.FullName = &req.FullName
	}
	if inv.RiskLevel != "" {
		t := string(inv.RiskLevel)
		lead.InvestmentType = &t
	}
	if lead.RiskLevel == "" {
		lead.RiskLevel = string(inv.RiskLevel)
	}

	switch {
	case params.Amount != nil:
		lead.Amount = *params.Amount
	case inv.MinAmount != nil:
		lead.Amount = *inv.MinAmount
	default:
		lead.Amount = decimal.Zero
	}

	lead.TimeHorizon = params.TimeHorizon
	if lead.TimeHorizon == "" {
		horizons := make([]string, len(inv.TimeHorizon))
		for i, h := range inv.TimeHorizon {
			horizons[i] = string(h)
		}
		lead.TimeHorizon = strings.Join(horizons, ", ")
	}

	if params.KnowledgeLevel != "" {
		lead.KnowledgeLevel = &params.KnowledgeLevel
	}
	if params.AdditionalNotes != "" {
		lead.AdditionalNotes = &params.AdditionalNotes
	}
	return lead
}

package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/llm"
	"moneyharbor/internal/models"
	"moneyharbor/internal/pagination"
	"moneyharbor/internal/recommend"
)

// RecommendationResult is a top-3 pick list and the path that produced it.
type RecommendationResult struct {
	Recommendations []recommend.ScoredInvestment `json:"recommendations"`
	Source          string                       `json:"source"`
	BatchID         string                       `json:"batchId,omitempty"`
}

// RecommendationServicer defines the contract for producing recommendations.
type RecommendationServicer interface {
	Recommend(ctx context.Context, prefs recommend.UserPreferences, clientID string) (*RecommendationResult, error)
}

// AIRecommender is the model-backed side of the recommendation flow.
// *llm.Client satisfies it.
type AIRecommender interface {
	Configured() bool
	Recommend(ctx context.Context, options []catalog.InvestmentOption, prefs recommend.UserPreferences) (*llm.Recommendation, error)
}

// GuideWriter generates educational guides. *llm.Client satisfies it.
type GuideWriter interface {
	Configured() bool
	ExpandGuide(ctx context.Context, opt catalog.InvestmentOption, userAmount decimal.Decimal) (*llm.Guide, error)
}

// NewsWriter generates market briefings. *llm.Client satisfies it.
type NewsWriter interface {
	Configured() bool
	Model() string
	NewsBriefing(ctx context.Context) (*llm.Briefing, error)
}

// LeadServicer defines the contract for the append-only leads table.
type LeadServicer interface {
	CreateLead(lead *models.Lead) (*models.Lead, error)
	GetLeads(page pagination.PageRequest) (*pagination.PageResponse[models.Lead], error)
	GetLeadByID(id string) (*models.Lead, error)
	GetLeadStats() (*models.LeadStats, error)
}

// SearchParams are the preferences a report was generated from.
type SearchParams struct {
	Amount          *decimal.Decimal `json:"amount"`
	TimeHorizon     string           `json:"timeHorizon"`
	RiskLevel       string           `json:"riskLevel"`
	KnowledgeLevel  string           `json:"knowledgeLevel"`
	AdditionalNotes string           `json:"additionalNotes"`
}

// ReportRequest asks for a generated PDF report to be emailed.
type ReportRequest struct {
	Email        string
	FullName     string
	Investment   *recommend.ScoredInvestment
	PDFBase64    string
	SearchParams *SearchParams
}

// ReportServicer defines the contract for report delivery and lead capture.
type ReportServicer interface {
	SendReport(ctx context.Context, req ReportRequest) (string, error)
}

// GuideServicer defines the contract for guide expansion.
type GuideServicer interface {
	ExpandGuide(ctx context.Context, investmentID string, userAmount decimal.Decimal) (*llm.Guide, error)
}

// NewsMetadata describes how a briefing was produced.
type NewsMetadata struct {
	TokensUsed int     `json:"tokensUsed"`
	Cost       float64 `json:"cost"`
	Model      string  `json:"model"`
}

// NewsBriefing is the news endpoint payload.
type NewsBriefing struct {
	Briefing    []llm.NewsItem `json:"briefing"`
	GeneratedAt time.Time      `json:"generatedAt"`
	IsDemo      bool           `json:"isDemo"`
	Metadata    *NewsMetadata  `json:"metadata,omitempty"`
}

// NewsServicer defines the contract for the cached news briefing.
type NewsServicer interface {
	GetBriefing(ctx context.Context) (*NewsBriefing, error)
}

// HarborSummary is a visitor's saved history.
type HarborSummary struct {
	Batches          []models.SearchBatch `json:"batches"`
	TotalInvestments int                  `json:"totalInvestments"`
}

// HistoryServicer defines the contract for My Harbor search history.
type HistoryServicer interface {
	SaveBatch(clientID string, prefs recommend.UserPreferences, source string, results []recommend.ScoredInvestment) (*models.SearchBatch, error)
	ListBatches(clientID string) ([]models.SearchBatch, error)
	UpdateStatus(clientID, batchID string, status models.BatchStatus, count *int) (*models.SearchBatch, error)
	GetSummary(clientID string) (*HarborSummary, error)
}

// ReminderServicer defines the contract for follow-up reminders.
type ReminderServicer interface {
	CreateReminder(ctx context.Context, email string, remindAt *time.Time) (*models.Reminder, error)
	DispatchDue(ctx context.Context) (int, error)
}

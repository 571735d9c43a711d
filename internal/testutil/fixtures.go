package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"moneyharbor/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// CreateTestLead creates a lead with a unique email and the given amount.
func CreateTestLead(t *testing.T, db *gorm.DB, amount int64) *models.Lead {
	t.Helper()
	return CreateTestLeadWith(t, db, func(l *models.Lead) {
		l.Amount = decimal.NewFromInt(amount)
	})
}

// CreateTestLeadWith creates a lead after applying mutate to the defaults.
func CreateTestLeadWith(t *testing.T, db *gorm.DB, mutate func(*models.Lead)) *models.Lead {
	t.Helper()

	lead := &models.Lead{
		Email:          fmt.Sprintf("lead%d@test.com", nextID()),
		InvestmentName: "S&P 500 Index Fund",
		InvestmentType: StringPtr("medium"),
		Amount:         decimal.NewFromInt(10000),
		TimeHorizon:    "5 years",
		RiskLevel:      "medium",
		PDFSent:        true,
		SentAt:         time.Now(),
	}
	if mutate != nil {
		mutate(lead)
	}
	if err := db.Create(lead).Error; err != nil {
		t.Fatalf("failed to create test lead: %v", err)
	}
	return lead
}

// CreateTestBatch creates a search batch for clientID holding the given
// recommendation ids.
func CreateTestBatch(t *testing.T, db *gorm.DB, clientID string, ids ...string) *models.SearchBatch {
	t.Helper()

	recs := make([]map[string]string, len(ids))
	for i, id := range ids {
		recs[i] = map[string]string{"id": id}
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		t.Fatalf("failed to encode recommendations: %v", err)
	}

	batch := &models.SearchBatch{
		ClientID:             clientID,
		Amount:               decimal.NewFromInt(10000),
		TimeHorizon:          "3 years",
		RiskLevel:            "medium",
		Liquidity:            "can lock for a medium period",
		Source:               models.SourceRules,
		Recommendations:      datatypes.JSON(raw),
		RecommendationsCount: len(ids),
		Status:               models.BatchNotInvested,
	}
	if err := db.Create(batch).Error; err != nil {
		t.Fatalf("failed to create test batch: %v", err)
	}
	return batch
}

// CreateTestReminder creates an unsent reminder due at remindAt.
func CreateTestReminder(t *testing.T, db *gorm.DB, remindAt time.Time) *models.Reminder {
	t.Helper()

	reminder := &models.Reminder{
		Email:            fmt.Sprintf("reminder%d@test.com", nextID()),
		RemindAt:         remindAt,
		ConfirmationSent: true,
	}
	if err := db.Create(reminder).Error; err != nil {
		t.Fatalf("failed to create test reminder: %v", err)
	}
	return reminder
}

package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BatchStatus tracks what the user did with a set of recommendations.
type BatchStatus string

const (
	BatchNotInvested BatchStatus = "not_invested"
	BatchInvestedOne BatchStatus = "invested_one"
	BatchCombined    BatchStatus = "combined"
)

// Valid reports whether s is a known status.
func (s BatchStatus) Valid() bool {
	switch s {
	case BatchNotInvested, BatchInvestedOne, BatchCombined:
		return true
	}
	return false
}

// DefaultCount is the invested-option count implied by a status when the
// user does not give one.
func (s BatchStatus) DefaultCount() int {
	switch s {
	case BatchInvestedOne:
		return 1
	case BatchCombined:
		return 2
	default:
		return 0
	}
}

// Recommendation sources.
const (
	SourceAI    = "ai"
	SourceRules = "rules"
)

// SearchBatch is one saved recommendation result in a visitor's history.
// ClientID is an anonymous identifier generated by the browser.
type SearchBatch struct {
	Base
	ClientID             string          `gorm:"not null;index" json:"clientId"`
	Amount               decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"amount"`
	TimeHorizon          string          `json:"timeHorizon"`
	RiskLevel            string          `json:"riskLevel"`
	Liquidity            string          `json:"liquidity"`
	KnowledgeLevel       string          `json:"knowledgeLevel,omitempty"`
	AdditionalNotes      string          `gorm:"type:text" json:"additionalNotes,omitempty"`
	Source               string          `gorm:"not null;default:rules" json:"source"`
	Recommendations      datatypes.JSON  `gorm:"not null" json:"recommendations"`
	RecommendationsCount int             `gorm:"not null;default:0" json:"recommendationsCount"`
	Status               BatchStatus     `gorm:"not null;default:not_invested" json:"status"`
	InvestedCount        int             `gorm:"not null;default:0" json:"investedCount"`
}

// Investments is the number of options this batch contributes to the
// visitor's invested total.
func (b SearchBatch) Investments() int {
	switch b.Status {
	case BatchInvestedOne:
		return 1
	case BatchCombined:
		if b.InvestedCount > 0 {
			return b.InvestedCount
		}
		return 2
	default:
		return 0
	}
}

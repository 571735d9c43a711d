// Package recommend scores catalog options against an investor profile and
// picks three that balance suitability with variety.
//
// Scoring is additive over five criteria (time horizon, risk, liquidity,
// minimum amount, knowledge level) plus a bounded random jitter so repeated
// identical searches do not always produce the same ranking. Selection then
// prefers one option per coarse category before falling back to pure score.
//
// The engine performs no I/O and never fails. Unknown UI labels silently map
// to "medium"; input validation belongs to the caller.
package recommend

import (
	"github.com/shopspring/decimal"

	"moneyharbor/internal/catalog"
)

// UI vocabulary for the time-horizon selector.
const (
	HorizonOneYear     = "1 year"
	HorizonTwoYears    = "2 years"
	HorizonThreeYears  = "3 years"
	HorizonFourYears   = "4 years"
	HorizonFiveYears   = "5 years"
	HorizonSixYears    = "6 years"
	HorizonSevenPlusYr = "7+ years"
)

// UI vocabulary for the liquidity selector.
const (
	LiquidityNeedHigh   = "high liquidity is important"
	LiquidityCanLockMid = "can lock for a medium period"
	LiquidityNotNeeded  = "high liquidity not required"
)

// HorizonLabels lists the time-horizon labels in display order.
var HorizonLabels = []string{
	HorizonOneYear, HorizonTwoYears, HorizonThreeYears, HorizonFourYears,
	HorizonFiveYears, HorizonSixYears, HorizonSevenPlusYr,
}

// LiquidityLabels lists the liquidity labels in display order.
var LiquidityLabels = []string{LiquidityNeedHigh, LiquidityCanLockMid, LiquidityNotNeeded}

// UserPreferences is one investor profile as submitted by the search form.
type UserPreferences struct {
	Amount          decimal.Decimal        `json:"amount"`
	TimeHorizon     string                 `json:"timeHorizon"`
	RiskLevel       catalog.Level          `json:"riskLevel"`
	Liquidity       string                 `json:"liquidity"`
	KnowledgeLevel  catalog.KnowledgeLevel `json:"knowledgeLevel,omitempty"`
	AdditionalNotes string                 `json:"additionalNotes,omitempty"`
}

// ScoredInvestment is a catalog option annotated with its score and the
// reasons it was chosen. The LLM recommender returns the same shape.
type ScoredInvestment struct {
	catalog.InvestmentOption
	Score       float64 `json:"score"`
	MatchReason string  `json:"matchReason"`
}

// NormalizeTimeHorizon maps a UI horizon label to its bucket. Unknown labels map to medium.
func NormalizeTimeHorizon(label string) catalog.Horizon {
	switch label {
	case HorizonOneYear:
		return catalog.HorizonShort
	case HorizonTwoYears, HorizonThreeYears:
		return catalog.HorizonMedium
	case HorizonFourYears, HorizonFiveYears, HorizonSixYears, HorizonSevenPlusYr:
		return catalog.HorizonLong
	default:
		return catalog.HorizonMedium
	}
}

// NormalizeLiquidity maps a UI liquidity label to the ordinal scale. Unknown labels map to medium.
func NormalizeLiquidity(label string) catalog.Level {
	switch label {
	case LiquidityNeedHigh:
		return catalog.LevelHigh
	case LiquidityCanLockMid:
		return catalog.LevelMedium
	case LiquidityNotNeeded:
		return catalog.LevelLow
	default:
		return catalog.LevelMedium
	}
}

// RiskLevelFromScore converts the 0-100 risk slider into a risk level.
func RiskLevelFromScore(score int) catalog.Level {
	switch {
	case score <= 33:
		return catalog.LevelLow
	case score <= 66:
		return catalog.LevelMedium
	default:
		return catalog.LevelHigh
	}
}

// Package catalog holds the static set of investment options the recommender
// chooses from, and loads it from YAML.
package catalog

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers, matching what the web client sends.
	decimal.MarshalJSONWithoutQuotes = true
}

// Level is a three-step ordinal used for both risk and liquidity.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Rank returns the ordinal position of l, or -1 for an unknown level.
func (l Level) Rank() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	default:
		return -1
	}
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool { return l.Rank() >= 0 }

// Horizon is an internal time-horizon bucket.
type Horizon string

const (
	HorizonShort  Horizon = "short"
	HorizonMedium Horizon = "medium"
	HorizonLong   Horizon = "long"
)

// Valid reports whether h is a known bucket.
func (h Horizon) Valid() bool {
	switch h {
	case HorizonShort, HorizonMedium, HorizonLong:
		return true
	}
	return false
}

// KnowledgeLevel is the investor's self-reported experience tier.
type KnowledgeLevel string

const (
	KnowledgeBeginner     KnowledgeLevel = "beginner"
	KnowledgeIntermediate KnowledgeLevel = "intermediate"
	KnowledgeAdvanced     KnowledgeLevel = "advanced"
)

// Valid reports whether k is a known tier.
func (k KnowledgeLevel) Valid() bool {
	switch k {
	case KnowledgeBeginner, KnowledgeIntermediate, KnowledgeAdvanced:
		return true
	}
	return false
}

// ActionSteps is practical getting-started information shown in reports.
type ActionSteps struct {
	Platforms  []string `json:"platforms,omitempty"`
	HowToStart string   `json:"howToStart,omitempty"`
	Costs      string   `json:"costs,omitempty"`
}

// InvestmentOption is a single catalog entry.
type InvestmentOption struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	RiskLevel      Level            `json:"riskLevel"`
	TimeHorizon    []Horizon        `json:"timeHorizon"`
	Liquidity      Level            `json:"liquidity"`
	MinAmount      *decimal.Decimal `json:"minAmount,omitempty"`
	SuitableFor    []KnowledgeLevel `json:"suitableFor"`
	ExpectedReturn *float64         `json:"expectedReturn,omitempty"`
	Pros           []string         `json:"pros"`
	Cons           []string         `json:"cons"`
	ActionSteps    *ActionSteps     `json:"actionSteps,omitempty"`
}

// HasHorizon reports whether h is one of the option's buckets.
func (o InvestmentOption) HasHorizon(h Horizon) bool {
	for _, candidate := range o.TimeHorizon {
		if candidate == h {
			return true
		}
	}
	return false
}

// SuitsKnowledge reports whether k is in the option's suitable set.
func (o InvestmentOption) SuitsKnowledge(k KnowledgeLevel) bool {
	for _, candidate := range o.SuitableFor {
		if candidate == k {
			return true
		}
	}
	return false
}

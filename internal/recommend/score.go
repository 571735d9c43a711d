package recommend

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"moneyharbor/internal/catalog"
)

// Criterion weights.
const (
	horizonMatch    = 30
	horizonMismatch = -10

	riskMatch    = 35
	riskAdjacent = 15
	riskFar      = -15

	liquidityMatch  = 20
	liquidityAbove  = 10
	liquidityBelow  = -10
	amountOK        = 10
	amountShortfall = -30
	knowledgeMatch  = 5
)

// FallbackReason is used when no criterion contributed a reason.
const FallbackReason = "alternative option"

// Score computes the deterministic part of an option's suitability along
// with the reasons that fired, in criterion order. It does not add jitter.
func Score(opt catalog.InvestmentOption, prefs UserPreferences) (float64, []string) {
	score := 0
	var reasons []string

	if opt.HasHorizon(NormalizeTimeHorizon(prefs.TimeHorizon)) {
		score += horizonMatch
		reasons = append(reasons, fmt.Sprintf("fits your chosen time horizon (%s)", prefs.TimeHorizon))
	} else {
		score += horizonMismatch
	}

	if opt.RiskLevel == prefs.RiskLevel {
		score += riskMatch
		reasons = append(reasons, fmt.Sprintf("matches your preferred risk level (%s)", prefs.RiskLevel))
	} else if abs(prefs.RiskLevel.Rank()-opt.RiskLevel.Rank()) == 1 {
		score += riskAdjacent
	} else {
		score += riskFar
	}

	wanted := NormalizeLiquidity(prefs.Liquidity)
	switch {
	case opt.Liquidity == wanted:
		score += liquidityMatch
		reasons = append(reasons, "liquidity matches your requirements")
	case opt.Liquidity.Rank() >= wanted.Rank():
		score += liquidityAbove
	default:
		score += liquidityBelow
	}

	if opt.MinAmount == nil || prefs.Amount.GreaterThanOrEqual(*opt.MinAmount) {
		score += amountOK
	} else {
		score += amountShortfall
		reasons = append(reasons, fmt.Sprintf("requires a minimum initial amount of ₪%s", formatAmount(*opt.MinAmount)))
	}

	if prefs.KnowledgeLevel != "" && opt.SuitsKnowledge(prefs.KnowledgeLevel) {
		score += knowledgeMatch
		reasons = append(reasons, "suits your knowledge level")
	}

	return float64(score), reasons
}

// formatAmount groups thousands the way the UI displays money.
func formatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	if d.IsInteger() {
		return p.Sprintf("%d", d.IntPart())
	}
	f, _ := d.Round(2).Float64()
	return p.Sprintf("%.2f", f)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

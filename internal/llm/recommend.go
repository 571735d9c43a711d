package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/recommend"
)

// ErrFallback means the model declined or gave nothing usable; callers
// should run the rules engine instead.
var ErrFallback = errors.New("llm: fallback to rules engine")

const recommendSystemPrompt = `You are an investment educator for Israeli retail investors.
Pick exactly three options from the provided catalog that best fit the investor profile, favouring options from
different asset types. Use only ids from the catalog. If the profile cannot be served, set "useFallback" to true.
Reply with JSON only: {"useFallback": false, "recommendations": [{"id": "...", "reason": "..."}]}`

type catalogEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	RiskLevel   string   `json:"riskLevel"`
	TimeHorizon []string `json:"timeHorizon"`
	Liquidity   string   `json:"liquidity"`
	MinAmount   string   `json:"minAmount,omitempty"`
}

type recommendReply struct {
	UseFallback     bool `json:"useFallback"`
	Recommendations []struct {
		ID     string `json:"id"`
		Reason string `json:"reason"`
	} `json:"recommendations"`
}

// Recommendation is the model's pick list resolved against the catalog.
type Recommendation struct {
	Results    []recommend.ScoredInvestment
	TokensUsed int
}

// Recommend asks the model for up to three catalog options. Picks are
// resolved by id; unknown and repeated ids are dropped. The n-th surviving
// pick scores 100-10n. It returns ErrFallback when the model opts out or
// no pick resolves.
func (c *Client) Recommend(ctx context.Context, options []catalog.InvestmentOption, prefs recommend.UserPreferences) (*Recommendation, error) {
	entries := make([]catalogEntry, 0, len(options))
	byID := make(map[string]catalog.InvestmentOption, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt
		entry := catalogEntry{
			ID:        opt.ID,
			Name:      opt.Name,
			RiskLevel: string(opt.RiskLevel),
			Liquidity: string(opt.Liquidity),
		}
		for _, h := range opt.TimeHorizon {
			entry.TimeHorizon = append(entry.TimeHorizon, string(h))
		}
		if opt.MinAmount != nil {
			entry.MinAmount = opt.MinAmount.String()
		}
		entries = append(entries, entry)
	}

	catalogJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}

	var user strings.Builder
	fmt.Fprintf(&user, "Investor profile:\n- amount: %s ILS\n- time horizon: %s\n- risk level: %s\n- liquidity: %s\n",
		prefs.Amount.String(), prefs.TimeHorizon, prefs.RiskLevel, prefs.Liquidity)
	if prefs.KnowledgeLevel != "" {
		fmt.Fprintf(&user, "- knowledge level: %s\n", prefs.KnowledgeLevel)
	}
	if notes := strings.TrimSpace(prefs.AdditionalNotes); notes != "" {
		fmt.Fprintf(&user, "- notes: %s\n", notes)
	}
	fmt.Fprintf(&user, "\nCatalog:\n%s", catalogJSON)

	var reply recommendReply
	tokens, err := c.completeJSON(ctx, completion{
		system:      recommendSystemPrompt,
		user:        user.String(),
		temperature: 0.7,
		maxTokens:   800,
		task:        "recommend",
	}, &reply)
	if err != nil {
		return nil, err
	}
	if reply.UseFallback {
		return nil, ErrFallback
	}

	results := make([]recommend.ScoredInvestment, 0, recommend.TopN)
	seen := make(map[string]bool, recommend.TopN)
	for _, pick := range reply.Recommendations {
		if len(results) == recommend.TopN {
			break
		}
		opt, ok := byID[pick.ID]
		if !ok || seen[pick.ID] {
			continue
		}
		seen[pick.ID] = true
		reason := strings.TrimSpace(pick.Reason)
		if reason == "" {
			reason = recommend.FallbackReason
		}
		results = append(results, recommend.ScoredInvestment{
			InvestmentOption: opt,
			Score:            float64(100 - 10*len(results)),
			MatchReason:      reason,
		})
	}
	if len(results) == 0 {
		return nil, ErrFallback
	}
	return &Recommendation{Results: results, TokensUsed: tokens}, nil
}

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"moneyharbor/internal/catalog"
)

const guideSystemPrompt = `You are a financial writer explaining an investment to Israeli retail investors in plain language.
Be neutral and educational, never promise returns, and always cover risks and costs. Keep every section to two
to four sentences. Reply with JSON only, using this shape:
{"report": {"tldr": [], "whatIsIt": "", "whoIsItFor": {"suitable": [], "notSuitable": []},
"returns": {"historical": "", "estimated": "", "disclaimer": ""}, "risks": [], "timeAndLiquidity": "",
"costs": "", "taxation": "", "howToStart": [], "questionsToAsk": [], "summary": [], "disclaimer": ""}}`

// Guide is an educational write-up of a single investment option.
type Guide struct {
	TLDR             []string      `json:"tldr"`
	WhatIsIt         string        `json:"whatIsIt"`
	WhoIsItFor       GuideAudience `json:"whoIsItFor"`
	Returns          GuideReturns  `json:"returns"`
	Risks            []string      `json:"risks"`
	TimeAndLiquidity string        `json:"timeAndLiquidity"`
	Costs            string        `json:"costs"`
	Taxation         string        `json:"taxation"`
	HowToStart       []string      `json:"howToStart"`
	QuestionsToAsk   []string      `json:"questionsToAsk"`
	Summary          []string      `json:"summary"`
	Disclaimer       string        `json:"disclaimer"`
}

// GuideAudience lists who the option does and does not suit.
type GuideAudience struct {
	Suitable    []string `json:"suitable"`
	NotSuitable []string `json:"notSuitable"`
}

// GuideReturns describes past and estimated returns.
type GuideReturns struct {
	Historical string `json:"historical"`
	Estimated  string `json:"estimated"`
	Disclaimer string `json:"disclaimer"`
}

// Older prompts used "detailedGuide" as the top-level key.
type guideReply struct {
	Report        *Guide `json:"report"`
	DetailedGuide *Guide `json:"detailedGuide"`
}

// ExpandGuide generates a Guide for opt. userAmount may be zero.
func (c *Client) ExpandGuide(ctx context.Context, opt catalog.InvestmentOption, userAmount decimal.Decimal) (*Guide, error) {
	var user strings.Builder
	fmt.Fprintf(&user, "Investment: %s\nDescription: %s\nRisk level: %s\nLiquidity: %s\n",
		opt.Name, opt.Description, opt.RiskLevel, opt.Liquidity)
	if opt.MinAmount != nil {
		fmt.Fprintf(&user, "Minimum amount: %s ILS\n", opt.MinAmount.String())
	}
	if opt.ExpectedReturn != nil {
		fmt.Fprintf(&user, "Expected return: %.1f%%\n", *opt.ExpectedReturn)
	}
	if opt.ActionSteps != nil {
		if len(opt.ActionSteps.Platforms) > 0 {
			fmt.Fprintf(&user, "Known platforms: %s\n", strings.Join(opt.ActionSteps.Platforms, ", "))
		}
		if opt.ActionSteps.Costs != "" {
			fmt.Fprintf(&user, "Cost info: %s\n", opt.ActionSteps.Costs)
		}
	}
	horizons := make([]string, len(opt.TimeHorizon))
	for i, h := range opt.TimeHorizon {
		horizons[i] = string(h)
	}
	fmt.Fprintf(&user, "Time horizon: %s\n", strings.Join(horizons, ", "))
	if userAmount.IsPositive() {
		fmt.Fprintf(&user, "Investor amount: %s ILS\n", userAmount.String())
	}

	var reply guideReply
	if _, err := c.completeJSON(ctx, completion{
		system:      guideSystemPrompt,
		user:        user.String(),
		temperature: 0.7,
		maxTokens:   2000,
		task:        "guide",
	}, &reply); err != nil {
		return nil, err
	}

	switch {
	case reply.Report != nil:
		return reply.Report, nil
	case reply.DetailedGuide != nil:
		return reply.DetailedGuide, nil
	default:
		return nil, ErrEmptyResponse
	}
}

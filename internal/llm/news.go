package llm

import (
	"context"
	"time"
)

const newsSystemPrompt = `You are a financial journalist covering the Israeli and global markets for passive investors.
Summarize 5 to 7 current topics. For each give a short title, a two or three sentence summary of what is happening
and why it matters, its impact (positive, negative or neutral) and a category (Israel, Global, Currencies, Stocks,
Bonds or Real Estate). Reply with JSON only: {"briefing": [{"title": "", "summary": "", "impact": "", "category": ""}]}`

// Impact values for news items.
const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// NewsItem is one topic in a market briefing.
type NewsItem struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Impact   string `json:"impact"`
	Category string `json:"category"`
}

// Briefing is a generated market news summary.
type Briefing struct {
	Items       []NewsItem
	GeneratedAt time.Time
	TokensUsed  int
}

type newsReply struct {
	Briefing []NewsItem `json:"briefing"`
}

// NewsBriefing generates a market briefing. Impacts outside the known
// values are reported as neutral.
func (c *Client) NewsBriefing(ctx context.Context) (*Briefing, error) {
	var reply newsReply
	tokens, err := c.completeJSON(ctx, completion{
		system:      newsSystemPrompt,
		user:        "Write today's briefing for the Israeli and global investment markets.",
		temperature: 0.8,
		maxTokens:   1500,
		task:        "news",
	}, &reply)
	if err != nil {
		return nil, err
	}
	if len(reply.Briefing) == 0 {
		return nil, ErrEmptyResponse
	}

	for i := range reply.Briefing {
		switch reply.Briefing[i].Impact {
		case ImpactPositive, ImpactNegative, ImpactNeutral:
		default:
			reply.Briefing[i].Impact = ImpactNeutral
		}
	}

	return &Briefing{
		Items:       reply.Briefing,
		GeneratedAt: time.Now().UTC(),
		TokensUsed:  tokens,
	}, nil
}

package services

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"moneyharbor/internal/llm"
	"moneyharbor/internal/logger"
)

const briefingCacheKey = "briefing"

// demoBriefing is served when no model is configured or generation fails.
var demoBriefing = []llm.NewsItem{{
	Title:    "News page under construction",
	Summary:  "We are working on bringing real-time updates from the Israeli and global financial markets. Daily analysis and summaries will appear here soon.",
	Impact:   llm.ImpactNeutral,
	Category: "update",
}}

// newsService caches generated market briefings.
type newsService struct {
	writer NewsWriter
	cache  *cache.Cache
	now    func() time.Time
}

// NewNewsService creates a new NewsServicer whose briefings live for ttl.
func NewNewsService(writer NewsWriter, ttl time.Duration) NewsServicer {
	return &newsService{
		writer: writer,
		cache:  cache.New(ttl, 2*ttl),
		now:    time.Now,
	}
}

// GetBriefing returns the cached briefing, generating one when the cache
// is empty. Demo content is never cached so the next call retries.
func (s *newsService) GetBriefing(ctx context.Context) (*NewsBriefing, error) {
	if cached, ok := s.cache.Get(briefingCacheKey); ok {
		return cached.(*NewsBriefing), nil
	}

	if s.writer == nil || !s.writer.Configured() {
		return s.demo(), nil
	}

	generated, err := s.writer.NewsBriefing(ctx)
	if err != nil {
		logger.Get().Warnw("news briefing failed, serving demo content", "error", err)
		return s.demo(), nil
	}

	briefing := &NewsBriefing{
		Briefing:    generated.Items,
		GeneratedAt: generated.GeneratedAt,
		Metadata: &NewsMetadata{
			TokensUsed: generated.TokensUsed,
			Cost:       llm.EstimateCost(generated.TokensUsed),
			Model:      s.writer.Model(),
		},
	}
	if briefing.GeneratedAt.IsZero() {
		briefing.GeneratedAt = s.now()
	}
	s.cache.SetDefault(briefingCacheKey, briefing)
	return briefing, nil
}

func (s *newsService) demo() *NewsBriefing {
	return &NewsBriefing{
		Briefing:    demoBriefing,
		GeneratedAt: s.now(),
		IsDemo:      true,
	}
}

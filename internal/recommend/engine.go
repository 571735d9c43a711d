package recommend

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"moneyharbor/internal/catalog"
)

const (
	// TopN is how many options a recommendation returns.
	TopN = 3

	// MaxJitter bounds the random addend applied to each score.
	MaxJitter = 5.0
)

// Engine ranks catalog options for a set of preferences. The zero value is
// not usable; construct one with NewEngine. An Engine is safe for concurrent use.
type Engine struct {
	jitter func() float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithJitter replaces the random source. fn's result is clamped to
// [-MaxJitter, MaxJitter].
func WithJitter(fn func() float64) Option {
	return func(e *Engine) {
		e.jitter = fn
	}
}

// WithSeed makes the jitter reproducible.
func WithSeed(seed uint64) Option {
	var mu sync.Mutex
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return WithJitter(func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64()*2*MaxJitter - MaxJitter
	})
}

// NoJitter disables the random addend entirely.
func NoJitter() Option {
	return WithJitter(func() float64 { return 0 })
}

// NewEngine returns an engine using the global random source unless
// overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		jitter: func() float64 { return rand.Float64()*2*MaxJitter - MaxJitter },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type candidate struct {
	ScoredInvestment
	category category
}

// Rank scores every option and returns them all, best first.
func (e *Engine) Rank(options []catalog.InvestmentOption, prefs UserPreferences) []ScoredInvestment {
	ranked := e.rank(options, prefs)
	out := make([]ScoredInvestment, len(ranked))
	for i, c := range ranked {
		out[i] = c.ScoredInvestment
	}
	return out
}

// TopRecommendations returns up to TopN options, preferring one per
// category and filling any remaining slots by score. The result holds
// min(TopN, len(options)) entries with distinct ids.
func (e *Engine) TopRecommendations(options []catalog.InvestmentOption, prefs UserPreferences) []ScoredInvestment {
	ranked := e.rank(options, prefs)

	selected := make([]ScoredInvestment, 0, TopN)
	taken := make(map[string]bool, TopN)
	usedCategories := make(map[category]bool, TopN)

	for _, c := range ranked {
		if len(selected) == TopN {
			break
		}
		if usedCategories[c.category] || taken[c.ID] {
			continue
		}
		selected = append(selected, c.ScoredInvestment)
		taken[c.ID] = true
		usedCategories[c.category] = true
	}

	for _, c := range ranked {
		if len(selected) == TopN {
			break
		}
		if taken[c.ID] {
			continue
		}
		selected = append(selected, c.ScoredInvestment)
		taken[c.ID] = true
	}

	return selected
}

func (e *Engine) rank(options []catalog.InvestmentOption, prefs UserPreferences) []candidate {
	ranked := make([]candidate, 0, len(options))
	for _, opt := range options {
		base, reasons := Score(opt, prefs)
		reason := FallbackReason
		if len(reasons) > 0 {
			reason = strings.Join(reasons, ", ")
		}
		ranked = append(ranked, candidate{
			ScoredInvestment: ScoredInvestment{
				InvestmentOption: opt,
				Score:            base + e.nextJitter(),
				MatchReason:      reason,
			},
			category: classify(opt.Name),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func (e *Engine) nextJitter() float64 {
	j := e.jitter()
	if math.IsNaN(j) {
		return 0
	}
	return math.Max(-MaxJitter, math.Min(MaxJitter, j))
}

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/recommend"
)

type recommendOptions struct {
	amount    string
	horizon   string
	risk      string
	riskScore int
	liquidity string
	knowledge string
	notes     string
	seed      uint64
	all       bool
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Score the catalog against an investor profile",
		Example: `  harbor recommend --amount 10000 --horizon "5 years" --risk medium --liquidity "can lock for a medium period"
  harbor recommend --amount 2500 --horizon "1 year" --risk-score 20 --liquidity "high liquidity is important" --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.amount, "amount", "", "amount to invest")
	f.StringVar(&opts.horizon, "horizon", recommend.HorizonFiveYears, "time horizon ("+strings.Join(recommend.HorizonLabels, ", ")+")")
	f.StringVar(&opts.risk, "risk", "", "risk level (low, medium, high)")
	f.IntVar(&opts.riskScore, "risk-score", -1, "risk slider position 0-100, used when --risk is not set")
	f.StringVar(&opts.liquidity, "liquidity", recommend.LiquidityCanLockMid, "liquidity need ("+strings.Join(recommend.LiquidityLabels, ", ")+")")
	f.StringVar(&opts.knowledge, "knowledge", "", "knowledge level (beginner, intermediate, advanced)")
	f.StringVar(&opts.notes, "notes", "", "additional notes")
	f.Uint64Var(&opts.seed, "seed", 0, "seed the jitter for a reproducible ranking (0 = random)")
	f.BoolVar(&opts.all, "all", false, "print the full ranking instead of the diversified top three")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (o *recommendOptions) preferences() (recommend.UserPreferences, error) {
	amount, err := decimal.NewFromString(o.amount)
	if err != nil {
		return recommend.UserPreferences{}, fmt.Errorf("invalid --amount %q", o.amount)
	}
	if !amount.IsPositive() {
		return recommend.UserPreferences{}, fmt.Errorf("--amount must be positive")
	}
	if !slices.Contains(recommend.HorizonLabels, o.horizon) {
		return recommend.UserPreferences{}, fmt.Errorf("unknown --horizon %q", o.horizon)
	}
	if !slices.Contains(recommend.LiquidityLabels, o.liquidity) {
		return recommend.UserPreferences{}, fmt.Errorf("unknown --liquidity %q", o.liquidity)
	}

	var risk catalog.Level
	switch {
	case o.risk != "":
		risk = catalog.Level(strings.ToLower(o.risk))
		if !risk.Valid() {
			return recommend.UserPreferences{}, fmt.Errorf("unknown --risk %q", o.risk)
		}
	case o.riskScore >= 0:
		if o.riskScore > 100 {
			return recommend.UserPreferences{}, fmt.Errorf("--risk-score must be between 0 and 100")
		}
		risk = recommend.RiskLevelFromScore(o.riskScore)
	default:
		return recommend.UserPreferences{}, fmt.Errorf("one of --risk or --risk-score is required")
	}

	knowledge := catalog.KnowledgeLevel(strings.ToLower(o.knowledge))
	if knowledge != "" && !knowledge.Valid() {
		return recommend.UserPreferences{}, fmt.Errorf("unknown --knowledge %q", o.knowledge)
	}

	return recommend.UserPreferences{
		Amount:          amount,
		TimeHorizon:     o.horizon,
		RiskLevel:       risk,
		Liquidity:       o.liquidity,
		KnowledgeLevel:  knowledge,
		AdditionalNotes: o.notes,
	}, nil
}

func runRecommend(cmd *cobra.Command, root *rootOptions, opts *recommendOptions) error {
	prefs, err := opts.preferences()
	if err != nil {
		return err
	}
	cat, err := root.loadCatalog()
	if err != nil {
		return err
	}

	var engineOpts []recommend.Option
	if opts.seed != 0 {
		engineOpts = append(engineOpts, recommend.WithSeed(opts.seed))
	}
	engine := recommend.NewEngine(engineOpts...)

	var results []recommend.ScoredInvestment
	if opts.all {
		results = engine.Rank(cat.Options(), prefs)
	} else {
		results = engine.TopRecommendations(cat.Options(), prefs)
	}

	out := cmd.OutOrStdout()
	if root.jsonOutput {
		return writeJSON(out, results)
	}

	fmt.Fprintf(out, "%s\n\n", titleStyle.Render(fmt.Sprintf("Recommendations for %s over %s (%s risk)", prefs.Amount.StringFixed(0), prefs.TimeHorizon, prefs.RiskLevel)))
	for i, r := range results {
		fmt.Fprintf(out, "%d. %s %s\n", i+1, titleStyle.Render(r.Name), scoreStyle.Render(fmt.Sprintf("[%.1f]", r.Score)))
		field(out, "Risk", string(r.RiskLevel))
		field(out, "Liquidity", string(r.Liquidity))
		if r.MinAmount != nil {
			field(out, "Minimum", r.MinAmount.StringFixed(0))
		}
		field(out, "Why", r.MatchReason)
		fmt.Fprintln(out)
	}
	return nil
}

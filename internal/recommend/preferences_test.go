package recommend

import (
	"testing"

	"moneyharbor/internal/catalog"
)

func TestNormalizeTimeHorizon(t *testing.T) {
	tests := []struct {
		label string
		want  catalog.Horizon
	}{
		{"1 year", catalog.HorizonShort},
		{"2 years", catalog.HorizonMedium},
		{"3 years", catalog.HorizonMedium},
		{"4 years", catalog.HorizonLong},
		{"5 years", catalog.HorizonLong},
		{"6 years", catalog.HorizonLong},
		{"7+ years", catalog.HorizonLong},
		{"", catalog.HorizonMedium},
		{"forever", catalog.HorizonMedium},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := NormalizeTimeHorizon(tt.label); got != tt.want {
				t.Errorf("NormalizeTimeHorizon(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestNormalizeLiquidity(t *testing.T) {
	tests := []struct {
		label string
		want  catalog.Level
	}{
		{"high liquidity is important", catalog.LevelHigh},
		{"can lock for a medium period", catalog.LevelMedium},
		{"high liquidity not required", catalog.LevelLow},
		{"medium", catalog.LevelMedium},
		{"", catalog.LevelMedium},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := NormalizeLiquidity(tt.label); got != tt.want {
				t.Errorf("NormalizeLiquidity(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestLabelsCoverEveryBucket(t *testing.T) {
	if len(HorizonLabels) != 7 {
		t.Errorf("expected 7 horizon labels, got %d", len(HorizonLabels))
	}
	seen := map[catalog.Horizon]bool{}
	for _, l := range HorizonLabels {
		seen[NormalizeTimeHorizon(l)] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected horizon labels to cover 3 buckets, got %v", seen)
	}

	levels := map[catalog.Level]bool{}
	for _, l := range LiquidityLabels {
		levels[NormalizeLiquidity(l)] = true
	}
	if len(levels) != 3 {
		t.Errorf("expected liquidity labels to map 1:1, got %v", levels)
	}
}

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  catalog.Level
	}{
		{0, catalog.LevelLow},
		{33, catalog.LevelLow},
		{34, catalog.LevelMedium},
		{66, catalog.LevelMedium},
		{67, catalog.LevelHigh},
		{100, catalog.LevelHigh},
	}
	for _, tt := range tests {
		if got := RiskLevelFromScore(tt.score); got != tt.want {
			t.Errorf("RiskLevelFromScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const sampleYAML = `
options:
  - id: bonds
    name: Government Bonds
    risk_level: Low
    time_horizon: [short, medium]
    liquidity: medium
    min_amount: 1000
    suitable_for: [beginner]
    pros: [Safe]
  - id: btc
    name: Bitcoin
    risk_level: high
    time_horizon: [long]
    liquidity: high
    suitable_for: [advanced]
`

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("embedded catalog should load: %v", err)
	}
	if c.Len() < 8 {
		t.Errorf("expected a populated catalog, got %d options", c.Len())
	}
	if _, ok := c.Find("bitcoin"); !ok {
		t.Error("expected bitcoin option in default catalog")
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 options, got %d", c.Len())
	}

	bonds, ok := c.Find("bonds")
	if !ok {
		t.Fatal("expected bonds option")
	}
	if bonds.RiskLevel != LevelLow {
		t.Errorf("expected risk level to be lower-cased, got %q", bonds.RiskLevel)
	}
	if bonds.MinAmount == nil || !bonds.MinAmount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected min amount 1000, got %v", bonds.MinAmount)
	}
	if !bonds.HasHorizon(HorizonMedium) || bonds.HasHorizon(HorizonLong) {
		t.Errorf("unexpected horizons %v", bonds.TimeHorizon)
	}
	if !bonds.SuitsKnowledge(KnowledgeBeginner) {
		t.Error("expected bonds to suit beginners")
	}

	btc, _ := c.Find("btc")
	if btc.MinAmount != nil {
		t.Errorf("expected no minimum, got %v", btc.MinAmount)
	}
	if btc.Cons == nil || btc.Pros == nil {
		t.Error("expected empty pros/cons slices rather than nil")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad risk level",
			yaml:    "options:\n  - {id: a, name: A, risk_level: extreme, time_horizon: [long], liquidity: high}\n",
			wantErr: "invalid risk level",
		},
		{
			name:    "bad horizon",
			yaml:    "options:\n  - {id: a, name: A, risk_level: low, time_horizon: [forever], liquidity: high}\n",
			wantErr: "invalid time horizon",
		},
		{
			name:    "missing horizon",
			yaml:    "options:\n  - {id: a, name: A, risk_level: low, liquidity: high}\n",
			wantErr: "time horizon is required",
		},
		{
			name:    "bad knowledge level",
			yaml:    "options:\n  - {id: a, name: A, risk_level: low, time_horizon: [long], liquidity: high, suitable_for: [guru]}\n",
			wantErr: "invalid knowledge level",
		},
		{
			name:    "negative minimum",
			yaml:    "options:\n  - {id: a, name: A, risk_level: low, time_horizon: [long], liquidity: high, min_amount: -5}\n",
			wantErr: "must not be negative",
		},
		{
			name: "duplicate id",
			yaml: "options:\n" +
				"  - {id: a, name: A, risk_level: low, time_horizon: [long], liquidity: high}\n" +
				"  - {id: a, name: B, risk_level: low, time_horizon: [long], liquidity: high}\n",
			wantErr: "duplicate option id",
		},
		{
			name:    "missing id",
			yaml:    "options:\n  - {name: A, risk_level: low, time_horizon: [long], liquidity: high}\n",
			wantErr: "id is required",
		},
		{
			name:    "malformed yaml",
			yaml:    "options: [",
			wantErr: "failed to parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded catalog", func(t *testing.T) {
		c, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Len() == 0 {
			t.Error("expected embedded options")
		}
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
			t.Fatal(err)
		}
		c, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Len() != 2 {
			t.Errorf("expected 2 options, got %d", c.Len())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestOptions_ReturnsCopy(t *testing.T) {
	c, _ := Parse([]byte(sampleYAML))

	opts := c.Options()
	opts[0].Name = "changed"

	again, _ := c.Find(opts[0].ID)
	if again.Name == "changed" {
		t.Error("mutating Options() result should not affect the catalog")
	}
}

func TestLevelRank(t *testing.T) {
	if LevelLow.Rank() != 0 || LevelMedium.Rank() != 1 || LevelHigh.Rank() != 2 {
		t.Error("unexpected ordinal ranks")
	}
	if Level("extreme").Rank() != -1 {
		t.Error("expected unknown level to rank -1")
	}
}

func TestInvestmentOption_JSON(t *testing.T) {
	c, _ := Parse([]byte(sampleYAML))
	bonds, _ := c.Find("bonds")

	data, err := json.Marshal(bonds)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)
	for _, want := range []string{`"riskLevel":"low"`, `"minAmount":1000`, `"timeHorizon":["short","medium"]`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in %s", want, body)
		}
	}
	if strings.Contains(body, "actionSteps") {
		t.Errorf("expected actionSteps to be omitted, got %s", body)
	}
}

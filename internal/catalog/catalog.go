package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is an immutable, ordered set of investment options.
type Catalog struct {
	options []InvestmentOption
	byID    map[string]int
}

// yamlOption mirrors the on-disk layout; it is converted and validated
// before anything else sees it.
type yamlOption struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	RiskLevel      string   `yaml:"risk_level"`
	TimeHorizon    []string `yaml:"time_horizon"`
	Liquidity      string   `yaml:"liquidity"`
	MinAmount      *float64 `yaml:"min_amount"`
	SuitableFor    []string `yaml:"suitable_for"`
	ExpectedReturn *float64 `yaml:"expected_return"`
	Pros           []string `yaml:"pros"`
	Cons           []string `yaml:"cons"`
	ActionSteps    *struct {
		Platforms  []string `yaml:"platforms"`
		HowToStart string   `yaml:"how_to_start"`
		Costs      string   `yaml:"costs"`
	} `yaml:"action_steps"`
}

type yamlFile struct {
	Options []yamlOption `yaml:"options"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or returns the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	options := make([]InvestmentOption, 0, len(file.Options))
	for i, raw := range file.Options {
		if raw.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: id is required", i)
		}
		options = append(options, raw.toOption())
	}
	return New(options)
}

// New builds a catalog from already-constructed options, rejecting entries
// the scorer cannot rank.
func New(options []InvestmentOption) (*Catalog, error) {
	c := &Catalog{
		options: make([]InvestmentOption, len(options)),
		byID:    make(map[string]int, len(options)),
	}
	for i, opt := range options {
		if err := validate(opt); err != nil {
			return nil, fmt.Errorf("option %q: %w", opt.ID, err)
		}
		if _, dup := c.byID[opt.ID]; dup {
			return nil, fmt.Errorf("duplicate option id %q", opt.ID)
		}
		c.byID[opt.ID] = i
		c.options[i] = opt
	}
	return c, nil
}

// Options returns a copy of the catalog entries in file order.
func (c *Catalog) Options() []InvestmentOption {
	out := make([]InvestmentOption, len(c.options))
	copy(out, c.options)
	return out
}

// Len returns the number of options.
func (c *Catalog) Len() int { return len(c.options) }

// Find returns the option with the given id.
func (c *Catalog) Find(id string) (InvestmentOption, bool) {
	i, ok := c.byID[id]
	if !ok {
		return InvestmentOption{}, false
	}
	return c.options[i], true
}

func validate(opt InvestmentOption) error {
	if strings.TrimSpace(opt.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(opt.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !opt.RiskLevel.Valid() {
		return fmt.Errorf("invalid risk level %q", opt.RiskLevel)
	}
	if !opt.Liquidity.Valid() {
		return fmt.Errorf("invalid liquidity %q", opt.Liquidity)
	}
	if len(opt.TimeHorizon) == 0 {
		return fmt.Errorf("at least one time horizon is required")
	}
	for _, h := range opt.TimeHorizon {
		if !h.Valid() {
			return fmt.Errorf("invalid time horizon %q", h)
		}
	}
	for _, k := range opt.SuitableFor {
		if !k.Valid() {
			return fmt.Errorf("invalid knowledge level %q", k)
		}
	}
	if opt.MinAmount != nil && opt.MinAmount.IsNegative() {
		return fmt.Errorf("min amount must not be negative")
	}
	return nil
}

func (y yamlOption) toOption() InvestmentOption {
	opt := InvestmentOption{
		ID:             y.ID,
		Name:           y.Name,
		Description:    strings.TrimSpace(y.Description),
		RiskLevel:      Level(strings.ToLower(y.RiskLevel)),
		Liquidity:      Level(strings.ToLower(y.Liquidity)),
		ExpectedReturn: y.ExpectedReturn,
		Pros:           y.Pros,
		Cons:           y.Cons,
	}
	for _, h := range y.TimeHorizon {
		opt.TimeHorizon = append(opt.TimeHorizon, Horizon(strings.ToLower(h)))
	}
	for _, k := range y.SuitableFor {
		opt.SuitableFor = append(opt.SuitableFor, KnowledgeLevel(strings.ToLower(k)))
	}
	if y.MinAmount != nil {
		amount := decimal.NewFromFloat(*y.MinAmount)
		opt.MinAmount = &amount
	}
	if y.ActionSteps != nil {
		opt.ActionSteps = &ActionSteps{
			Platforms:  y.ActionSteps.Platforms,
			HowToStart: strings.TrimSpace(y.ActionSteps.HowToStart),
			Costs:      strings.TrimSpace(y.ActionSteps.Costs),
		}
	}
	if opt.Pros == nil {
		opt.Pros = []string{}
	}
	if opt.Cons == nil {
		opt.Cons = []string{}
	}
	return opt
}

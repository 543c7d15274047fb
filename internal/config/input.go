package config

import (
	"fmt"
	"os"

	"github.com/nestegg/projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DefaultSeed is used when the assumptions file leaves the seed unset.
const DefaultSeed = 42

// InputParser handles parsing of assumptions files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads assumptions from a YAML file and validates them.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Assumptions, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var assumptions domain.Assumptions
	if err := yaml.Unmarshal(data, &assumptions); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&assumptions)

	if err := ip.ValidateAssumptions(&assumptions); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &assumptions, nil
}

// applyDefaults fills batch controls the file may leave unset.
func applyDefaults(a *domain.Assumptions) {
	if a.RunCount == 0 {
		a.RunCount = 1
	}
	if a.Seed == 0 {
		a.Seed = DefaultSeed
	}
}

// ValidateAssumptions validates a full set of assumptions. It runs before any
// simulation: a failure here aborts the batch with no partial results.
func (ip *InputParser) ValidateAssumptions(a *domain.Assumptions) error {
	if a.YearsRemaining <= 0 {
		return fmt.Errorf("years_remaining must be positive, got %d", a.YearsRemaining)
	}
	if a.StartingCash.IsNegative() {
		return fmt.Errorf("starting_cash cannot be negative")
	}
	if a.StartingEquity.IsNegative() {
		return fmt.Errorf("starting_equity cannot be negative")
	}

	if len(a.PortfolioDistribution) == 0 {
		return fmt.Errorf("portfolio_distribution is required")
	}
	for asset, weight := range a.PortfolioDistribution {
		if asset != domain.AssetCash && asset != domain.AssetEquity {
			return fmt.Errorf("portfolio_distribution: unknown asset class %q", asset)
		}
		if weight.IsNegative() || weight.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("portfolio_distribution: %s fraction must be between 0 and 1", asset)
		}
	}
	if total := a.DistributionTotal(); !total.Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("portfolio_distribution fractions must sum to 1, got %s", total)
	}

	if a.EquityReturnStdDev.IsNegative() {
		return fmt.Errorf("equity_return_stddev cannot be negative")
	}
	if a.InflationStdDev.IsNegative() {
		return fmt.Errorf("inflation_stddev cannot be negative")
	}

	if a.TailRiskCost.IsNegative() {
		return fmt.Errorf("tail_risk_cost cannot be negative")
	}
	if a.TailRiskProbability.IsNegative() || a.TailRiskProbability.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("tail_risk_probability must be between 0 and 1")
	}

	if a.RunCount <= 0 {
		return fmt.Errorf("run_count must be positive, got %d", a.RunCount)
	}

	return nil
}

// DefaultAssumptions returns the built-in assumptions set: a 25 year old
// projecting to age 110 with a 60k/60k starting portfolio, a 100k after-tax
// salary growing at 2%, 50k of living expenses, a 10/90 cash/equity split,
// and a 30k one-in-thirty-years shock.
func DefaultAssumptions() *domain.Assumptions {
	return &domain.Assumptions{
		YearsRemaining:   110 - 25,
		StartingCash:     decimal.NewFromInt(60000),
		StartingEquity:   decimal.NewFromInt(60000),
		AfterTaxSalary:   decimal.NewFromInt(100000),
		FixedExpenses:    decimal.NewFromInt(50000),
		SalaryGrowthRate: decimal.NewFromFloat(0.02),
		PortfolioDistribution: map[string]decimal.Decimal{
			domain.AssetCash:   decimal.NewFromFloat(0.1),
			domain.AssetEquity: decimal.NewFromFloat(0.9),
		},
		DividendYield:       decimal.NewFromFloat(0.014),
		InterestRate:        decimal.NewFromFloat(0.03),
		EquityReturnMean:    decimal.NewFromFloat(0.12),
		EquityReturnStdDev:  decimal.NewFromFloat(0.2),
		InflationMean:       decimal.NewFromFloat(0.03),
		InflationStdDev:     decimal.NewFromFloat(0.035),
		TailRiskCost:        decimal.NewFromInt(30000),
		TailRiskProbability: decimal.NewFromInt(1).Div(decimal.NewFromInt(30)),
		RunCount:            1,
		Seed:                DefaultSeed,
	}
}

// WriteExampleFile writes the built-in assumptions as a YAML file.
func (ip *InputParser) WriteExampleFile(filename string) error {
	data, err := yaml.Marshal(DefaultAssumptions())
	if err != nil {
		return fmt.Errorf("failed to marshal example assumptions: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

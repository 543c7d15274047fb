package domain

import (
	"github.com/shopspring/decimal"
)

// Asset class names used as keys in the portfolio distribution.
const (
	AssetCash   = "cash"
	AssetEquity = "equity"
)

// Assumptions holds every fixed input to a projection batch: starting
// balances, income and expense scalars, the stochastic model parameters, and
// the batch controls (run count, seed). It is loaded once, validated once,
// and treated as read-only by every run.
type Assumptions struct {
	// Horizon in years (years until the terminal age).
	YearsRemaining int `yaml:"years_remaining" json:"years_remaining"`

	// Starting balances
	StartingCash   decimal.Decimal `yaml:"starting_cash" json:"starting_cash"`
	StartingEquity decimal.Decimal `yaml:"starting_equity" json:"starting_equity"`

	// Annual income and expense assumptions
	AfterTaxSalary   decimal.Decimal `yaml:"after_tax_salary" json:"after_tax_salary"`
	FixedExpenses    decimal.Decimal `yaml:"fixed_expenses" json:"fixed_expenses"`
	SalaryGrowthRate decimal.Decimal `yaml:"salary_growth_rate" json:"salary_growth_rate"`

	// Allocation of each year's net distribution across asset classes.
	// Fractions must sum to exactly 1.
	PortfolioDistribution map[string]decimal.Decimal `yaml:"portfolio_distribution" json:"portfolio_distribution"`

	// Yield applied to the equity balance and rate applied to the cash balance
	DividendYield decimal.Decimal `yaml:"dividend_yield" json:"dividend_yield"`
	InterestRate  decimal.Decimal `yaml:"interest_rate" json:"interest_rate"`

	// Parameters of the Normal distributions the driver samples from
	EquityReturnMean   decimal.Decimal `yaml:"equity_return_mean" json:"equity_return_mean"`
	EquityReturnStdDev decimal.Decimal `yaml:"equity_return_stddev" json:"equity_return_stddev"`
	InflationMean      decimal.Decimal `yaml:"inflation_mean" json:"inflation_mean"`
	InflationStdDev    decimal.Decimal `yaml:"inflation_stddev" json:"inflation_stddev"`

	// Tail risk shock: magnitude and per-year occurrence probability
	TailRiskCost        decimal.Decimal `yaml:"tail_risk_cost" json:"tail_risk_cost"`
	TailRiskProbability decimal.Decimal `yaml:"tail_risk_probability" json:"tail_risk_probability"`

	// Batch controls. A zero seed selects the default seed.
	RunCount int   `yaml:"run_count" json:"run_count"`
	Seed     int64 `yaml:"seed" json:"seed"`
}

// CashFraction returns the share of each year's net distribution directed to
// the cash balance.
func (a *Assumptions) CashFraction() decimal.Decimal {
	return a.PortfolioDistribution[AssetCash]
}

// EquityFraction returns the share of each year's net distribution directed
// to the equity balance.
func (a *Assumptions) EquityFraction() decimal.Decimal {
	return a.PortfolioDistribution[AssetEquity]
}

// DistributionTotal sums the allocation fractions across all asset classes.
func (a *Assumptions) DistributionTotal() decimal.Decimal {
	total := decimal.Zero
	for _, weight := range a.PortfolioDistribution {
		total = total.Add(weight)
	}
	return total
}

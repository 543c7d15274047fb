package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric names accepted by RunResult.Metric and the tabulation layer. They
// match the field names the reporting layer charts.
const (
	MetricNestEgg             = "nest_egg"
	MetricCashPosition        = "cash_position"
	MetricEquityPosition      = "equity_position"
	MetricSalary              = "salary"
	MetricSalaryGrowth        = "salary_growth"
	MetricDividendYield       = "div_yield"
	MetricDividendReturn      = "div_return"
	MetricEquityReturn        = "snp_return"
	MetricEquityReturnPercent = "snp_return_percent"
	MetricInterestReturn      = "interest_return"
	MetricInflation           = "inflation"
	MetricLivingExpenses      = "living_expenses"
	MetricTailRisk            = "tail_risk"
)

// ChartMetrics is the fixed metric set the multi-panel report renders.
var ChartMetrics = []string{
	MetricNestEgg,
	MetricCashPosition,
	MetricEquityPosition,
	MetricEquityReturnPercent,
	MetricInflation,
	MetricTailRisk,
}

// Scenario is one run's full set of per-year random and derived sequences.
// Every sequence has one entry per simulated year and is index-aligned with
// the others: entry t of each sequence describes the same year.
type Scenario struct {
	MarketReturns []decimal.Decimal `json:"snp_return_percent"`
	Inflation     []decimal.Decimal `json:"inflation"`
	Salary        []decimal.Decimal `json:"salary"`
	SalaryGrowth  []decimal.Decimal `json:"salary_growth"`
	Drawdown      []decimal.Decimal `json:"living_expenses"`
	TailRisk      []decimal.Decimal `json:"tail_risk"`
}

// Trajectory is the recurrence engine's output for one run: the year-by-year
// ending balances and the derived income components.
type Trajectory struct {
	Cash           []decimal.Decimal `json:"cash"`
	Equity         []decimal.Decimal `json:"equity"`
	Dividends      []decimal.Decimal `json:"dividend"`
	Interest       []decimal.Decimal `json:"interest"`
	CapitalReturns []decimal.Decimal `json:"snp_return"`
	TailRisk       []decimal.Decimal `json:"tail_risk"`
}

// RunResult is the immutable record produced when one run completes: the run
// index, the year axis, the scenario inputs, and the full portfolio
// trajectory. All sequences are index-aligned to Years.
type RunResult struct {
	Run   int   `json:"simulation"`
	Years []int `json:"year"`

	NestEgg        []decimal.Decimal `json:"nest_egg"`
	CashPosition   []decimal.Decimal `json:"cash_position"`
	EquityPosition []decimal.Decimal `json:"equity_position"`

	Salary       []decimal.Decimal `json:"salary"`
	SalaryGrowth []decimal.Decimal `json:"salary_growth"`

	DividendYield  []decimal.Decimal `json:"div_yield"`
	DividendReturn []decimal.Decimal `json:"div_return"`

	EquityReturn        []decimal.Decimal `json:"snp_return"`
	EquityReturnPercent []decimal.Decimal `json:"snp_return_percent"`
	InterestReturn      []decimal.Decimal `json:"interest_return"`

	Inflation      []decimal.Decimal `json:"inflation"`
	LivingExpenses []decimal.Decimal `json:"living_expenses"`
	TailRisk       []decimal.Decimal `json:"tail_risk"`
}

// Metric returns the named sequence from the run record.
func (r *RunResult) Metric(name string) ([]decimal.Decimal, error) {
	switch name {
	case MetricNestEgg:
		return r.NestEgg, nil
	case MetricCashPosition:
		return r.CashPosition, nil
	case MetricEquityPosition:
		return r.EquityPosition, nil
	case MetricSalary:
		return r.Salary, nil
	case MetricSalaryGrowth:
		return r.SalaryGrowth, nil
	case MetricDividendYield:
		return r.DividendYield, nil
	case MetricDividendReturn:
		return r.DividendReturn, nil
	case MetricEquityReturn:
		return r.EquityReturn, nil
	case MetricEquityReturnPercent:
		return r.EquityReturnPercent, nil
	case MetricInterestReturn:
		return r.InterestReturn, nil
	case MetricInflation:
		return r.Inflation, nil
	case MetricLivingExpenses:
		return r.LivingExpenses, nil
	case MetricTailRisk:
		return r.TailRisk, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (valid: %s)", name, strings.Join(MetricNames(), ", "))
	}
}

// MetricNames lists every sequence name a RunResult carries, in report order.
func MetricNames() []string {
	return []string{
		MetricNestEgg,
		MetricCashPosition,
		MetricEquityPosition,
		MetricSalary,
		MetricSalaryGrowth,
		MetricDividendYield,
		MetricDividendReturn,
		MetricEquityReturn,
		MetricEquityReturnPercent,
		MetricInterestReturn,
		MetricInflation,
		MetricLivingExpenses,
		MetricTailRisk,
	}
}

// FinalNestEgg returns the last year's net worth, or zero for an empty run.
func (r *RunResult) FinalNestEgg() decimal.Decimal {
	if len(r.NestEgg) == 0 {
		return decimal.Zero
	}
	return r.NestEgg[len(r.NestEgg)-1]
}

// IsInsolvent reports whether the run ends with a negative net worth.
// Balances are allowed to go negative during a run; this only inspects the
// terminal year.
func (r *RunResult) IsInsolvent() bool {
	return r.FinalNestEgg().IsNegative()
}

// Batch is the ordered collection of run results produced by one driver
// invocation, together with the assumptions that produced it. Order is the
// run index; runs are otherwise independent.
type Batch struct {
	Runs        []RunResult `json:"simulations"`
	Assumptions Assumptions `json:"assumptions"`
}

// FieldTable is one metric tabulated across the batch: a year axis plus one
// ordered column per run.
type FieldTable struct {
	Metric  string              `json:"metric"`
	Years   []int               `json:"years"`
	Columns [][]decimal.Decimal `json:"columns"`
}

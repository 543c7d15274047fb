package calculation

import (
	"fmt"

	"github.com/nestegg/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// AnnuityEngine folds one scenario into a year-by-year portfolio trajectory.
// It performs no randomness itself; all stochastic inputs arrive in the
// scenario. Balances are permitted to go negative: solvency risk is an
// output of the model, not a constraint on it.
type AnnuityEngine struct {
	Assumptions *domain.Assumptions
	Logger      Logger
}

// NewAnnuityEngine creates a recurrence engine over a validated set of
// assumptions. A nil logger defaults to no output.
func NewAnnuityEngine(assumptions *domain.Assumptions, logger Logger) *AnnuityEngine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &AnnuityEngine{
		Assumptions: assumptions,
		Logger:      logger,
	}
}

// Project runs the per-year recurrence over the full horizon. Each year t:
//
//	dividend = equity * dividend_yield
//	interest = cash * interest_rate
//	capital return = equity * market_return[t]
//	net distribution = salary[t] + dividend + interest - tail[t] - drawdown[t]
//	cash += net distribution * cash fraction
//	equity += capital return + net distribution * equity fraction
//
// Year t+1 depends only on year t's ending balances. Scenario sequences that
// do not match the horizon are rejected; they are never truncated or padded.
func (ae *AnnuityEngine) Project(scenario *domain.Scenario) (*domain.Trajectory, error) {
	years := ae.Assumptions.YearsRemaining
	if err := checkScenarioShape(scenario, years); err != nil {
		return nil, err
	}

	cash := ae.Assumptions.StartingCash
	equity := ae.Assumptions.StartingEquity
	cashFraction := ae.Assumptions.CashFraction()
	equityFraction := ae.Assumptions.EquityFraction()

	trajectory := &domain.Trajectory{
		Cash:           make([]decimal.Decimal, 0, years),
		Equity:         make([]decimal.Decimal, 0, years),
		Dividends:      make([]decimal.Decimal, 0, years),
		Interest:       make([]decimal.Decimal, 0, years),
		CapitalReturns: make([]decimal.Decimal, 0, years),
		TailRisk:       make([]decimal.Decimal, 0, years),
	}

	for t := 0; t < years; t++ {
		dividend := equity.Mul(ae.Assumptions.DividendYield)
		interest := cash.Mul(ae.Assumptions.InterestRate)
		capitalReturn := equity.Mul(scenario.MarketReturns[t])

		netDistribution := scenario.Salary[t].
			Add(dividend).
			Add(interest).
			Sub(scenario.TailRisk[t]).
			Sub(scenario.Drawdown[t])

		cash = cash.Add(netDistribution.Mul(cashFraction))
		equity = equity.Add(capitalReturn).Add(netDistribution.Mul(equityFraction))

		trajectory.Cash = append(trajectory.Cash, cash)
		trajectory.Equity = append(trajectory.Equity, equity)
		trajectory.Dividends = append(trajectory.Dividends, dividend)
		trajectory.Interest = append(trajectory.Interest, interest)
		trajectory.CapitalReturns = append(trajectory.CapitalReturns, capitalReturn)
		trajectory.TailRisk = append(trajectory.TailRisk, scenario.TailRisk[t])
	}

	return trajectory, nil
}

// checkScenarioShape verifies every scenario sequence matches the horizon.
func checkScenarioShape(scenario *domain.Scenario, years int) error {
	sequences := []struct {
		name   string
		length int
	}{
		{"market returns", len(scenario.MarketReturns)},
		{"inflation", len(scenario.Inflation)},
		{"salary", len(scenario.Salary)},
		{"salary growth", len(scenario.SalaryGrowth)},
		{"drawdown", len(scenario.Drawdown)},
		{"tail risk", len(scenario.TailRisk)},
	}
	for _, seq := range sequences {
		if seq.length != years {
			return fmt.Errorf("scenario %s sequence has %d entries, want %d", seq.name, seq.length, years)
		}
	}
	return nil
}

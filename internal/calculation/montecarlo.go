package calculation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nestegg/projector/internal/domain"
	decutil "github.com/nestegg/projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Simulator drives the Monte Carlo batch: it draws random scenarios from the
// configured distributions, feeds each one through the annuity engine, and
// collects the structured run results.
//
// All runs draw from a single pseudorandom stream seeded once at batch start
// and consumed in run order, so a fixed seed reproduces the batch exactly and
// run i is never affected by the existence of later runs. For the same reason
// runs execute sequentially: parallelizing them over the shared stream would
// break reproducibility.
type Simulator struct {
	Assumptions *domain.Assumptions
	Seed        int64
	Logger      Logger

	engine *AnnuityEngine
}

// NewSimulator creates a Monte Carlo simulator over validated assumptions.
// A zero configured seed falls back to the process seed source.
func NewSimulator(assumptions *domain.Assumptions, logger Logger) *Simulator {
	if logger == nil {
		logger = NopLogger{}
	}
	seed := assumptions.Seed
	if seed == 0 {
		seed = seedFunc()
	}
	return &Simulator{
		Assumptions: assumptions,
		Seed:        seed,
		Logger:      logger,
		engine:      NewAnnuityEngine(assumptions, logger),
	}
}

// RunBatch executes runs independent simulations and returns the full batch.
// A runs value of zero or less uses the configured run count.
func (s *Simulator) RunBatch(runs int) (*domain.Batch, error) {
	if runs <= 0 {
		runs = s.Assumptions.RunCount
	}
	s.Logger.Infof("Running %d simulations.", runs)

	rng := rand.New(rand.NewSource(s.Seed))
	results := make([]domain.RunResult, 0, runs)
	for i := 0; i < runs; i++ {
		scenario := s.drawScenario(rng)
		trajectory, err := s.engine.Project(scenario)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		results = append(results, s.assembleRun(i, scenario, trajectory))
	}

	return &domain.Batch{
		Runs:        results,
		Assumptions: *s.Assumptions,
	}, nil
}

// drawScenario draws one run's worth of randomness and derives the dependent
// sequences. Draw order is fixed (market returns, inflation, tail risk); it
// is part of the reproducibility contract.
func (s *Simulator) drawScenario(rng *rand.Rand) *domain.Scenario {
	a := s.Assumptions
	years := a.YearsRemaining

	marketReturns := normalDraws(rng, a.EquityReturnMean, a.EquityReturnStdDev, years)
	inflation := normalDraws(rng, a.InflationMean, a.InflationStdDev, years)

	// Living expenses compound by realized inflation up to and including
	// each year.
	drawdown := decutil.CompoundSeries(a.FixedExpenses, inflation)

	// Salary compounds by a fixed rate. The growth factor is repeated, not
	// drawn: a deliberate simplification carried over from the model.
	growthRates := decutil.Repeat(a.SalaryGrowthRate, years)
	salaryGrowth := decutil.Repeat(decimal.NewFromInt(1).Add(a.SalaryGrowthRate), years)
	salary := decutil.CompoundSeries(a.AfterTaxSalary, growthRates)

	// Each year the shock either occurs at full cost or not at all.
	tailProbability := a.TailRiskProbability.InexactFloat64()
	tailRisk := make([]decimal.Decimal, years)
	for t := 0; t < years; t++ {
		if rng.Float64() < tailProbability {
			tailRisk[t] = a.TailRiskCost
		} else {
			tailRisk[t] = decimal.Zero
		}
	}

	return &domain.Scenario{
		MarketReturns: marketReturns,
		Inflation:     inflation,
		Salary:        salary,
		SalaryGrowth:  salaryGrowth,
		Drawdown:      drawdown,
		TailRisk:      tailRisk,
	}
}

// assembleRun combines a scenario and its trajectory into the immutable
// per-run record, index-aligned to years 1..horizon.
func (s *Simulator) assembleRun(run int, scenario *domain.Scenario, trajectory *domain.Trajectory) domain.RunResult {
	a := s.Assumptions
	years := a.YearsRemaining

	yearAxis := make([]int, years)
	nestEgg := make([]decimal.Decimal, years)
	for t := 0; t < years; t++ {
		yearAxis[t] = t + 1
		nestEgg[t] = trajectory.Cash[t].Add(trajectory.Equity[t])
	}
	dividendYield := decutil.Repeat(a.DividendYield, years)

	return domain.RunResult{
		Run:                 run,
		Years:               yearAxis,
		NestEgg:             nestEgg,
		CashPosition:        trajectory.Cash,
		EquityPosition:      trajectory.Equity,
		Salary:              scenario.Salary,
		SalaryGrowth:        scenario.SalaryGrowth,
		DividendYield:       dividendYield,
		DividendReturn:      trajectory.Dividends,
		EquityReturn:        trajectory.CapitalReturns,
		EquityReturnPercent: scenario.MarketReturns,
		InterestReturn:      trajectory.Interest,
		Inflation:           scenario.Inflation,
		LivingExpenses:      scenario.Drawdown,
		TailRisk:            trajectory.TailRisk,
	}
}

// normalDraws samples n values from a Normal(mean, stddev) distribution.
func normalDraws(rng *rand.Rand, mean, stdDev decimal.Decimal, n int) []decimal.Decimal {
	draws := make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		z := decimal.NewFromFloat(boxMullerTransform(rng))
		draws[i] = mean.Add(z.Mul(stdDev))
	}
	return draws
}

// boxMullerTransform converts two uniform variates into a standard normal one.
func boxMullerTransform(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		// Log(0) would produce an infinite variate.
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

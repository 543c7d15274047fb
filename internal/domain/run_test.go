package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() *RunResult {
	seq := func(values ...int64) []decimal.Decimal {
		out := make([]decimal.Decimal, len(values))
		for i, v := range values {
			out[i] = decimal.NewFromInt(v)
		}
		return out
	}
	return &RunResult{
		Run:                 0,
		Years:               []int{1, 2},
		NestEgg:             seq(120000, 125000),
		CashPosition:        seq(55000, 56000),
		EquityPosition:      seq(65000, 69000),
		Salary:              seq(102000, 104040),
		SalaryGrowth:        seq(1, 1),
		DividendYield:       seq(0, 0),
		DividendReturn:      seq(840, 900),
		EquityReturn:        seq(7200, 8000),
		EquityReturnPercent: seq(0, 0),
		InterestReturn:      seq(1800, 1650),
		Inflation:           seq(0, 0),
		LivingExpenses:      seq(52500, 55125),
		TailRisk:            seq(0, 30000),
	}
}

func TestRunResultMetric(t *testing.T) {
	run := sampleRun()

	for _, name := range MetricNames() {
		t.Run(name, func(t *testing.T) {
			sequence, err := run.Metric(name)
			require.NoError(t, err)
			assert.Len(t, sequence, 2)
		})
	}

	nestEgg, err := run.Metric(MetricNestEgg)
	require.NoError(t, err)
	assert.True(t, nestEgg[1].Equal(decimal.NewFromInt(125000)))

	tail, err := run.Metric(MetricTailRisk)
	require.NoError(t, err)
	assert.True(t, tail[1].Equal(decimal.NewFromInt(30000)))
}

func TestRunResultMetricUnknown(t *testing.T) {
	_, err := sampleRun().Metric("sharpe_ratio")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric")
	assert.Contains(t, err.Error(), MetricNestEgg)
}

func TestChartMetricsAreKnown(t *testing.T) {
	run := sampleRun()
	for _, name := range ChartMetrics {
		_, err := run.Metric(name)
		assert.NoError(t, err, "chart metric %s should resolve", name)
	}
}

func TestFinalNestEgg(t *testing.T) {
	run := sampleRun()
	assert.True(t, run.FinalNestEgg().Equal(decimal.NewFromInt(125000)))
	assert.False(t, run.IsInsolvent())

	empty := &RunResult{}
	assert.True(t, empty.FinalNestEgg().IsZero())

	broke := &RunResult{NestEgg: []decimal.Decimal{decimal.NewFromInt(-1)}}
	assert.True(t, broke.IsInsolvent())
}

func TestAssumptionsFractions(t *testing.T) {
	a := &Assumptions{
		PortfolioDistribution: map[string]decimal.Decimal{
			AssetCash:   decimal.NewFromFloat(0.1),
			AssetEquity: decimal.NewFromFloat(0.9),
		},
	}
	assert.True(t, a.CashFraction().Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, a.EquityFraction().Equal(decimal.NewFromFloat(0.9)))
	assert.True(t, a.DistributionTotal().Equal(decimal.NewFromInt(1)))
}

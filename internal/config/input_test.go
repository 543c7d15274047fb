package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nestegg/projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssumptionsAreValid(t *testing.T) {
	parser := NewInputParser()
	assumptions := DefaultAssumptions()

	require.NoError(t, parser.ValidateAssumptions(assumptions))
	assert.Equal(t, 85, assumptions.YearsRemaining)
	assert.Equal(t, 1, assumptions.RunCount)
	assert.Equal(t, int64(DefaultSeed), assumptions.Seed)
	assert.True(t, assumptions.DistributionTotal().Equal(decimal.NewFromInt(1)))
}

func TestValidateAssumptions(t *testing.T) {
	testCases := []struct {
		desc    string
		mutate  func(a *domain.Assumptions)
		wantErr string
	}{
		{
			desc:   "valid defaults",
			mutate: func(a *domain.Assumptions) {},
		},
		{
			desc: "allocation does not sum to one",
			mutate: func(a *domain.Assumptions) {
				a.PortfolioDistribution = map[string]decimal.Decimal{
					domain.AssetCash:   decimal.NewFromFloat(0.4),
					domain.AssetEquity: decimal.NewFromFloat(0.5),
				}
			},
			wantErr: "must sum to 1",
		},
		{
			desc: "unknown asset class",
			mutate: func(a *domain.Assumptions) {
				a.PortfolioDistribution["bonds"] = decimal.Zero
			},
			wantErr: "unknown asset class",
		},
		{
			desc:    "missing distribution",
			mutate:  func(a *domain.Assumptions) { a.PortfolioDistribution = nil },
			wantErr: "portfolio_distribution is required",
		},
		{
			desc:    "zero horizon",
			mutate:  func(a *domain.Assumptions) { a.YearsRemaining = 0 },
			wantErr: "years_remaining must be positive",
		},
		{
			desc:    "negative starting cash",
			mutate:  func(a *domain.Assumptions) { a.StartingCash = decimal.NewFromInt(-1) },
			wantErr: "starting_cash cannot be negative",
		},
		{
			desc:    "negative starting equity",
			mutate:  func(a *domain.Assumptions) { a.StartingEquity = decimal.NewFromInt(-1) },
			wantErr: "starting_equity cannot be negative",
		},
		{
			desc:    "tail probability above one",
			mutate:  func(a *domain.Assumptions) { a.TailRiskProbability = decimal.NewFromInt(2) },
			wantErr: "tail_risk_probability must be between 0 and 1",
		},
		{
			desc:    "negative tail cost",
			mutate:  func(a *domain.Assumptions) { a.TailRiskCost = decimal.NewFromInt(-100) },
			wantErr: "tail_risk_cost cannot be negative",
		},
		{
			desc:    "negative return stddev",
			mutate:  func(a *domain.Assumptions) { a.EquityReturnStdDev = decimal.NewFromFloat(-0.1) },
			wantErr: "equity_return_stddev cannot be negative",
		},
		{
			desc:    "zero run count",
			mutate:  func(a *domain.Assumptions) { a.RunCount = 0 },
			wantErr: "run_count must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assumptions := DefaultAssumptions()
			tc.mutate(assumptions)

			err := NewInputParser().ValidateAssumptions(assumptions)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
years_remaining: 30
starting_cash: 10000
starting_equity: 90000
after_tax_salary: 80000
fixed_expenses: 40000
salary_growth_rate: 0.02
portfolio_distribution:
  cash: 0.2
  equity: 0.8
dividend_yield: 0.014
interest_rate: 0.03
equity_return_mean: 0.12
equity_return_stddev: 0.2
inflation_mean: 0.03
inflation_stddev: 0.035
tail_risk_cost: 30000
tail_risk_probability: 0.0333
`
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	assumptions, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 30, assumptions.YearsRemaining)
	assert.True(t, assumptions.StartingCash.Equal(decimal.NewFromInt(10000)))
	assert.True(t, assumptions.PortfolioDistribution[domain.AssetEquity].Equal(decimal.NewFromFloat(0.8)))

	// Batch controls default when the file leaves them unset.
	assert.Equal(t, 1, assumptions.RunCount)
	assert.Equal(t, int64(DefaultSeed), assumptions.Seed)
}

func TestLoadFromFileRejectsBadAllocation(t *testing.T) {
	content := `
years_remaining: 30
starting_cash: 10000
starting_equity: 90000
portfolio_distribution:
  cash: 0.4
  equity: 0.5
`
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 1")
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestWriteExampleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	parser := NewInputParser()

	require.NoError(t, parser.WriteExampleFile(path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultAssumptions().YearsRemaining, loaded.YearsRemaining)
	assert.True(t, loaded.TailRiskCost.Equal(decimal.NewFromInt(30000)))
}

package calculation

import (
	"fmt"
	"sort"

	"github.com/nestegg/projector/internal/domain"
	"github.com/shopspring/decimal"
)

// PercentileRanges represents percentile ranges across a batch
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// BatchSummary holds aggregate statistics over a completed batch.
type BatchSummary struct {
	Runs               int              `json:"runs"`
	Years              int              `json:"years"`
	Seed               int64            `json:"seed"`
	FinalNestEgg       PercentileRanges `json:"final_nest_egg"`
	MedianFinalNestEgg decimal.Decimal  `json:"median_final_nest_egg"`
	InsolventRuns      int              `json:"insolvent_runs"`
	InsolvencyRate     decimal.Decimal  `json:"insolvency_rate"`
}

// Tabulate extracts one named metric from every run into a table indexed by
// year with one column per run.
func Tabulate(batch *domain.Batch, metric string) (*domain.FieldTable, error) {
	if len(batch.Runs) == 0 {
		return nil, fmt.Errorf("cannot tabulate an empty batch")
	}

	columns := make([][]decimal.Decimal, 0, len(batch.Runs))
	for i := range batch.Runs {
		column, err := batch.Runs[i].Metric(metric)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		columns = append(columns, column)
	}

	return &domain.FieldTable{
		Metric:  metric,
		Years:   batch.Runs[0].Years,
		Columns: columns,
	}, nil
}

// Summarize computes aggregate statistics over a batch.
func Summarize(batch *domain.Batch) *BatchSummary {
	finals := make([]decimal.Decimal, len(batch.Runs))
	insolvent := 0
	for i := range batch.Runs {
		finals[i] = batch.Runs[i].FinalNestEgg()
		if batch.Runs[i].IsInsolvent() {
			insolvent++
		}
	}

	percentiles := CalculatePercentiles(finals)
	rate := decimal.Zero
	if len(batch.Runs) > 0 {
		rate = decimal.NewFromInt(int64(insolvent)).Div(decimal.NewFromInt(int64(len(batch.Runs))))
	}

	return &BatchSummary{
		Runs:               len(batch.Runs),
		Years:              batch.Assumptions.YearsRemaining,
		Seed:               batch.Assumptions.Seed,
		FinalNestEgg:       percentiles,
		MedianFinalNestEgg: percentiles.P50,
		InsolventRuns:      insolvent,
		InsolvencyRate:     rate,
	}
}

// CalculatePercentiles computes percentile ranges over a set of values.
func CalculatePercentiles(values []decimal.Decimal) PercentileRanges {
	if len(values) == 0 {
		return PercentileRanges{}
	}

	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})

	n := len(sorted)
	return PercentileRanges{
		P10: sorted[n/10],
		P25: sorted[n/4],
		P50: sorted[n/2],
		P75: sorted[3*n/4],
		P90: sorted[9*n/10],
	}
}

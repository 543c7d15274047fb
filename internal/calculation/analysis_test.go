package calculation

import (
	"testing"

	"github.com/nestegg/projector/internal/domain"
	"github.com/shopspring/decimal"
)

func TestTabulate(t *testing.T) {
	batch, err := NewSimulator(testAssumptions(8), nil).RunBatch(3)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}

	table, err := Tabulate(batch, domain.MetricNestEgg)
	if err != nil {
		t.Fatalf("Tabulate failed: %v", err)
	}

	if table.Metric != domain.MetricNestEgg {
		t.Errorf("table metric = %s, want %s", table.Metric, domain.MetricNestEgg)
	}
	if len(table.Years) != 8 {
		t.Errorf("table has %d year rows, want 8", len(table.Years))
	}
	if len(table.Columns) != 3 {
		t.Fatalf("table has %d columns, want 3", len(table.Columns))
	}
	for run, column := range table.Columns {
		if len(column) != 8 {
			t.Errorf("column %d has %d entries, want 8", run, len(column))
		}
		if !column[0].Equal(batch.Runs[run].NestEgg[0]) {
			t.Errorf("column %d does not match run %d", run, run)
		}
	}
}

func TestTabulateUnknownMetric(t *testing.T) {
	batch, err := NewSimulator(testAssumptions(5), nil).RunBatch(1)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if _, err := Tabulate(batch, "net_present_value"); err == nil {
		t.Error("expected an error for an unknown metric")
	}
}

func TestTabulateEmptyBatch(t *testing.T) {
	if _, err := Tabulate(&domain.Batch{}, domain.MetricNestEgg); err == nil {
		t.Error("expected an error for an empty batch")
	}
}

func TestCalculatePercentiles(t *testing.T) {
	values := make([]decimal.Decimal, 0, 100)
	// Insert descending so the sort is exercised.
	for i := 100; i > 0; i-- {
		values = append(values, decimal.NewFromInt(int64(i)))
	}

	p := CalculatePercentiles(values)
	if !p.P10.Equal(decimal.NewFromInt(11)) {
		t.Errorf("P10 = %s, want 11", p.P10)
	}
	if !p.P50.Equal(decimal.NewFromInt(51)) {
		t.Errorf("P50 = %s, want 51", p.P50)
	}
	if !p.P90.Equal(decimal.NewFromInt(91)) {
		t.Errorf("P90 = %s, want 91", p.P90)
	}
	if p.P10.GreaterThan(p.P25) || p.P25.GreaterThan(p.P50) ||
		p.P50.GreaterThan(p.P75) || p.P75.GreaterThan(p.P90) {
		t.Error("percentiles should be non-decreasing")
	}
}

func TestCalculatePercentilesEmpty(t *testing.T) {
	p := CalculatePercentiles(nil)
	if !p.P50.IsZero() {
		t.Errorf("empty input should produce zero percentiles, got P50=%s", p.P50)
	}
}

func TestSummarize(t *testing.T) {
	assumptions := testAssumptions(6)
	batch := &domain.Batch{
		Assumptions: *assumptions,
		Runs: []domain.RunResult{
			{Run: 0, NestEgg: []decimal.Decimal{decimal.NewFromInt(1000)}},
			{Run: 1, NestEgg: []decimal.Decimal{decimal.NewFromInt(-500)}},
			{Run: 2, NestEgg: []decimal.Decimal{decimal.NewFromInt(2000)}},
			{Run: 3, NestEgg: []decimal.Decimal{decimal.NewFromInt(3000)}},
		},
	}

	summary := Summarize(batch)
	if summary.Runs != 4 {
		t.Errorf("summary runs = %d, want 4", summary.Runs)
	}
	if summary.Years != 6 {
		t.Errorf("summary years = %d, want 6", summary.Years)
	}
	if summary.InsolventRuns != 1 {
		t.Errorf("insolvent runs = %d, want 1", summary.InsolventRuns)
	}
	if got := summary.InsolvencyRate.StringFixed(2); got != "0.25" {
		t.Errorf("insolvency rate = %s, want 0.25", got)
	}
	if !summary.MedianFinalNestEgg.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("median final nest egg = %s, want 2000", summary.MedianFinalNestEgg)
	}
}

package output

import (
	"bytes"
	"fmt"

	"github.com/nestegg/projector/internal/calculation"
	"github.com/nestegg/projector/internal/domain"
)

// ConsoleFormatter provides a concise console summary of a batch.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(batch *domain.Batch) ([]byte, error) {
	summary := calculation.Summarize(batch)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "NEST EGG PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Runs:    %d\n", summary.Runs)
	fmt.Fprintf(&buf, "Horizon: %d years\n", summary.Years)
	fmt.Fprintf(&buf, "Seed:    %d\n", summary.Seed)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Final nest egg across runs:")
	fmt.Fprintf(&buf, "  P10=%s P25=%s P50=%s P75=%s P90=%s\n",
		FormatCurrency(summary.FinalNestEgg.P10),
		FormatCurrency(summary.FinalNestEgg.P25),
		FormatCurrency(summary.FinalNestEgg.P50),
		FormatCurrency(summary.FinalNestEgg.P75),
		FormatCurrency(summary.FinalNestEgg.P90),
	)
	fmt.Fprintf(&buf, "Median final nest egg: %s\n", FormatCurrency(summary.MedianFinalNestEgg))
	fmt.Fprintf(&buf, "Insolvent runs: %d of %d (%s)\n",
		summary.InsolventRuns, summary.Runs, FormatPercentage(summary.InsolvencyRate))

	return buf.Bytes(), nil
}

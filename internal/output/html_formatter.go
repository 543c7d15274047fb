package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nestegg/projector/internal/calculation"
	"github.com/nestegg/projector/internal/domain"
)

// chartColumns is the fixed number of panels per row in the report grid.
const chartColumns = 2

// HTMLFormatter generates a self-contained HTML report with one time-series
// chart per metric and one line per run, arranged in a fixed-column grid.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

func (h HTMLFormatter) Format(batch *domain.Batch) ([]byte, error) {
	summary := calculation.Summarize(batch)

	var panels bytes.Buffer
	var scripts bytes.Buffer
	for i, metric := range domain.ChartMetrics {
		table, err := calculation.Tabulate(batch, metric)
		if err != nil {
			return nil, err
		}

		years, err := json.Marshal(table.Years)
		if err != nil {
			return nil, err
		}

		datasets := make([]chartDataset, len(table.Columns))
		for run, column := range table.Columns {
			values := make([]float64, len(column))
			for t := range column {
				values[t] = column[t].InexactFloat64()
			}
			datasets[run] = chartDataset{
				Label:       fmt.Sprintf("run %d", run),
				Data:        values,
				BorderWidth: 1,
				PointRadius: 0,
			}
		}
		series, err := json.Marshal(datasets)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(&panels, `<div class="panel"><h3>%s</h3><canvas id="chart%d"></canvas></div>`+"\n", metric, i)
		fmt.Fprintf(&scripts, `new Chart(document.getElementById("chart%d"), {type: "line", data: {labels: %s, datasets: %s}, options: {animation: false, plugins: {legend: {display: false}}, scales: {x: {title: {display: true, text: "year"}}}}});`+"\n", i, years, series)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, htmlReportTemplate,
		summary.Runs,
		summary.Years,
		summary.Seed,
		FormatCurrency(summary.MedianFinalNestEgg),
		FormatPercentage(summary.InsolvencyRate),
		chartColumns,
		panels.String(),
		scripts.String(),
	)
	return buf.Bytes(), nil
}

type chartDataset struct {
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	BorderWidth int       `json:"borderWidth"`
	PointRadius int       `json:"pointRadius"`
}

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Nest Egg Monte Carlo Report</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 20px; }
        .summary { margin-bottom: 20px; }
        .grid { display: grid; gap: 20px; }
        .panel { border: 1px solid #ddd; border-radius: 8px; padding: 12px; }
        .panel h3 { margin: 0 0 8px 0; font-weight: 400; }
    </style>
</head>
<body>
    <h1>Nest Egg Monte Carlo Report</h1>
    <div class="summary">
        <p>Runs: %d &middot; Horizon: %d years &middot; Seed: %d</p>
        <p>Median final nest egg: %s &middot; Insolvency rate: %s</p>
    </div>
    <div class="grid" style="grid-template-columns: repeat(%d, 1fr);">
%s
    </div>
    <script>
%s
    </script>
</body>
</html>
`

package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/nestegg/projector/internal/domain"
)

// FieldTableCSV renders one tabulated metric as CSV: one row per year, one
// column per run.
func FieldTableCSV(table *domain.FieldTable) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := make([]string, 0, len(table.Columns)+1)
	header = append(header, "year")
	for run := range table.Columns {
		header = append(header, fmt.Sprintf("run_%d", run))
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, year := range table.Years {
		row := make([]string, 0, len(table.Columns)+1)
		row = append(row, strconv.Itoa(year))
		for _, column := range table.Columns {
			row = append(row, column[i].String())
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row for year %d: %w", year, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFieldTableCSV writes a tabulated metric to a file, or to stdout when
// the path is empty.
func WriteFieldTableCSV(table *domain.FieldTable, path string) error {
	data, err := FieldTableCSV(table)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVRenderer renders a dataset as CSV. The title is omitted: CSV output is
// meant for further processing, not presentation.
type CSVRenderer struct{}

// Ext returns the file extension for CSV output.
func (r *CSVRenderer) Ext() string { return "csv" }

// Render produces CSV encoded bytes for the dataset.
func (r *CSVRenderer) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		if len(row) != len(data.Headers) {
			return nil, fmt.Errorf("row has %d cells, want %d", len(row), len(data.Headers))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

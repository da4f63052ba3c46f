// Package pipeline turns the raw sales CSV into analysis-ready
// records: load, clean, filter to completed orders, recode flags,
// derive calendar features. Each stage is a pure Frame (or record
// slice) transform; the Report threads operator-visible counts through
// the run.
package pipeline

import (
	"context"

	"sales-dashboard/internal/models"
)

// PreviewRows is how many completed-order rows the dashboard preview
// table shows.
const PreviewRows = 5

// Result is everything one pipeline run produces.
type Result struct {
	Records []models.SaleRecord
	Preview models.Preview
	Report  *Report
}

// Run executes the full pipeline against the CSV at path. The context
// is checked between stages; a failed run returns the first error and
// nothing else.
func Run(ctx context.Context, path string) (*Result, error) {
	report := NewReport()

	frame, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame, err = Clean(frame, report)
	if err != nil {
		return nil, err
	}

	frame, err = FilterCompleted(frame, report)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := Encode(frame, report)
	if err != nil {
		return nil, err
	}
	records = DeriveFeatures(records)

	return &Result{
		Records: records,
		Preview: preview(frame, PreviewRows),
		Report:  report,
	}, nil
}

// preview takes the head of the completed-orders frame in original
// column order.
func preview(frame *Frame, n int) models.Preview {
	if n > frame.Len() {
		n = frame.Len()
	}
	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(frame.Rows[i]))
		copy(row, frame.Rows[i])
		rows[i] = row
	}
	columns := make([]string, len(frame.Columns))
	copy(columns, frame.Columns)
	return models.Preview{Columns: columns, Rows: rows}
}

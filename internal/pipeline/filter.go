package pipeline

import "sales-dashboard/internal/models"

// FilterCompleted keeps exactly the rows whose Order Status is
// "Completed". Everything downstream, charts included, sees only this
// subset.
func FilterCompleted(frame *Frame, report *Report) (*Frame, error) {
	statusIdx, err := frame.Col(ColOrderStatus)
	if err != nil {
		return nil, err
	}

	kept := make([][]string, 0, frame.Len())
	for _, row := range frame.Rows {
		if row[statusIdx] == models.StatusCompleted {
			kept = append(kept, row)
		}
	}

	report.CompletedRows = len(kept)
	report.Addf("Filtered for 'Completed' orders. Rows for analysis: %d", len(kept))
	return frame.withRows(kept), nil
}

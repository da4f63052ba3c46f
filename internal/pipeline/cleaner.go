package pipeline

import (
	"fmt"
	"strings"
	"time"

	"sales-dashboard/internal/errors"
)

const (
	addOnsDefault     = "None"
	addOnTotalDefault = "0"
)

// Layouts accepted for Purchase Date, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// criticalColumns are the fields a record must have to survive
// cleaning.
var criticalColumns = []string{ColAge, ColGender, ColLoyalty, ColPayment}

// ParseDate parses a raw Purchase Date cell.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Clean runs the four preprocessing steps in their required order:
// date validation, default filling, critical-field dropping, and
// duplicate removal. Duplicates are detected after filling, so two rows
// that differ only in a defaulted cell count as the same row.
func Clean(frame *Frame, report *Report) (*Frame, error) {
	report.InitialRows = frame.Len()
	report.Addf("Initial rows: %d", frame.Len())

	dateIdx, err := frame.Col(ColPurchaseDate)
	if err != nil {
		return nil, err
	}
	for i, row := range frame.Rows {
		if _, err := ParseDate(row[dateIdx]); err != nil {
			return nil, errors.DateParseWrap(err, fmt.Sprintf(
				"unparseable %s %q at row %d", ColPurchaseDate, row[dateIdx], i+2))
		}
	}

	frame, err = fillDefaults(frame)
	if err != nil {
		return nil, err
	}

	frame, err = dropMissingCritical(frame, report)
	if err != nil {
		return nil, err
	}

	frame = dropDuplicates(frame, report)
	report.CleanedRows = frame.Len()
	report.Addf("Removed duplicates. Remaining rows: %d", frame.Len())

	return frame, nil
}

func fillDefaults(frame *Frame) (*Frame, error) {
	addOnsIdx, err := frame.Col(ColAddOns)
	if err != nil {
		return nil, err
	}
	totalIdx, err := frame.Col(ColAddOnTotal)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, frame.Len())
	for _, row := range frame.Rows {
		filled := make([]string, len(row))
		copy(filled, row)
		if strings.TrimSpace(filled[addOnsIdx]) == "" {
			filled[addOnsIdx] = addOnsDefault
		}
		if strings.TrimSpace(filled[totalIdx]) == "" {
			filled[totalIdx] = addOnTotalDefault
		}
		rows = append(rows, filled)
	}
	return frame.withRows(rows), nil
}

func dropMissingCritical(frame *Frame, report *Report) (*Frame, error) {
	indexes := make([]int, 0, len(criticalColumns))
	for _, name := range criticalColumns {
		idx, err := frame.Col(name)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, idx)
	}

	kept := make([][]string, 0, frame.Len())
	dropped := 0
	for _, row := range frame.Rows {
		missing := false
		for _, idx := range indexes {
			if strings.TrimSpace(row[idx]) == "" {
				missing = true
				break
			}
		}
		if missing {
			dropped++
			continue
		}
		kept = append(kept, row)
	}

	report.DroppedMissing = dropped
	if dropped > 0 {
		report.Addf("Dropped rows with missing critical info: %d", dropped)
	}
	return frame.withRows(kept), nil
}

func dropDuplicates(frame *Frame, report *Report) *Frame {
	seen := make(map[string]struct{}, frame.Len())
	kept := make([][]string, 0, frame.Len())
	removed := 0
	for _, row := range frame.Rows {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	report.DuplicatesRemoved = removed
	return frame.withRows(kept)
}

package pipeline

import "fmt"

// Report collects the operator-facing preprocessing status lines plus
// the structured counts behind them. Each stage appends to it instead
// of writing to a shared output stream, so the numbers are available to
// the dashboard sidebar, the stats endpoint, and tests alike.
type Report struct {
	InitialRows       int
	DroppedMissing    int
	DuplicatesRemoved int
	CleanedRows       int
	CompletedRows     int
	UnmappedFlags     int

	lines []string
}

func NewReport() *Report {
	return &Report{}
}

func (r *Report) Addf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the status lines in the order stages emitted
// them.
func (r *Report) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Counts returns the structured numbers for the stats endpoint.
func (r *Report) Counts() map[string]any {
	return map[string]any{
		"initial_rows":       r.InitialRows,
		"dropped_missing":    r.DroppedMissing,
		"duplicates_removed": r.DuplicatesRemoved,
		"cleaned_rows":       r.CleanedRows,
		"completed_rows":     r.CompletedRows,
		"unmapped_flags":     r.UnmappedFlags,
	}
}

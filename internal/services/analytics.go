package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/pipeline"
	"golang.org/x/sync/errgroup"
)

// Snapshot is everything one pipeline run precomputes for the
// dashboard. It is replaced wholesale on load; readers never see a
// half-built one.
type Snapshot struct {
	DailySales      []models.DailyQuantity   `json:"daily_sales"`
	ProductSales    []models.ProductQuantity `json:"product_sales"`
	MonthlySeason   []models.MonthQuantity   `json:"monthly_seasonality"`
	AgeDistribution models.AgeDistribution   `json:"age_distribution"`
	AgeQuantity     []models.ScatterSeries   `json:"age_quantity"`
	Ratings         []models.RatingCount     `json:"ratings"`
	Preview         models.Preview           `json:"preview"`
	ReportLines     []string                 `json:"report_lines"`
	ReportCounts    map[string]any           `json:"report_counts"`
	RecordCount     int64                    `json:"record_count"`
	LastLoaded      time.Time                `json:"last_loaded"`
}

type Analytics struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	csvPath  string
	logger   *slog.Logger
}

func NewAnalytics() *Analytics {
	return &Analytics{
		snapshot: &Snapshot{},
		logger:   slog.Default(),
	}
}

// SetRecords installs already-typed records directly, bypassing the
// CSV stages. Tests and fixtures use this.
func (a *Analytics) SetRecords(records []models.SaleRecord) {
	records = pipeline.DeriveFeatures(records)
	snap := computeSnapshot(records)
	snap.RecordCount = int64(len(records))
	snap.LastLoaded = time.Now()

	a.mu.Lock()
	a.snapshot = snap
	a.mu.Unlock()
}

// LoadFromCSV runs the whole pipeline against filename and swaps in
// the resulting snapshot. On failure the previous snapshot stays.
func (a *Analytics) LoadFromCSV(ctx context.Context, filename string) error {
	a.mu.Lock()
	a.csvPath = filename
	a.mu.Unlock()

	start := time.Now()
	a.logger.Info("processing sales CSV", "filename", filename)

	result, err := pipeline.Run(ctx, filename)
	if err != nil {
		return err
	}

	snap := computeSnapshot(result.Records)
	snap.Preview = result.Preview
	snap.ReportLines = result.Report.Lines()
	snap.ReportCounts = result.Report.Counts()
	snap.RecordCount = int64(len(result.Records))
	snap.LastLoaded = time.Now()

	a.mu.Lock()
	a.snapshot = snap
	a.mu.Unlock()

	a.logger.Info("sales CSV loaded successfully",
		"filename", filename,
		"initial_rows", result.Report.InitialRows,
		"completed_rows", result.Report.CompletedRows,
		"duration", time.Since(start))
	return nil
}

// Reload re-runs the pipeline against the last loaded path.
func (a *Analytics) Reload(ctx context.Context) error {
	a.mu.RLock()
	path := a.csvPath
	a.mu.RUnlock()
	return a.LoadFromCSV(ctx, path)
}

// computeSnapshot fans the six independent aggregations out over an
// errgroup; each goroutine writes its own field.
func computeSnapshot(records []models.SaleRecord) *Snapshot {
	snap := &Snapshot{}

	var g errgroup.Group
	g.Go(func() error { snap.DailySales = dailySales(records); return nil })
	g.Go(func() error { snap.ProductSales = productSales(records); return nil })
	g.Go(func() error { snap.MonthlySeason = monthlySeasonality(records); return nil })
	g.Go(func() error { snap.AgeDistribution = ageDistribution(records); return nil })
	g.Go(func() error { snap.AgeQuantity = ageQuantitySeries(records); return nil })
	g.Go(func() error { snap.Ratings = ratingCounts(records); return nil })
	_ = g.Wait()

	return snap
}

func (a *Analytics) DailySales() []models.DailyQuantity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.DailySales
}

func (a *Analytics) ProductSales() []models.ProductQuantity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.ProductSales
}

func (a *Analytics) MonthlySeasonality() []models.MonthQuantity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.MonthlySeason
}

func (a *Analytics) AgeDistribution() models.AgeDistribution {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.AgeDistribution
}

func (a *Analytics) AgeQuantity() []models.ScatterSeries {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.AgeQuantity
}

func (a *Analytics) Ratings() []models.RatingCount {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Ratings
}

func (a *Analytics) Preview() models.Preview {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Preview
}

func (a *Analytics) ReportLines() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.ReportLines
}

// Stats exposes dataset-level numbers for monitoring.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stats := map[string]any{
		"record_count":  a.snapshot.RecordCount,
		"last_loaded":   a.snapshot.LastLoaded,
		"days":          len(a.snapshot.DailySales),
		"months":        len(a.snapshot.MonthlySeason),
		"product_types": len(a.snapshot.ProductSales),
	}
	for k, v := range a.snapshot.ReportCounts {
		stats[k] = v
	}
	return stats
}

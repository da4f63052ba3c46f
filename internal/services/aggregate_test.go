package services

import (
	"math"
	"testing"

	"sales-dashboard/internal/models"
)

func agesToRecords(ages []int) []models.SaleRecord {
	records := make([]models.SaleRecord, len(ages))
	for i, age := range ages {
		records[i] = models.SaleRecord{Age: age, Quantity: 1}
	}
	return records
}

func TestAgeDistribution_BinCountAndTotal(t *testing.T) {
	ages := []int{18, 22, 25, 25, 30, 34, 41, 47, 52, 60, 67, 70}
	dist := ageDistribution(agesToRecords(ages))

	if len(dist.Bins) != ageBins {
		t.Fatalf("expected %d bins, got %d", ageBins, len(dist.Bins))
	}

	var total int
	for _, bin := range dist.Bins {
		total += bin.Count
	}
	if total != len(ages) {
		t.Errorf("histogram counts sum to %d, want %d", total, len(ages))
	}

	// First bin starts at the minimum, last bin ends at the maximum.
	if dist.Bins[0].Start != 18 {
		t.Errorf("first bin starts at %f, want 18", dist.Bins[0].Start)
	}
	if math.Abs(dist.Bins[ageBins-1].End-70) > 1e-9 {
		t.Errorf("last bin ends at %f, want 70", dist.Bins[ageBins-1].End)
	}
}

func TestAgeDistribution_UpperEdgeFallsInLastBin(t *testing.T) {
	dist := ageDistribution(agesToRecords([]int{20, 40}))

	if dist.Bins[ageBins-1].Count != 1 {
		t.Errorf("max age should land in the last bin, got count %d", dist.Bins[ageBins-1].Count)
	}
}

func TestAgeDistribution_DensityCurve(t *testing.T) {
	ages := []int{20, 25, 25, 30, 30, 30, 35, 35, 40}
	dist := ageDistribution(agesToRecords(ages))

	if len(dist.Density) != densityCurvePts {
		t.Fatalf("expected %d density points, got %d", densityCurvePts, len(dist.Density))
	}

	var peak models.DensityPoint
	for _, p := range dist.Density {
		if p.Density < 0 {
			t.Fatalf("density must be non-negative, got %f at age %f", p.Density, p.Age)
		}
		if p.Density > peak.Density {
			peak = p
		}
	}

	// The mode of the sample is 30; the density peak should sit near it.
	if peak.Age < 25 || peak.Age > 35 {
		t.Errorf("density peak at age %f, want near 30", peak.Age)
	}
}

func TestAgeDistribution_Empty(t *testing.T) {
	dist := ageDistribution(nil)
	if len(dist.Bins) != 0 || len(dist.Density) != 0 {
		t.Error("empty input should produce empty bins and density")
	}
}

func TestAgeDistribution_SingleAge(t *testing.T) {
	dist := ageDistribution(agesToRecords([]int{33, 33, 33}))

	var total int
	for _, bin := range dist.Bins {
		total += bin.Count
	}
	if total != 3 {
		t.Errorf("histogram counts sum to %d, want 3", total)
	}
	for _, p := range dist.Density {
		if math.IsNaN(p.Density) || math.IsInf(p.Density, 0) {
			t.Fatalf("degenerate sample produced non-finite density %f", p.Density)
		}
	}
}

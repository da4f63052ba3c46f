package services

import (
	"math"
	"slices"
	"strings"

	"sales-dashboard/internal/models"
)

const (
	ageBins          = 20
	densityCurvePts  = 100
	dailyDateLayout  = "2006-01-02"
	monthsInSeason   = 12
)

func dailySales(records []models.SaleRecord) []models.DailyQuantity {
	groups := make(map[string]int)
	for _, r := range records {
		groups[r.PurchaseDate.Format(dailyDateLayout)] += r.Quantity
	}

	result := make([]models.DailyQuantity, 0, len(groups))
	for date, qty := range groups {
		result = append(result, models.DailyQuantity{Date: date, Quantity: qty})
	}
	// ISO dates sort chronologically as strings.
	slices.SortFunc(result, func(a, b models.DailyQuantity) int {
		return strings.Compare(a.Date, b.Date)
	})
	return result
}

// monthlySeasonality collapses all years into twelve month buckets.
// Multi-year data stacking into the same month is intentional: the
// dashboard reads the dataset as a single season.
func monthlySeasonality(records []models.SaleRecord) []models.MonthQuantity {
	groups := make(map[int]int, monthsInSeason)
	for _, r := range records {
		groups[r.Month] += r.Quantity
	}

	result := make([]models.MonthQuantity, 0, len(groups))
	for month, qty := range groups {
		result = append(result, models.MonthQuantity{Month: month, Quantity: qty})
	}
	slices.SortFunc(result, func(a, b models.MonthQuantity) int {
		return a.Month - b.Month
	})
	return result
}

func productSales(records []models.SaleRecord) []models.ProductQuantity {
	groups := make(map[string]int)
	for _, r := range records {
		groups[r.ProductType] += r.Quantity
	}

	result := make([]models.ProductQuantity, 0, len(groups))
	for product, qty := range groups {
		result = append(result, models.ProductQuantity{ProductType: product, Quantity: qty})
	}
	slices.SortFunc(result, func(a, b models.ProductQuantity) int {
		if a.Quantity != b.Quantity {
			return b.Quantity - a.Quantity
		}
		return strings.Compare(a.ProductType, b.ProductType)
	})
	return result
}

func ratingCounts(records []models.SaleRecord) []models.RatingCount {
	groups := make(map[int]int)
	for _, r := range records {
		groups[r.Rating]++
	}

	result := make([]models.RatingCount, 0, len(groups))
	for rating, count := range groups {
		result = append(result, models.RatingCount{Rating: rating, Count: count})
	}
	slices.SortFunc(result, func(a, b models.RatingCount) int {
		return a.Rating - b.Rating
	})
	return result
}

// ageDistribution bins customer ages into 20 equal-width buckets and
// overlays a Gaussian-kernel density curve scaled to the count axis,
// the way a histplot with a KDE overlay draws it.
func ageDistribution(records []models.SaleRecord) models.AgeDistribution {
	if len(records) == 0 {
		return models.AgeDistribution{Bins: []models.AgeBin{}, Density: []models.DensityPoint{}}
	}

	ages := make([]float64, len(records))
	minAge, maxAge := float64(records[0].Age), float64(records[0].Age)
	for i, r := range records {
		age := float64(r.Age)
		ages[i] = age
		minAge = math.Min(minAge, age)
		maxAge = math.Max(maxAge, age)
	}

	width := (maxAge - minAge) / ageBins
	if width == 0 {
		width = 1
	}

	bins := make([]models.AgeBin, ageBins)
	for i := range bins {
		bins[i].Start = minAge + float64(i)*width
		bins[i].End = bins[i].Start + width
	}
	for _, age := range ages {
		idx := int((age - minAge) / width)
		if idx >= ageBins {
			idx = ageBins - 1 // upper edge belongs to the last bin
		}
		bins[idx].Count++
	}

	return models.AgeDistribution{
		Bins:    bins,
		Density: densityCurve(ages, minAge, maxAge, width),
	}
}

// densityCurve evaluates a Gaussian KDE with Silverman's bandwidth at
// evenly spaced ages, scaled by n*binWidth so it overlays counts.
func densityCurve(ages []float64, minAge, maxAge, binWidth float64) []models.DensityPoint {
	n := float64(len(ages))

	var sum, sumSq float64
	for _, a := range ages {
		sum += a
		sumSq += a * a
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	bandwidth := 1.06 * math.Sqrt(variance) * math.Pow(n, -0.2)
	if bandwidth <= 0 {
		bandwidth = 1
	}

	span := maxAge - minAge
	if span == 0 {
		span = 1
	}
	step := span / (densityCurvePts - 1)
	scale := n * binWidth

	curve := make([]models.DensityPoint, densityCurvePts)
	norm := 1 / (n * bandwidth * math.Sqrt(2*math.Pi))
	for i := range curve {
		x := minAge + float64(i)*step
		var density float64
		for _, a := range ages {
			z := (x - a) / bandwidth
			density += math.Exp(-0.5 * z * z)
		}
		curve[i] = models.DensityPoint{Age: x, Density: density * norm * scale}
	}
	return curve
}

func ageQuantitySeries(records []models.SaleRecord) []models.ScatterSeries {
	groups := make(map[string][]models.ScatterPoint)
	for _, r := range records {
		groups[r.ProductType] = append(groups[r.ProductType], models.ScatterPoint{
			Age:      r.Age,
			Quantity: r.Quantity,
		})
	}

	result := make([]models.ScatterSeries, 0, len(groups))
	for product, points := range groups {
		result = append(result, models.ScatterSeries{ProductType: product, Points: points})
	}
	slices.SortFunc(result, func(a, b models.ScatterSeries) int {
		return strings.Compare(a.ProductType, b.ProductType)
	})
	return result
}

package models

import "time"

// Flag values for the recoded Yes/No columns. Anything outside
// {"Yes","No"} in the source data maps to FlagUnmapped.
const (
	FlagNo       int8 = 0
	FlagYes      int8 = 1
	FlagUnmapped int8 = -1
)

// StatusCompleted is the only order status retained for analysis.
const StatusCompleted = "Completed"

type SaleRecord struct {
	PurchaseDate  time.Time
	ProductType   string
	Quantity      int
	Age           int
	Gender        string
	LoyaltyMember int8
	PaymentMethod string
	OrderStatus   string
	AddOns        string
	AddOnTotal    float64
	Promotion     int8
	Rating        int

	// Calendar features derived from PurchaseDate.
	Year       int
	Month      int
	Day        int
	DayOfWeek  int // 0 = Monday
	Quarter    int
	WeekOfYear int
}

type DailyQuantity struct {
	Date     string `json:"date"`
	Quantity int    `json:"quantity"`
}

type MonthQuantity struct {
	Month    int `json:"month"`
	Quantity int `json:"quantity"`
}

type ProductQuantity struct {
	ProductType string `json:"product_type"`
	Quantity    int    `json:"quantity"`
}

type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// AgeBin is one histogram bucket. Start is inclusive, End exclusive
// except for the last bin, which includes its upper edge.
type AgeBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

type DensityPoint struct {
	Age     float64 `json:"age"`
	Density float64 `json:"density"`
}

type AgeDistribution struct {
	Bins    []AgeBin       `json:"bins"`
	Density []DensityPoint `json:"density"`
}

// ScatterPoint uses x/y keys so the series can feed a scatter chart
// without client-side reshaping.
type ScatterPoint struct {
	Age      int `json:"x"`
	Quantity int `json:"y"`
}

type ScatterSeries struct {
	ProductType string         `json:"product_type"`
	Points      []ScatterPoint `json:"points"`
}

// Preview is the head of the completed-orders subset in original
// column order, for the raw-data table on the dashboard.
type Preview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

package pipeline

import (
	"fmt"

	"sales-dashboard/internal/errors"
)

// Column names the input CSV must carry, casing and all.
const (
	ColPurchaseDate = "Purchase Date"
	ColAddOns       = "Add-ons Purchased"
	ColAddOnTotal   = "Add-on Total"
	ColAge          = "Age"
	ColGender       = "Gender"
	ColLoyalty      = "Loyalty Member"
	ColPayment      = "Payment Method"
	ColOrderStatus  = "Order Status"
	ColProductType  = "Product Type"
	ColQuantity     = "Quantity"
	ColRating       = "Rating"
	ColPromotion    = "Promotion_Flag"
)

// RequiredColumns lists every column the pipeline reads.
var RequiredColumns = []string{
	ColPurchaseDate,
	ColAddOns,
	ColAddOnTotal,
	ColAge,
	ColGender,
	ColLoyalty,
	ColPayment,
	ColOrderStatus,
	ColProductType,
	ColQuantity,
	ColRating,
	ColPromotion,
}

// Frame is a raw string table straight off the CSV: one row per record,
// one cell per column, no type coercion. Cleaning stages transform one
// Frame into the next.
type Frame struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

func NewFrame(columns []string, rows [][]string) *Frame {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}
	return &Frame{Columns: columns, Rows: rows, index: index}
}

// Col resolves a column name to its position. A miss means the CSV
// header does not match the expected schema.
func (f *Frame) Col(name string) (int, error) {
	if i, ok := f.index[name]; ok {
		return i, nil
	}
	return 0, errors.Schema(fmt.Sprintf("column %q not found; check the CSV column names and casing", name))
}

// withRows makes a new Frame sharing this frame's header.
func (f *Frame) withRows(rows [][]string) *Frame {
	return &Frame{Columns: f.Columns, Rows: rows, index: f.index}
}

func (f *Frame) Len() int {
	return len(f.Rows)
}

package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
)

// Encode types the filtered frame into sale records and recodes the
// two Yes/No columns to 1/0. A literal outside {"Yes","No"} becomes
// the unmapped marker rather than failing the run; the count lands in
// the report. Promotion_Flag treats an empty cell as "No" before
// recoding.
func Encode(frame *Frame, report *Report) ([]models.SaleRecord, error) {
	idx := struct {
		date, product, quantity, age, gender, loyalty, payment, status, addOns, addOnTotal, promotion, rating int
	}{}

	var err error
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{ColPurchaseDate, &idx.date},
		{ColProductType, &idx.product},
		{ColQuantity, &idx.quantity},
		{ColAge, &idx.age},
		{ColGender, &idx.gender},
		{ColLoyalty, &idx.loyalty},
		{ColPayment, &idx.payment},
		{ColOrderStatus, &idx.status},
		{ColAddOns, &idx.addOns},
		{ColAddOnTotal, &idx.addOnTotal},
		{ColPromotion, &idx.promotion},
		{ColRating, &idx.rating},
	} {
		if *col.dst, err = frame.Col(col.name); err != nil {
			return nil, err
		}
	}

	records := make([]models.SaleRecord, 0, frame.Len())
	for i, row := range frame.Rows {
		rowNum := i + 2 // header is row 1

		date, err := ParseDate(row[idx.date])
		if err != nil {
			return nil, errors.DateParseWrap(err, fmt.Sprintf(
				"unparseable %s %q at row %d", ColPurchaseDate, row[idx.date], rowNum))
		}

		quantity, err := parseIntCell(row[idx.quantity], ColQuantity, rowNum)
		if err != nil {
			return nil, err
		}
		age, err := parseIntCell(row[idx.age], ColAge, rowNum)
		if err != nil {
			return nil, err
		}
		rating, err := parseIntCell(row[idx.rating], ColRating, rowNum)
		if err != nil {
			return nil, err
		}
		addOnTotal, err := parseFloatCell(row[idx.addOnTotal], ColAddOnTotal, rowNum)
		if err != nil {
			return nil, err
		}

		loyalty := recodeFlag(row[idx.loyalty])
		promotion := recodeFlag(defaultNo(row[idx.promotion]))
		if loyalty == models.FlagUnmapped || promotion == models.FlagUnmapped {
			report.UnmappedFlags++
		}

		records = append(records, models.SaleRecord{
			PurchaseDate:  date,
			ProductType:   strings.TrimSpace(row[idx.product]),
			Quantity:      quantity,
			Age:           age,
			Gender:        strings.TrimSpace(row[idx.gender]),
			LoyaltyMember: loyalty,
			PaymentMethod: strings.TrimSpace(row[idx.payment]),
			OrderStatus:   strings.TrimSpace(row[idx.status]),
			AddOns:        strings.TrimSpace(row[idx.addOns]),
			AddOnTotal:    addOnTotal,
			Promotion:     promotion,
			Rating:        rating,
		})
	}

	if report.UnmappedFlags > 0 {
		report.Addf("Recoded Yes/No flags. Unmapped values: %d", report.UnmappedFlags)
	}
	report.Addf("Preprocessing completed!")
	return records, nil
}

func recodeFlag(value string) int8 {
	switch strings.TrimSpace(value) {
	case "Yes":
		return models.FlagYes
	case "No":
		return models.FlagNo
	default:
		return models.FlagUnmapped
	}
}

func defaultNo(value string) string {
	if strings.TrimSpace(value) == "" {
		return "No"
	}
	return value
}

func parseIntCell(value, column string, rowNum int) (int, error) {
	trimmed := strings.TrimSpace(value)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, nil
	}
	// Some exports write integer columns as floats ("49.0").
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.LoadWrap(err, fmt.Sprintf("non-numeric %s %q at row %d", column, value, rowNum))
	}
	return int(f), nil
}

func parseFloatCell(value, column string, rowNum int) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.LoadWrap(err, fmt.Sprintf("non-numeric %s %q at row %d", column, value, rowNum))
	}
	return f, nil
}

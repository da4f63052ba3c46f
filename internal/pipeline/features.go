package pipeline

import "sales-dashboard/internal/models"

// DeriveFeatures fills the calendar fields on every record in place.
// A valid purchase date always yields valid features, so there is no
// error path.
func DeriveFeatures(records []models.SaleRecord) []models.SaleRecord {
	for i := range records {
		d := records[i].PurchaseDate
		records[i].Year = d.Year()
		records[i].Month = int(d.Month())
		records[i].Day = d.Day()
		// time.Weekday counts Sunday as 0; the charts use Monday=0.
		records[i].DayOfWeek = (int(d.Weekday()) + 6) % 7
		records[i].Quarter = (int(d.Month())-1)/3 + 1
		_, week := d.ISOWeek()
		records[i].WeekOfYear = week
	}
	return records
}

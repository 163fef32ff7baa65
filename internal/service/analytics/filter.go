package analytics

import (
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
)

// FilterByDate returns the rows whose date falls within r, both bounds
// inclusive. An inverted range yields an empty result. The input slice is not
// modified.
func FilterByDate[T models.Dated](rows []T, r models.DateRange) []T {
	out := make([]T, 0)
	if r.Inverted() {
		return out
	}
	for _, row := range rows {
		if r.Contains(row.RecordDate()) {
			out = append(out, row)
		}
	}
	return out
}

func FilterHourly(rows []models.HourlyRecord, r models.DateRange) []models.HourlyRecord {
	return FilterByDate(rows, r)
}

func FilterDaily(rows []models.DailyRecord, r models.DateRange) []models.DailyRecord {
	return FilterByDate(rows, r)
}

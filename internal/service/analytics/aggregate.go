package analytics

import (
	"cmp"
	"slices"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

type hourKey struct {
	hour    int
	dayType types.DayType
}

// MeanByHourAndDayType groups rows by (hour, day type) and averages the rental
// count. Output is sorted by hour, weekday before weekend.
func MeanByHourAndDayType(rows []models.HourlyRecord) []models.HourlyMean {
	groups := make(map[hourKey][]float64)
	for _, r := range rows {
		k := hourKey{hour: r.Hour, dayType: r.DayType}
		groups[k] = append(groups[k], float64(r.Count))
	}

	out := make([]models.HourlyMean, 0, len(groups))
	for k, counts := range groups {
		out = append(out, models.HourlyMean{
			Hour:    k.hour,
			DayType: k.dayType,
			Mean:    mean(counts),
			Samples: len(counts),
		})
	}

	slices.SortFunc(out, func(a, b models.HourlyMean) int {
		if c := cmp.Compare(a.Hour, b.Hour); c != 0 {
			return c
		}
		return cmp.Compare(a.DayType, b.DayType)
	})

	return out
}

// DistributionByDayType keeps every count per day type, together with its box
// statistics. Day types without rows are omitted.
func DistributionByDayType(rows []models.HourlyRecord) []models.DayTypeDistribution {
	groups := make(map[types.DayType][]float64)
	for _, r := range rows {
		groups[r.DayType] = append(groups[r.DayType], float64(r.Count))
	}

	out := make([]models.DayTypeDistribution, 0, len(groups))
	for _, dt := range types.DayTypes {
		counts, ok := groups[dt]
		if !ok {
			continue
		}
		out = append(out, models.DayTypeDistribution{
			DayType: dt,
			Counts:  counts,
			Mean:    mean(counts),
			Box:     boxStats(counts),
		})
	}

	return out
}

// MeanByWeather averages the daily rental count per weather condition, in the
// fixed order clear, cloudy, light precipitation, heavy precipitation. Only
// conditions present in rows produce a group.
func MeanByWeather(rows []models.DailyRecord) []models.WeatherMean {
	groups := make(map[types.WeatherCondition][]float64)
	for _, r := range rows {
		groups[r.Weather] = append(groups[r.Weather], float64(r.Count))
	}

	out := make([]models.WeatherMean, 0, len(groups))
	for _, w := range types.WeatherConditions {
		counts, ok := groups[w]
		if !ok {
			continue
		}
		out = append(out, models.WeatherMean{
			Weather: w,
			Mean:    mean(counts),
			Samples: len(counts),
		})
	}

	return out
}

// TemperaturePoints projects daily rows into scatter points, ordered by date.
func TemperaturePoints(rows []models.DailyRecord) []models.TemperaturePoint {
	out := make([]models.TemperaturePoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.TemperaturePoint{
			Date:        r.Date,
			Temperature: r.Temperature,
			Count:       r.Count,
			Weather:     r.Weather,
		})
	}

	slices.SortStableFunc(out, func(a, b models.TemperaturePoint) int {
		return a.Date.Compare(b.Date)
	})

	return out
}

// HourlyReport filters the hourly table to r and builds every hourly view.
func HourlyReport(rows []models.HourlyRecord, r models.DateRange) *models.HourlyReport {
	filtered := FilterHourly(rows, r)
	return &models.HourlyReport{
		Range:         r,
		Rows:          len(filtered),
		HourlyMeans:   MeanByHourAndDayType(filtered),
		Distributions: DistributionByDayType(filtered),
	}
}

// DailyReport filters the daily table to r and builds every daily view.
func DailyReport(rows []models.DailyRecord, r models.DateRange) *models.DailyReport {
	filtered := FilterDaily(rows, r)
	return &models.DailyReport{
		Range:        r,
		Rows:         len(filtered),
		Points:       TemperaturePoints(filtered),
		WeatherMeans: MeanByWeather(filtered),
	}
}

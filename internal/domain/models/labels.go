package models

import (
	"strconv"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// CategoryLabels maps day types and weather conditions to display names.
// Missing entries fall back to the category's code name.
type CategoryLabels struct {
	DayTypeNames map[types.DayType]string
	WeatherNames map[types.WeatherCondition]string
}

func (c CategoryLabels) DayType(d types.DayType) string {
	if s, ok := c.DayTypeNames[d]; ok {
		return s
	}
	return d.String()
}

func (c CategoryLabels) Weather(w types.WeatherCondition) string {
	if s, ok := c.WeatherNames[w]; ok {
		return s
	}
	return w.String()
}

// ChartLabels carries the localized texts drawn on one chart.
type ChartLabels struct {
	Title  string
	XAxis  string
	YAxis  string
	NoData string

	// FormatNumber renders axis values. Nil falls back to plain decimals.
	FormatNumber func(v float64, decimals int) string

	CategoryLabels
}

func (l ChartLabels) Number(v float64, decimals int) string {
	if l.FormatNumber != nil {
		return l.FormatNumber(v, decimals)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

package models

import (
	"time"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// HourlyMean is the mean rental count for one hour of the day and day type.
type HourlyMean struct {
	Hour    int           `json:"hour"`
	DayType types.DayType `json:"day_type"`
	Mean    float64       `json:"mean"`
	Samples int           `json:"samples"`
}

// BoxStats summarizes a distribution the way a box plot draws it. Whiskers
// reach the most extreme values within 1.5 IQR of the box.
type BoxStats struct {
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// DayTypeDistribution holds every rental count observed for a day type.
type DayTypeDistribution struct {
	DayType types.DayType `json:"day_type"`
	Counts  []float64     `json:"counts"`
	Mean    float64       `json:"mean"`
	Box     BoxStats      `json:"box"`
}

// WeatherMean is the mean daily rental count for one weather condition.
type WeatherMean struct {
	Weather types.WeatherCondition `json:"weather"`
	Mean    float64                `json:"mean"`
	Samples int                    `json:"samples"`
}

// TemperaturePoint is one scatter point of the temperature chart.
type TemperaturePoint struct {
	Date        time.Time              `json:"date"`
	Temperature float64                `json:"temperature"`
	Count       int                    `json:"count"`
	Weather     types.WeatherCondition `json:"weather"`
}

// HourlyReport is everything the hourly section of the dashboard draws.
type HourlyReport struct {
	Range         DateRange             `json:"range"`
	Rows          int                   `json:"rows"`
	HourlyMeans   []HourlyMean          `json:"hourly_means"`
	Distributions []DayTypeDistribution `json:"distributions"`
}

// DailyReport is everything the summer section of the dashboard draws.
type DailyReport struct {
	Range        DateRange          `json:"range"`
	Rows         int                `json:"rows"`
	Points       []TemperaturePoint `json:"points"`
	WeatherMeans []WeatherMean      `json:"weather_means"`
}

package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

func reports() (*models.HourlyReport, *models.DailyReport) {
	hr := models.NewDateRange(time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2012, 1, 31, 0, 0, 0, 0, time.UTC))
	dr := models.NewDateRange(time.Date(2011, 6, 21, 0, 0, 0, 0, time.UTC), time.Date(2011, 9, 22, 0, 0, 0, 0, time.UTC))

	hourly := &models.HourlyReport{
		Range: hr,
		Rows:  2,
		HourlyMeans: []models.HourlyMean{
			{Hour: 8, DayType: types.Weekday, Mean: 100, Samples: 1},
			{Hour: 8, DayType: types.Weekend, Mean: 40, Samples: 1},
		},
		Distributions: []models.DayTypeDistribution{
			{DayType: types.Weekday, Counts: []float64{100}, Mean: 100, Box: models.BoxStats{Min: 100, Q1: 100, Median: 100, Q3: 100, Max: 100, LowerWhisker: 100, UpperWhisker: 100, Outliers: []float64{}}},
		},
	}
	daily := &models.DailyReport{
		Range: dr,
		Rows:  1,
		Points: []models.TemperaturePoint{
			{Date: time.Date(2011, 6, 21, 0, 0, 0, 0, time.UTC), Temperature: 29.5, Count: 5362, Weather: types.WeatherClear},
		},
		WeatherMeans: []models.WeatherMean{
			{Weather: types.WeatherClear, Mean: 5362, Samples: 1},
		},
	}
	return hourly, daily
}

func TestXLSXWriter_Write(t *testing.T) {
	hourly, daily := reports()

	var buf bytes.Buffer
	err := NewXLSXWriter().Write(&buf, hourly, daily, models.CategoryLabels{
		DayTypeNames: map[types.DayType]string{
			types.Weekday: "Hari Kerja",
			types.Weekend: "Akhir Pekan",
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetHourlyMeans, SheetDayTypes, SheetTemperature, SheetWeather}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"hourly", "2012-01-01", "2012-01-31", "2"}, summary[1])

	means, err := f.GetRows(SheetHourlyMeans)
	require.NoError(t, err)
	require.Len(t, means, 3)
	assert.Equal(t, []string{"hour", "day_type", "mean", "samples"}, means[0])
	assert.Equal(t, []string{"8", "Hari Kerja", "100", "1"}, means[1])
	assert.Equal(t, []string{"8", "Akhir Pekan", "40", "1"}, means[2])

	weather, err := f.GetRows(SheetWeather)
	require.NoError(t, err)
	require.Len(t, weather, 2)
	assert.Equal(t, []string{"clear", "5362", "1"}, weather[1])
}

func TestXLSXWriter_EmptyReports(t *testing.T) {
	var buf bytes.Buffer
	err := NewXLSXWriter().Write(&buf, &models.HourlyReport{}, &models.DailyReport{}, models.CategoryLabels{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetTemperature)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

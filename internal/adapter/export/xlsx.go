package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// Sheet names of the exported workbook.
const (
	SheetSummary     = "Summary"
	SheetHourlyMeans = "Hourly Means"
	SheetDayTypes    = "Day Type Distribution"
	SheetTemperature = "Temperature"
	SheetWeather     = "Weather Means"
)

// XLSXWriter writes the aggregation views of both reports into one workbook.
type XLSXWriter struct{}

func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

type sheet struct {
	name   string
	header []any
	rows   [][]any
}

func (x *XLSXWriter) Write(w io.Writer, hourly *models.HourlyReport, daily *models.DailyReport, l models.CategoryLabels) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []sheet{
		summarySheet(hourly, daily),
		hourlySheet(hourly, l),
		dayTypeSheet(hourly, l),
		temperatureSheet(daily, l),
		weatherSheet(daily, l),
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %q: %w", s.name, err)
		}

		if err := writeSheet(f, s, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for i, name := range s.header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(s.name, cell, name); err != nil {
			return fmt.Errorf("write %s!%s: %w", s.name, cell, err)
		}
	}

	last, _ := excelize.CoordinatesToCellName(len(s.header), 1)
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", s.name, err)
	}

	for r, row := range s.rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(s.name, cell, val); err != nil {
				return fmt.Errorf("write %s!%s: %w", s.name, cell, err)
			}
		}
	}
	return nil
}

func summarySheet(hourly *models.HourlyReport, daily *models.DailyReport) sheet {
	return sheet{
		name:   SheetSummary,
		header: []any{"dataset", "start", "end", "rows"},
		rows: [][]any{
			{types.DatasetHourly, hourly.Range.Start.Format(models.DateLayout), hourly.Range.End.Format(models.DateLayout), hourly.Rows},
			{types.DatasetDaily, daily.Range.Start.Format(models.DateLayout), daily.Range.End.Format(models.DateLayout), daily.Rows},
		},
	}
}

func hourlySheet(report *models.HourlyReport, l models.CategoryLabels) sheet {
	s := sheet{
		name:   SheetHourlyMeans,
		header: []any{"hour", "day_type", "mean", "samples"},
	}
	for _, m := range report.HourlyMeans {
		s.rows = append(s.rows, []any{m.Hour, l.DayType(m.DayType), m.Mean, m.Samples})
	}
	return s
}

func dayTypeSheet(report *models.HourlyReport, l models.CategoryLabels) sheet {
	s := sheet{
		name: SheetDayTypes,
		header: []any{
			"day_type", "samples", "mean", "min", "q1", "median", "q3", "max",
			"lower_whisker", "upper_whisker", "outliers",
		},
	}
	for _, d := range report.Distributions {
		b := d.Box
		s.rows = append(s.rows, []any{
			l.DayType(d.DayType), len(d.Counts), d.Mean, b.Min, b.Q1, b.Median, b.Q3, b.Max,
			b.LowerWhisker, b.UpperWhisker, len(b.Outliers),
		})
	}
	return s
}

func temperatureSheet(report *models.DailyReport, l models.CategoryLabels) sheet {
	s := sheet{
		name:   SheetTemperature,
		header: []any{"date", "temperature", "count", "weather"},
	}
	for _, p := range report.Points {
		s.rows = append(s.rows, []any{p.Date.Format(models.DateLayout), p.Temperature, p.Count, l.Weather(p.Weather)})
	}
	return s
}

func weatherSheet(report *models.DailyReport, l models.CategoryLabels) sheet {
	s := sheet{
		name:   SheetWeather,
		header: []any{"weather", "mean", "samples"},
	}
	for _, m := range report.WeatherMeans {
		s.rows = append(s.rows, []any{l.Weather(m.Weather), m.Mean, m.Samples})
	}
	return s
}

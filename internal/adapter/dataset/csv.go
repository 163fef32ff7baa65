package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/hashicorp/go-multierror"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// maxRowErrors caps how many invalid rows are reported per file.
const maxRowErrors = 10

// Column names of the cleaned data files.
const (
	colDate      = "dteday"
	colHour      = "hr"
	colIsWeekend = "is_weekend"
	colCount     = "cnt"
	colTemp      = "temp"
	colWeather   = "weathersit"
)

var (
	hourlyColumns = []string{colDate, colHour, colIsWeekend, colCount}
	dailyColumns  = []string{colDate, colTemp, colWeather, colCount}
)

var dateLayouts = []string{time.DateOnly, time.DateTime}

// CSVLoader reads the hourly and daily tables from CSV files.
type CSVLoader struct {
	hourlyPath string
	dailyPath  string
}

func NewCSVLoader(hourlyPath, dailyPath string) *CSVLoader {
	return &CSVLoader{
		hourlyPath: hourlyPath,
		dailyPath:  dailyPath,
	}
}

// Load reads both files. A missing file yields *types.DataNotFoundError, any
// other failure *types.DataLoadError.
func (l *CSVLoader) Load(ctx context.Context) (*models.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := l.checkFiles(); err != nil {
		return nil, err
	}

	hourly, err := l.loadHourly()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	daily, err := l.loadDaily()
	if err != nil {
		return nil, err
	}

	return models.NewDataset(hourly, daily), nil
}

func (l *CSVLoader) checkFiles() error {
	var missing []string
	for _, p := range []string{l.hourlyPath, l.dailyPath} {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, p)
				continue
			}
			return &types.DataLoadError{Dataset: datasetOf(p, l), Path: p, Cause: err}
		}
	}

	if len(missing) > 0 {
		return &types.DataNotFoundError{
			HourlyPath: l.hourlyPath,
			DailyPath:  l.dailyPath,
			Missing:    missing,
		}
	}
	return nil
}

func datasetOf(path string, l *CSVLoader) string {
	if path == l.dailyPath {
		return types.DatasetDaily
	}
	return types.DatasetHourly
}

func (l *CSVLoader) loadHourly() ([]models.HourlyRecord, error) {
	fail := func(err error) ([]models.HourlyRecord, error) {
		return nil, &types.DataLoadError{Dataset: types.DatasetHourly, Path: l.hourlyPath, Cause: err}
	}

	df, err := readFrame(l.hourlyPath, hourlyColumns)
	if err != nil {
		return fail(err)
	}

	rows, err := ParseHourly(df)
	if err != nil {
		return fail(err)
	}
	return rows, nil
}

func (l *CSVLoader) loadDaily() ([]models.DailyRecord, error) {
	fail := func(err error) ([]models.DailyRecord, error) {
		return nil, &types.DataLoadError{Dataset: types.DatasetDaily, Path: l.dailyPath, Cause: err}
	}

	df, err := readFrame(l.dailyPath, dailyColumns)
	if err != nil {
		return fail(err)
	}

	rows, err := ParseDaily(df)
	if err != nil {
		return fail(err)
	}
	return rows, nil
}

// readFrame loads a CSV file as string columns and keeps only the required
// columns, failing if any is absent.
func readFrame(path string, required []string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()

	return ReadFrame(f, required)
}

// ReadFrame parses CSV data from r and projects it onto the required columns.
func ReadFrame(r io.Reader, required []string) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("read csv: %w", df.Err)
	}

	names := make(map[string]struct{}, len(df.Names()))
	for _, n := range df.Names() {
		trimmed := strings.TrimSpace(n)
		if trimmed != n {
			df = df.Rename(trimmed, n)
			if df.Err != nil {
				return df, fmt.Errorf("rename column %q: %w", n, df.Err)
			}
		}
		names[trimmed] = struct{}{}
	}

	var missing []string
	for _, c := range required {
		if _, ok := names[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return df, fmt.Errorf("%w: %s", types.ErrMissingColumn, strings.Join(missing, ", "))
	}

	if df.Nrow() == 0 {
		return df, types.ErrEmptyDataset
	}

	df = df.Select(required)
	if df.Err != nil {
		return df, fmt.Errorf("select columns: %w", df.Err)
	}
	return df, nil
}

// ParseHourly converts a frame with the hourly columns into records.
func ParseHourly(df dataframe.DataFrame) ([]models.HourlyRecord, error) {
	dates := df.Col(colDate).Records()
	hours := df.Col(colHour).Records()
	weekends := df.Col(colIsWeekend).Records()
	counts := df.Col(colCount).Records()

	var rowErrs rowErrors
	out := make([]models.HourlyRecord, 0, len(dates))
	for i := range dates {
		date, err := parseDate(dates[i])
		if err != nil {
			rowErrs.add(i, colDate, err)
			continue
		}

		hour, err := parseInt(hours[i])
		if err != nil || hour < 0 || hour > 23 {
			rowErrs.add(i, colHour, invalidValue(hours[i], err))
			continue
		}

		weekend, err := parseBool(weekends[i])
		if err != nil {
			rowErrs.add(i, colIsWeekend, invalidValue(weekends[i], err))
			continue
		}

		count, err := parseCount(counts[i])
		if err != nil {
			rowErrs.add(i, colCount, err)
			continue
		}

		out = append(out, models.HourlyRecord{
			Date:    date,
			Hour:    hour,
			DayType: types.DayTypeFromWeekend(weekend),
			Count:   count,
		})
	}

	if err := rowErrs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseDaily converts a frame with the daily columns into records.
func ParseDaily(df dataframe.DataFrame) ([]models.DailyRecord, error) {
	dates := df.Col(colDate).Records()
	temps := df.Col(colTemp).Records()
	weathers := df.Col(colWeather).Records()
	counts := df.Col(colCount).Records()

	var rowErrs rowErrors
	out := make([]models.DailyRecord, 0, len(dates))
	for i := range dates {
		date, err := parseDate(dates[i])
		if err != nil {
			rowErrs.add(i, colDate, err)
			continue
		}

		temp, err := strconv.ParseFloat(strings.TrimSpace(temps[i]), 64)
		if err != nil {
			rowErrs.add(i, colTemp, invalidValue(temps[i], err))
			continue
		}

		code, err := parseInt(weathers[i])
		weather := types.WeatherCondition(code)
		if err != nil || !weather.Valid() {
			rowErrs.add(i, colWeather, invalidValue(weathers[i], err))
			continue
		}

		count, err := parseCount(counts[i])
		if err != nil {
			rowErrs.add(i, colCount, err)
			continue
		}

		out = append(out, models.DailyRecord{
			Date:        date,
			Temperature: temp,
			Weather:     weather,
			Count:       count,
		})
	}

	if err := rowErrs.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// rowErrors collects per-row failures, keeping the first maxRowErrors.
type rowErrors struct {
	errs    *multierror.Error
	dropped int
}

func (r *rowErrors) add(row int, column string, err error) {
	if r.errs != nil && len(r.errs.Errors) >= maxRowErrors {
		r.dropped++
		return
	}
	// +2: header line and 1-based numbering
	r.errs = multierror.Append(r.errs, fmt.Errorf("line %d, column %q: %w", row+2, column, err))
}

func (r *rowErrors) err() error {
	if r.errs == nil {
		return nil
	}
	if r.dropped > 0 {
		r.errs = multierror.Append(r.errs, fmt.Errorf("%d more invalid rows", r.dropped))
	}
	return r.errs.ErrorOrNil()
}

func invalidValue(raw string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w %q: %v", types.ErrInvalidRowValue, raw, cause)
	}
	return fmt.Errorf("%w %q: out of range", types.ErrInvalidRowValue, raw)
}

func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidDate, raw)
}

// parseInt accepts integers, also when written as integral floats ("3.0").
func parseInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer")
	}
	return int(f), nil
}

func parseBool(raw string) (bool, error) {
	s := strings.TrimSpace(raw)
	if s == "1.0" {
		return true, nil
	}
	if s == "0.0" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func parseCount(raw string) (int, error) {
	n, err := parseInt(raw)
	if err != nil {
		return 0, invalidValue(raw, err)
	}
	if n < 0 {
		return 0, invalidValue(raw, errors.New("negative count"))
	}
	return n, nil
}

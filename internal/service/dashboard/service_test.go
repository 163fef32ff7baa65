package dashboard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/i18n"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
)

type fakeLoader struct {
	calls atomic.Int32
	ds    *models.Dataset
	err   error
}

func (f *fakeLoader) Load(ctx context.Context) (*models.Dataset, error) {
	f.calls.Add(1)
	return f.ds, f.err
}

type fakeAssets struct {
	calls atomic.Int32
	res   models.AssetResult
}

func (f *fakeAssets) Load(ctx context.Context) models.AssetResult {
	f.calls.Add(1)
	return f.res
}

type renderCall struct {
	chart  string
	labels models.ChartLabels
	n      int
}

type fakeRenderer struct {
	last renderCall
	err  error
}

func (f *fakeRenderer) record(chart string, l models.ChartLabels, n int) ([]byte, error) {
	f.last = renderCall{chart: chart, labels: l, n: n}
	return []byte(chart), f.err
}

func (f *fakeRenderer) HourlyUsage(means []models.HourlyMean, l models.ChartLabels, _ types.ImageFormat) ([]byte, error) {
	return f.record("hourly", l, len(means))
}

func (f *fakeRenderer) DayTypeDistribution(d []models.DayTypeDistribution, l models.ChartLabels, _ types.ImageFormat) ([]byte, error) {
	return f.record("daytype", l, len(d))
}

func (f *fakeRenderer) TemperatureScatter(p []models.TemperaturePoint, l models.ChartLabels, _ types.ImageFormat) ([]byte, error) {
	return f.record("temperature", l, len(p))
}

func (f *fakeRenderer) WeatherUsage(m []models.WeatherMean, l models.ChartLabels, _ types.ImageFormat) ([]byte, error) {
	return f.record("weather", l, len(m))
}

type fakeExporter struct {
	hourly *models.HourlyReport
	daily  *models.DailyReport
	labels models.CategoryLabels
}

func (f *fakeExporter) Write(w io.Writer, hourly *models.HourlyReport, daily *models.DailyReport, l models.CategoryLabels) error {
	f.hourly, f.daily, f.labels = hourly, daily, l
	_, err := w.Write([]byte("xlsx"))
	return err
}

func d(s string) time.Time {
	t, _ := time.Parse(models.DateLayout, s)
	return t
}

func testDataset() *models.Dataset {
	return models.NewDataset(
		[]models.HourlyRecord{
			{Date: d("2012-01-06"), Hour: 8, DayType: types.Weekday, Count: 100},
			{Date: d("2012-01-07"), Hour: 8, DayType: types.Weekend, Count: 40},
			{Date: d("2012-02-01"), Hour: 17, DayType: types.Weekday, Count: 600},
		},
		[]models.DailyRecord{
			{Date: d("2011-06-21"), Temperature: 29.5, Weather: types.WeatherClear, Count: 5362},
			{Date: d("2011-06-22"), Temperature: 31.2, Weather: types.WeatherCloudy, Count: 5020},
			{Date: d("2011-07-01"), Temperature: 25.0, Weather: types.WeatherLightPrecipitation, Count: 2000},
		},
	)
}

func testLogger() logger.Logger {
	return logger.New(io.Discard, "test", logger.LevelDebug)
}

func newService(loader DataLoader, renderer *fakeRenderer, exporter *fakeExporter) *DashboardService {
	store := NewStore(loader, &fakeAssets{res: models.AssetWarning("Could not load bike image", "open bike.png: no such file or directory")}, testLogger())
	return NewDashboardService(store, renderer, exporter, testLogger())
}

func TestStore_LoadsOnce(t *testing.T) {
	loader := &fakeLoader{ds: testDataset()}
	store := NewStore(loader, nil, testLogger())

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			ds, err := store.Dataset(context.Background())
			assert.NoError(t, err)
			assert.Len(t, ds.Hourly, 3)
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestStore_MemoizesFailure(t *testing.T) {
	loader := &fakeLoader{err: &types.DataNotFoundError{Missing: []string{"hour.csv"}}}
	store := NewStore(loader, nil, testLogger())

	for range 3 {
		_, err := store.Dataset(context.Background())
		assert.ErrorIs(t, err, types.ErrDataNotFound)
	}
	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestStore_CanceledFirstRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen error
	loader := &ctxLoader{fn: func(ctx context.Context) { seen = ctx.Err() }}
	_, err := NewStore(loader, nil, testLogger()).Dataset(ctx)

	require.NoError(t, err)
	assert.NoError(t, seen)
}

type ctxLoader struct{ fn func(context.Context) }

func (c *ctxLoader) Load(ctx context.Context) (*models.Dataset, error) {
	c.fn(ctx)
	return models.NewDataset(nil, nil), nil
}

func TestStore_Sidebar(t *testing.T) {
	assets := &fakeAssets{res: models.AssetOK([]byte{1, 2, 3}, "image/png", 3, 1)}
	store := NewStore(&fakeLoader{}, assets, testLogger())

	for range 3 {
		assert.True(t, store.Sidebar(context.Background()).OK())
	}
	assert.Equal(t, int32(1), assets.calls.Load())

	noAssets := NewStore(&fakeLoader{}, nil, testLogger())
	assert.False(t, noAssets.Sidebar(context.Background()).OK())
}

func TestDashboardService_HourlyReport(t *testing.T) {
	svc := newService(&fakeLoader{ds: testDataset()}, &fakeRenderer{}, &fakeExporter{})

	report, err := svc.HourlyReport(context.Background(), models.NewDateRange(d("2012-01-01"), d("2012-01-31")))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Rows)
	require.Len(t, report.HourlyMeans, 2)
	assert.Equal(t, 100.0, report.HourlyMeans[0].Mean)
	assert.Equal(t, 40.0, report.HourlyMeans[1].Mean)
}

func TestDashboardService_InvertedRange(t *testing.T) {
	svc := newService(&fakeLoader{ds: testDataset()}, &fakeRenderer{}, &fakeExporter{})

	report, err := svc.DailyReport(context.Background(), models.NewDateRange(d("2011-09-01"), d("2011-06-01")))
	require.NoError(t, err)
	assert.Zero(t, report.Rows)
	assert.Empty(t, report.WeatherMeans)
}

func TestDashboardService_Bounds(t *testing.T) {
	svc := newService(&fakeLoader{ds: testDataset()}, &fakeRenderer{}, &fakeExporter{})

	b, err := svc.Bounds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.NewDateRange(d("2012-01-06"), d("2012-02-01")), b.Hourly)
	assert.Equal(t, models.NewDateRange(d("2011-06-21"), d("2011-07-01")), b.Daily)
}

func TestDashboardService_Chart(t *testing.T) {
	tests := []struct {
		kind  types.ChartKind
		chart string
		rng   models.DateRange
		n     int
		title string
	}{
		{types.ChartHourlyUsage, "hourly", models.NewDateRange(d("2012-01-01"), d("2012-12-31")), 3, "Rata-rata Penyewaan Sepeda per Jam (2012)"},
		{types.ChartDayTypeDistribution, "daytype", models.NewDateRange(d("2012-01-07"), d("2012-01-07")), 1, "Distribusi Penyewaan Sepeda pada Hari Kerja dan Akhir Pekan (2012)"},
		{types.ChartTemperatureScatter, "temperature", models.NewDateRange(d("2011-06-21"), d("2011-06-30")), 2, "Hubungan antara Suhu dan Jumlah Penyewaan (Musim Panas 2011)"},
		{types.ChartWeatherUsage, "weather", models.NewDateRange(d("2011-06-01"), d("2011-08-31")), 3, "Rata-rata Penyewaan Sepeda berdasarkan Kondisi Cuaca (Musim Panas 2011)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			renderer := &fakeRenderer{}
			svc := newService(&fakeLoader{ds: testDataset()}, renderer, &fakeExporter{})

			img, err := svc.Chart(context.Background(), tt.kind, tt.rng, i18n.Indonesian, types.FormatPNG)
			require.NoError(t, err)

			assert.Equal(t, []byte(tt.chart), img)
			assert.Equal(t, tt.chart, renderer.last.chart)
			assert.Equal(t, tt.n, renderer.last.n)
			assert.Equal(t, tt.title, renderer.last.labels.Title)
			assert.Equal(t, "Jumlah Penyewaan", renderer.last.labels.YAxis)
			assert.Equal(t, "Akhir Pekan", renderer.last.labels.DayType(types.Weekend))
			assert.Equal(t, "Cerah", renderer.last.labels.Weather(types.WeatherClear))
			assert.Equal(t, "5.500", renderer.last.labels.Number(5500, 0))
		})
	}
}

func TestDashboardService_ChartErrors(t *testing.T) {
	rng := models.NewDateRange(d("2012-01-01"), d("2012-12-31"))

	svc := newService(&fakeLoader{ds: testDataset()}, &fakeRenderer{}, &fakeExporter{})
	_, err := svc.Chart(context.Background(), "pie", rng, i18n.English, types.FormatPNG)
	assert.ErrorIs(t, err, types.ErrUnknownChart)

	_, err = svc.Chart(context.Background(), types.ChartHourlyUsage, rng, i18n.English, "gif")
	assert.ErrorIs(t, err, types.ErrInvalidFormat)

	failing := newService(&fakeLoader{ds: testDataset()}, &fakeRenderer{err: errors.New("boom")}, &fakeExporter{})
	_, err = failing.Chart(context.Background(), types.ChartHourlyUsage, rng, i18n.English, types.FormatPNG)
	assert.ErrorContains(t, err, "boom")

	loadErr := &types.DataLoadError{Dataset: types.DatasetDaily, Path: "day.csv", Cause: errors.New("bad")}
	broken := newService(&fakeLoader{err: loadErr}, &fakeRenderer{}, &fakeExporter{})
	_, err = broken.Chart(context.Background(), types.ChartWeatherUsage, rng, i18n.English, types.FormatSVG)
	assert.ErrorIs(t, err, types.ErrDataLoad)
}

func TestDashboardService_Export(t *testing.T) {
	exporter := &fakeExporter{}
	svc := newService(&fakeLoader{ds: testDataset()}, &fakeRenderer{}, exporter)

	var buf bytes.Buffer
	err := svc.Export(context.Background(), &buf,
		models.NewDateRange(d("2012-01-01"), d("2012-01-31")),
		models.NewDateRange(d("2011-06-01"), d("2011-06-30")),
		i18n.English,
	)
	require.NoError(t, err)

	assert.Equal(t, "xlsx", buf.String())
	assert.Equal(t, 2, exporter.hourly.Rows)
	assert.Equal(t, 2, exporter.daily.Rows)
	assert.Equal(t, "Working Day", exporter.labels.DayType(types.Weekday))
}

func TestDashboardService_SidebarWarning(t *testing.T) {
	svc := newService(&fakeLoader{ds: testDataset()}, &fakeRenderer{}, &fakeExporter{})

	res := svc.SidebarImage(context.Background())
	assert.False(t, res.OK())
	assert.Equal(t, "Could not load bike image", res.Warning)
}

func TestStore_SidebarLogsCause(t *testing.T) {
	var logs bytes.Buffer
	assets := &fakeAssets{res: models.AssetWarning("Could not load bike image", "open bike.png: no such file or directory")}
	store := NewStore(&fakeLoader{}, assets, logger.New(&logs, "test", logger.LevelDebug))

	store.Sidebar(context.Background())
	store.Sidebar(context.Background())

	assert.Equal(t, 1, strings.Count(logs.String(), "Could not load bike image: open bike.png: no such file or directory"))
	assert.Equal(t, "Could not load bike image", sidebarWarning(models.AssetWarning("Could not load bike image", "")))
}

func TestDashboardService_Warmup(t *testing.T) {
	loader := &fakeLoader{err: &types.DataNotFoundError{Missing: []string{"day.csv"}}}
	svc := newService(loader, &fakeRenderer{}, &fakeExporter{})

	assert.ErrorIs(t, svc.Warmup(context.Background()), types.ErrDataNotFound)
	_, err := svc.Bounds(context.Background())
	assert.ErrorIs(t, err, types.ErrDataNotFound)
	assert.Equal(t, int32(1), loader.calls.Load())
}

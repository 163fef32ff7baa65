package dashboard

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"golang.org/x/text/language"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/service/analytics"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/i18n"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/metrics"
)

type DashboardService struct {
	store    *Store
	renderer ChartRenderer
	exporter ViewExporter
	l        logger.Logger
}

func NewDashboardService(store *Store, renderer ChartRenderer, exporter ViewExporter, l logger.Logger) *DashboardService {
	return &DashboardService{
		store:    store,
		renderer: renderer,
		exporter: exporter,
		l:        l,
	}
}

// Warmup triggers the one-shot loads so that problems show up in the logs at
// startup. Errors are memoized and reported again on every request.
func (s *DashboardService) Warmup(ctx context.Context) error {
	s.store.Sidebar(ctx)
	_, err := s.store.Dataset(ctx)
	return err
}

func (s *DashboardService) Bounds(ctx context.Context) (models.DatasetBounds, error) {
	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return models.DatasetBounds{}, err
	}
	return ds.Bounds(), nil
}

// HourlyReport filters the hourly table to r and aggregates it. An inverted
// range gives an empty report.
func (s *DashboardService) HourlyReport(ctx context.Context, r models.DateRange) (*models.HourlyReport, error) {
	ctx = wrap.WithDataset(wrap.WithAction(ctx, types.ActionHourlyReport), types.DatasetHourly)

	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.HourlyReport(ds.Hourly, r)
	metrics.FilteredRows.WithLabelValues(types.DatasetHourly).Observe(float64(report.Rows))
	s.l.Debug(ctx, "hourly report built", "range", r.String(), "rows", report.Rows)

	return report, nil
}

// DailyReport filters the daily table to r and aggregates it.
func (s *DashboardService) DailyReport(ctx context.Context, r models.DateRange) (*models.DailyReport, error) {
	ctx = wrap.WithDataset(wrap.WithAction(ctx, types.ActionDailyReport), types.DatasetDaily)

	ds, err := s.store.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.DailyReport(ds.Daily, r)
	metrics.FilteredRows.WithLabelValues(types.DatasetDaily).Observe(float64(report.Rows))
	s.l.Debug(ctx, "daily report built", "range", r.String(), "rows", report.Rows)

	return report, nil
}

// Chart filters, aggregates and renders one chart for the range r.
func (s *DashboardService) Chart(ctx context.Context, kind types.ChartKind, r models.DateRange, lang language.Tag, format types.ImageFormat) ([]byte, error) {
	ctx = wrap.WithChart(wrap.WithAction(ctx, types.ActionRenderChart), string(kind))

	if !slices.Contains(types.ChartKinds, kind) {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %q", types.ErrUnknownChart, kind))
	}
	if format != types.FormatPNG && format != types.FormatSVG {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %q", types.ErrInvalidFormat, format))
	}

	tr := i18n.New(lang)
	labels := chartLabels(kind, tr)

	var img []byte
	var err error
	start := time.Now()

	switch kind.Dataset() {
	case types.DatasetHourly:
		var report *models.HourlyReport
		if report, err = s.HourlyReport(ctx, r); err != nil {
			return nil, err
		}
		if kind == types.ChartHourlyUsage {
			img, err = s.renderer.HourlyUsage(report.HourlyMeans, labels, format)
		} else {
			img, err = s.renderer.DayTypeDistribution(report.Distributions, labels, format)
		}
	default:
		var report *models.DailyReport
		if report, err = s.DailyReport(ctx, r); err != nil {
			return nil, err
		}
		if kind == types.ChartTemperatureScatter {
			img, err = s.renderer.TemperatureScatter(report.Points, labels, format)
		} else {
			img, err = s.renderer.WeatherUsage(report.WeatherMeans, labels, format)
		}
	}

	metrics.RecordChartRender(string(kind), err, time.Since(start))
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("failed to render chart: %w", err))
	}

	return img, nil
}

// Export writes every aggregation view of both ranges to w as an xlsx workbook.
func (s *DashboardService) Export(ctx context.Context, w io.Writer, hourly, daily models.DateRange, lang language.Tag) error {
	ctx = wrap.WithAction(ctx, types.ActionExportViews)

	hr, err := s.HourlyReport(ctx, hourly)
	if err != nil {
		return err
	}
	dr, err := s.DailyReport(ctx, daily)
	if err != nil {
		return err
	}

	if err := s.exporter.Write(w, hr, dr, categoryLabels(i18n.New(lang))); err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to export views: %w", err))
	}
	return nil
}

// SidebarImage never fails; a missing image comes back as a warning.
func (s *DashboardService) SidebarImage(ctx context.Context) models.AssetResult {
	return s.store.Sidebar(ctx)
}

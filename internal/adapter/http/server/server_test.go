package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Temutjin2k/bike-sharing-dashboard/config"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/middleware"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
)

type stubService struct{}

func (stubService) Bounds(ctx context.Context) (models.DatasetBounds, error) {
	day := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
	r := models.NewDateRange(day, day)
	return models.DatasetBounds{Hourly: r, Daily: r}, nil
}

func (stubService) HourlyReport(ctx context.Context, r models.DateRange) (*models.HourlyReport, error) {
	return &models.HourlyReport{Range: r}, nil
}

func (stubService) DailyReport(ctx context.Context, r models.DateRange) (*models.DailyReport, error) {
	return &models.DailyReport{Range: r}, nil
}

func (stubService) Chart(ctx context.Context, kind types.ChartKind, r models.DateRange, lang language.Tag, format types.ImageFormat) ([]byte, error) {
	panic("renderer exploded")
}

func (stubService) Export(ctx context.Context, w io.Writer, hourly, daily models.DateRange, lang language.Tag) error {
	return nil
}

func (stubService) SidebarImage(ctx context.Context) models.AssetResult {
	return models.AssetWarning("missing", "")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	var cfg config.Config
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.UI.Locale = "en"

	api, err := New(cfg, stubService{}, logger.New(io.Discard, "test", logger.LevelError))
	require.NoError(t, err)

	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestNew_RequiresService(t *testing.T) {
	_, err := New(config.Config{}, nil, logger.New(io.Discard, "test", logger.LevelError))
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path string
		code int
	}{
		{"/health", http.StatusOK},
		{"/", http.StatusOK},
		{"/api/v1/bounds", http.StatusOK},
		{"/api/v1/hourly", http.StatusOK},
		{"/api/v1/daily", http.StatusOK},
		{"/assets/sidebar.png", http.StatusNotFound},
		{"/metrics", http.StatusOK},
		{"/swagger/doc.json", http.StatusOK},
		{"/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := get(t, srv.URL+tt.path)
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
		})
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/charts/hourly-usage", "text/plain", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/charts/hourly-usage")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

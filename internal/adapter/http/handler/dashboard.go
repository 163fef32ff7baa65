package handler

import (
	"context"
	"io"
	"net/http"

	"golang.org/x/text/language"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/i18n"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
)

type DashboardService interface {
	Bounds(ctx context.Context) (models.DatasetBounds, error)
	HourlyReport(ctx context.Context, r models.DateRange) (*models.HourlyReport, error)
	DailyReport(ctx context.Context, r models.DateRange) (*models.DailyReport, error)
	Chart(ctx context.Context, kind types.ChartKind, r models.DateRange, lang language.Tag, format types.ImageFormat) ([]byte, error)
	Export(ctx context.Context, w io.Writer, hourly, daily models.DateRange, lang language.Tag) error
	SidebarImage(ctx context.Context) models.AssetResult
}

type Dashboard struct {
	s      DashboardService
	locale language.Tag
	l      logger.Logger
}

// NewDashboard creates the dashboard handlers. locale is used when neither the
// lang parameter nor Accept-Language name a supported language.
func NewDashboard(s DashboardService, locale string, l logger.Logger) *Dashboard {
	return &Dashboard{
		s:      s,
		locale: i18n.Parse(locale),
		l:      l,
	}
}

func (h *Dashboard) translator(r *http.Request) *i18n.Translator {
	lang := readString(r.URL.Query(), dto.ParamLang, "")
	return i18n.New(i18n.Match(lang, r.Header.Get("Accept-Language"), h.locale))
}

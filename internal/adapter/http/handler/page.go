package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/i18n"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/validator"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type pageView struct {
	Tr    *i18n.Translator
	Lang  string
	Error string

	SidebarImage   string
	SidebarWarning string

	Hourly rangeView
	Daily  rangeView

	HourlyCharts []chartView
	DailyCharts  []chartView
	ExportURL    string
}

type rangeView struct {
	Start string
	End   string
	Min   string
	Max   string
	Rows  int
}

type chartView struct {
	Src     string
	Alt     string
	Caption string
}

func newRangeView(selected, bounds models.DateRange, rows int) rangeView {
	return rangeView{
		Start: selected.Start.Format(models.DateLayout),
		End:   selected.End.Format(models.DateLayout),
		Min:   bounds.Start.Format(models.DateLayout),
		Max:   bounds.End.Format(models.DateLayout),
		Rows:  rows,
	}
}

// Page godoc
// @Summary      Dashboard page
// @Description  Renders the dashboard with both date filters, the section captions and the four chart panels
// @Tags         Dashboard
// @Produce      html
// @Param        hour_start  query  string  false  "Hourly start date (YYYY-MM-DD)"
// @Param        hour_end    query  string  false  "Hourly end date (YYYY-MM-DD)"
// @Param        day_start   query  string  false  "Daily start date (YYYY-MM-DD)"
// @Param        day_end     query  string  false  "Daily end date (YYYY-MM-DD)"
// @Param        lang        query  string  false  "Language"  Enums(en, id)
// @Success      200
// @Failure      422  {object}  map[string]any
// @Failure      500
// @Failure      503
// @Router       / [get]
func (h *Dashboard) Page(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionRenderPage)
	tr := h.translator(r)

	view := pageView{Tr: tr, Lang: tr.Lang()}
	if h.s.SidebarImage(ctx).OK() {
		view.SidebarImage = "/assets/sidebar.png"
	} else {
		view.SidebarWarning = tr.T(i18n.WarnImageNotFound)
	}

	bounds, err := h.s.Bounds(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "dataset unavailable", err)
		view.Error = dataErrorMessage(err, tr)
		h.renderPage(w, r, GetCode(err), view)
		return
	}

	v := validator.New()
	req := dto.NewPageRequest(r.URL.Query(), bounds, v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	hourly, err := h.s.HourlyReport(ctx, req.Hourly)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build hourly report", err)
		view.Error = dataErrorMessage(err, tr)
		h.renderPage(w, r, GetCode(err), view)
		return
	}

	daily, err := h.s.DailyReport(ctx, req.Daily)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build daily report", err)
		view.Error = dataErrorMessage(err, tr)
		h.renderPage(w, r, GetCode(err), view)
		return
	}

	view.Hourly = newRangeView(req.Hourly, bounds.Hourly, hourly.Rows)
	view.Daily = newRangeView(req.Daily, bounds.Daily, daily.Rows)

	view.HourlyCharts = []chartView{
		{
			Src:     chartURL(types.ChartHourlyUsage, req.Hourly, view.Lang),
			Alt:     tr.T(i18n.ChartHourlyTitle),
			Caption: tr.T(i18n.CaptionHourly),
		},
		{
			Src:     chartURL(types.ChartDayTypeDistribution, req.Hourly, view.Lang),
			Alt:     tr.T(i18n.ChartDayTypeTitle),
			Caption: tr.T(i18n.CaptionDayType),
		},
	}
	view.DailyCharts = []chartView{
		{
			Src:     chartURL(types.ChartTemperatureScatter, req.Daily, view.Lang),
			Alt:     tr.T(i18n.ChartTemperatureTitle),
			Caption: tr.T(i18n.CaptionDaily),
		},
		{
			Src: chartURL(types.ChartWeatherUsage, req.Daily, view.Lang),
			Alt: tr.T(i18n.ChartWeatherTitle),
		},
	}

	qs := url.Values{}
	qs.Set(dto.ParamHourStart, view.Hourly.Start)
	qs.Set(dto.ParamHourEnd, view.Hourly.End)
	qs.Set(dto.ParamDayStart, view.Daily.Start)
	qs.Set(dto.ParamDayEnd, view.Daily.End)
	qs.Set(dto.ParamLang, view.Lang)
	view.ExportURL = "/export/views.xlsx?" + qs.Encode()

	h.l.Debug(ctx, "rendering page",
		"hourly_range", req.Hourly.String(),
		"hourly_rows", hourly.Rows,
		"daily_range", req.Daily.String(),
		"daily_rows", daily.Rows,
	)

	h.renderPage(w, r, http.StatusOK, view)
}

func chartURL(kind types.ChartKind, r models.DateRange, lang string) string {
	qs := url.Values{}
	qs.Set(dto.ParamStart, r.Start.Format(models.DateLayout))
	qs.Set(dto.ParamEnd, r.End.Format(models.DateLayout))
	qs.Set(dto.ParamLang, lang)
	return "/charts/" + string(kind) + "?" + qs.Encode()
}

func (h *Dashboard) renderPage(w http.ResponseWriter, r *http.Request, status int, view pageView) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.l.Error(r.Context(), "failed to execute page template", err)
		internalErrorResponse(w, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

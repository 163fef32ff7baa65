package handler

import (
	"net/http"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/hasher"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/validator"
)

// Chart godoc
// @Summary      Render a chart
// @Description  Filters the dataset the chart is drawn from, aggregates it and renders the chart image. Empty selections render a placeholder.
// @Tags         Charts
// @Produce      png
// @Produce      image/svg+xml
// @Param        chart   path   string  true   "Chart"  Enums(hourly-usage, daytype-distribution, temperature-scatter, weather-usage)
// @Param        start   query  string  false  "Start date (YYYY-MM-DD), defaults to the first date of the dataset"
// @Param        end     query  string  false  "End date (YYYY-MM-DD), defaults to the last date of the dataset"
// @Param        format  query  string  false  "Image format"  Enums(png, svg)
// @Param        lang    query  string  false  "Language"      Enums(en, id)
// @Success      200
// @Success      304
// @Failure      422  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /charts/{chart} [get]
func (h *Dashboard) Chart(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionRenderChart)
	ctx = wrap.WithChart(ctx, r.PathValue("chart"))
	tr := h.translator(r)

	bounds, err := h.s.Bounds(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "dataset unavailable", err)
		errorResponse(w, GetCode(err), dataErrorMessage(err, tr))
		return
	}

	v := validator.New()
	req := dto.NewChartRequest(r.PathValue("chart"), r.URL.Query(), bounds, v)
	if req.Validate(v); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	img, err := h.s.Chart(ctx, req.Kind, req.Range, tr.Tag(), req.Format)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to render chart", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	etag := hasher.ETag(img)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Vary", "Accept-Language")

	if hasher.MatchETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		h.l.Error(ctx, "failed to write chart", err)
	}
}

package handler

import (
	"bytes"
	"net/http"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportViews godoc
// @Summary      Export views
// @Description  Downloads every aggregation view for the selected ranges as an xlsx workbook
// @Tags         Views
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        hour_start  query  string  false  "Hourly start date (YYYY-MM-DD)"
// @Param        hour_end    query  string  false  "Hourly end date (YYYY-MM-DD)"
// @Param        day_start   query  string  false  "Daily start date (YYYY-MM-DD)"
// @Param        day_end     query  string  false  "Daily end date (YYYY-MM-DD)"
// @Param        lang        query  string  false  "Language"  Enums(en, id)
// @Success      200
// @Failure      422  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /export/views.xlsx [get]
func (h *Dashboard) ExportViews(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionExportViews)
	tr := h.translator(r)

	bounds, err := h.s.Bounds(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "dataset unavailable", err)
		errorResponse(w, GetCode(err), dataErrorMessage(err, tr))
		return
	}

	v := validator.New()
	req := dto.NewPageRequest(r.URL.Query(), bounds, v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	// buffered so that a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := h.s.Export(ctx, &buf, req.Hourly, req.Daily, tr.Tag()); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to export views", err)
		internalErrorResponse(w, "failed to export views")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="bike-sharing-views.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.l.Error(ctx, "failed to write export", err)
	}
}

package handler

import (
	"net/http"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	wrap "github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger/wrapper"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/validator"
)

// GetBounds godoc
// @Summary      Dataset date bounds
// @Description  Returns the first and last date of the hourly and daily tables
// @Tags         Views
// @Produce      json
// @Success      200  {object}  models.DatasetBounds
// @Failure      500  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /api/v1/bounds [get]
func (h *Dashboard) GetBounds(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bounds, err := h.s.Bounds(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "dataset unavailable", err)
		errorResponse(w, GetCode(err), dataErrorMessage(err, h.translator(r)))
		return
	}

	if err := writeJSON(w, http.StatusOK, bounds, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// GetHourly godoc
// @Summary      Hourly views
// @Description  Mean rentals per hour and day type, and the rental distribution per day type, for an inclusive date range. A start after the end yields empty views.
// @Tags         Views
// @Produce      json
// @Param        start  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  models.HourlyReport
// @Failure      422  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /api/v1/hourly [get]
func (h *Dashboard) GetHourly(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionHourlyReport)

	rng, ok := h.readRange(w, r, func(b models.DatasetBounds) models.DateRange { return b.Hourly })
	if !ok {
		return
	}

	report, err := h.s.HourlyReport(ctx, rng)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build hourly report", err)
		errorResponse(w, GetCode(err), dataErrorMessage(err, h.translator(r)))
		return
	}

	if err := writeJSON(w, http.StatusOK, report, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// GetDaily godoc
// @Summary      Daily views
// @Description  Temperature scatter points and mean rentals per weather condition for an inclusive date range
// @Tags         Views
// @Produce      json
// @Param        start  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        end    query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {object}  models.DailyReport
// @Failure      422  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /api/v1/daily [get]
func (h *Dashboard) GetDaily(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionDailyReport)

	rng, ok := h.readRange(w, r, func(b models.DatasetBounds) models.DateRange { return b.Daily })
	if !ok {
		return
	}

	report, err := h.s.DailyReport(ctx, rng)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to build daily report", err)
		errorResponse(w, GetCode(err), dataErrorMessage(err, h.translator(r)))
		return
	}

	if err := writeJSON(w, http.StatusOK, report, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// readRange reads start/end defaulting to the table bounds picked by def. It
// writes the error response itself and reports false on failure.
func (h *Dashboard) readRange(w http.ResponseWriter, r *http.Request, def func(models.DatasetBounds) models.DateRange) (models.DateRange, bool) {
	ctx := r.Context()

	bounds, err := h.s.Bounds(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "dataset unavailable", err)
		errorResponse(w, GetCode(err), dataErrorMessage(err, h.translator(r)))
		return models.DateRange{}, false
	}

	v := validator.New()
	rng := dto.ReadRange(r.URL.Query(), dto.ParamStart, dto.ParamEnd, def(bounds), v)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return models.DateRange{}, false
	}

	return rng, true
}

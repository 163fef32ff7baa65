package dto

import (
	"net/url"
	"strings"
	"time"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/validator"
)

// Query parameter names.
const (
	ParamStart     = "start"
	ParamEnd       = "end"
	ParamHourStart = "hour_start"
	ParamHourEnd   = "hour_end"
	ParamDayStart  = "day_start"
	ParamDayEnd    = "day_end"
	ParamFormat    = "format"
	ParamLang      = "lang"
)

// ReadRange reads an inclusive date range from two query parameters. Missing
// values default to def. A start after the end is accepted and selects
// nothing.
func ReadRange(qs url.Values, startKey, endKey string, def models.DateRange, v *validator.Validator) models.DateRange {
	return models.NewDateRange(
		readDate(qs, startKey, def.Start, v),
		readDate(qs, endKey, def.End, v),
	)
}

func readDate(qs url.Values, key string, def time.Time, v *validator.Validator) time.Time {
	s := strings.TrimSpace(qs.Get(key))
	if s == "" {
		return def
	}

	t, err := models.ParseDate(s)
	if err != nil {
		v.AddError(key, "must be a date in YYYY-MM-DD format")
		return def
	}
	return t
}

// ChartRequest is the query of a chart image request.
type ChartRequest struct {
	Kind   types.ChartKind
	Range  models.DateRange
	Format types.ImageFormat
	Lang   string
}

func NewChartRequest(kind string, qs url.Values, bounds models.DatasetBounds, v *validator.Validator) ChartRequest {
	req := ChartRequest{
		Kind:   types.ChartKind(kind),
		Format: types.ImageFormat(strings.ToLower(qs.Get(ParamFormat))),
		Lang:   qs.Get(ParamLang),
	}
	if req.Format == "" {
		req.Format = types.FormatPNG
	}

	def := bounds.Hourly
	if req.Kind.Dataset() == types.DatasetDaily {
		def = bounds.Daily
	}
	req.Range = ReadRange(qs, ParamStart, ParamEnd, def, v)

	return req
}

func (r *ChartRequest) Validate(v *validator.Validator) {
	v.Check(validator.PermittedValue(r.Kind, types.ChartKinds...), "chart", "must be one of hourly-usage, daytype-distribution, temperature-scatter, weather-usage")
	v.Check(validator.PermittedValue(r.Format, types.FormatPNG, types.FormatSVG), ParamFormat, "must be one of png, svg")
}

// PageRequest holds both date filters of the dashboard page.
type PageRequest struct {
	Hourly models.DateRange
	Daily  models.DateRange
	Lang   string
}

func NewPageRequest(qs url.Values, bounds models.DatasetBounds, v *validator.Validator) PageRequest {
	return PageRequest{
		Hourly: ReadRange(qs, ParamHourStart, ParamHourEnd, bounds.Hourly, v),
		Daily:  ReadRange(qs, ParamDayStart, ParamDayEnd, bounds.Daily, v),
		Lang:   qs.Get(ParamLang),
	}
}

package dto

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/validator"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var bounds = models.DatasetBounds{
	Hourly: models.NewDateRange(date(2012, 1, 1), date(2012, 12, 31)),
	Daily:  models.NewDateRange(date(2011, 6, 21), date(2011, 9, 22)),
}

func TestNewPageRequest_Defaults(t *testing.T) {
	v := validator.New()
	req := NewPageRequest(url.Values{}, bounds, v)

	assert.True(t, v.Valid())
	assert.Equal(t, bounds.Hourly, req.Hourly)
	assert.Equal(t, bounds.Daily, req.Daily)
}

func TestNewPageRequest_Values(t *testing.T) {
	qs := url.Values{
		ParamHourStart: {"2012-03-01"},
		ParamHourEnd:   {"2012-02-01"},
		ParamDayEnd:    {"2011-07-01"},
		ParamLang:      {"id"},
	}

	v := validator.New()
	req := NewPageRequest(qs, bounds, v)

	assert.True(t, v.Valid())
	assert.Equal(t, date(2012, 3, 1), req.Hourly.Start)
	assert.True(t, req.Hourly.Inverted())
	assert.Equal(t, models.NewDateRange(date(2011, 6, 21), date(2011, 7, 1)), req.Daily)
	assert.Equal(t, "id", req.Lang)
}

func TestNewPageRequest_InvalidDates(t *testing.T) {
	qs := url.Values{
		ParamHourStart: {"03/01/2012"},
		ParamDayEnd:    {"2011-13-40"},
	}

	v := validator.New()
	NewPageRequest(qs, bounds, v)

	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, ParamHourStart)
	assert.Contains(t, v.Errors, ParamDayEnd)
	assert.NotContains(t, v.Errors, ParamHourEnd)
}

func TestChartRequest(t *testing.T) {
	v := validator.New()
	req := NewChartRequest("weather-usage", url.Values{ParamFormat: {"SVG"}}, bounds, v)
	req.Validate(v)

	assert.True(t, v.Valid())
	assert.Equal(t, types.ChartWeatherUsage, req.Kind)
	assert.Equal(t, types.FormatSVG, req.Format)
	assert.Equal(t, bounds.Daily, req.Range)

	v = validator.New()
	req = NewChartRequest("hourly-usage", url.Values{}, bounds, v)
	req.Validate(v)
	assert.True(t, v.Valid())
	assert.Equal(t, types.FormatPNG, req.Format)
	assert.Equal(t, bounds.Hourly, req.Range)
}

func TestChartRequest_Invalid(t *testing.T) {
	v := validator.New()
	req := NewChartRequest("pie", url.Values{ParamFormat: {"gif"}, ParamStart: {"x"}}, bounds, v)
	req.Validate(v)

	assert.Len(t, v.Errors, 3)
	assert.Contains(t, v.Errors, "chart")
	assert.Contains(t, v.Errors, ParamFormat)
	assert.Contains(t, v.Errors, ParamStart)
}

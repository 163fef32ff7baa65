package dashboard

import (
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/i18n"
)

func categoryLabels(tr *i18n.Translator) models.CategoryLabels {
	return models.CategoryLabels{
		DayTypeNames: map[types.DayType]string{
			types.Weekday: tr.T(i18n.DayWeekday),
			types.Weekend: tr.T(i18n.DayWeekend),
		},
		WeatherNames: map[types.WeatherCondition]string{
			types.WeatherClear:              tr.T(i18n.WeatherClear),
			types.WeatherCloudy:             tr.T(i18n.WeatherCloudy),
			types.WeatherLightPrecipitation: tr.T(i18n.WeatherLightPrecipitation),
			types.WeatherHeavyPrecipitation: tr.T(i18n.WeatherHeavyPrecipitation),
		},
	}
}

// chartLabels returns the title and axis names of a chart in tr's locale.
func chartLabels(kind types.ChartKind, tr *i18n.Translator) models.ChartLabels {
	l := models.ChartLabels{
		YAxis:          tr.T(i18n.AxisRentals),
		NoData:         tr.T(i18n.NoData),
		FormatNumber:   tr.Number,
		CategoryLabels: categoryLabels(tr),
	}

	switch kind {
	case types.ChartHourlyUsage:
		l.Title = tr.T(i18n.ChartHourlyTitle)
		l.XAxis = tr.T(i18n.AxisHour)
	case types.ChartDayTypeDistribution:
		l.Title = tr.T(i18n.ChartDayTypeTitle)
		l.XAxis = tr.T(i18n.AxisDayType)
	case types.ChartTemperatureScatter:
		l.Title = tr.T(i18n.ChartTemperatureTitle)
		l.XAxis = tr.T(i18n.AxisTemperature)
	case types.ChartWeatherUsage:
		l.Title = tr.T(i18n.ChartWeatherTitle)
		l.XAxis = tr.T(i18n.AxisWeather)
	}

	return l
}

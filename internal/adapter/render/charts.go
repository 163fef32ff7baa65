package render

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// HourlyUsage draws mean rentals per hour, one line per day type.
func (r *Renderer) HourlyUsage(means []models.HourlyMean, l models.ChartLabels, format types.ImageFormat) ([]byte, error) {
	if len(means) == 0 {
		return r.Placeholder(l.Title, l.NoData, format)
	}

	maxY := 0.0
	byType := make(map[types.DayType]*chart.ContinuousSeries)
	for _, m := range means {
		s, ok := byType[m.DayType]
		if !ok {
			s = &chart.ContinuousSeries{
				Name: l.DayType(m.DayType),
				Style: chart.Style{
					StrokeColor: dayTypeColors[m.DayType],
					StrokeWidth: 2.5,
					DotColor:    dayTypeColors[m.DayType],
					DotWidth:    3,
				},
			}
			byType[m.DayType] = s
		}
		s.XValues = append(s.XValues, float64(m.Hour))
		s.YValues = append(s.YValues, m.Mean)
		maxY = math.Max(maxY, m.Mean)
	}

	series := make([]chart.Series, 0, len(byType))
	for _, dt := range types.DayTypes {
		if s, ok := byType[dt]; ok {
			series = append(series, *s)
		}
	}

	ticks := make([]chart.Tick, 0, 24)
	for h := range 24 {
		ticks = append(ticks, chart.Tick{Value: float64(h), Label: fmt.Sprintf("%d", h)})
	}

	ch := chart.Chart{
		Title:      l.Title,
		Background: background,
		XAxis: chart.XAxis{
			Name:           l.XAxis,
			Range:          &chart.ContinuousRange{Min: 0, Max: 23},
			Ticks:          ticks,
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           l.YAxis,
			Range:          countRange(maxY),
			ValueFormatter: countFormatter(l),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return r.render(ch, format)
}

// TemperatureScatter draws one point per day, colored by weather condition.
func (r *Renderer) TemperatureScatter(points []models.TemperaturePoint, l models.ChartLabels, format types.ImageFormat) ([]byte, error) {
	if len(points) == 0 {
		return r.Placeholder(l.Title, l.NoData, format)
	}

	minX, maxX, maxY := math.Inf(1), math.Inf(-1), 0.0
	byWeather := make(map[types.WeatherCondition]*chart.ContinuousSeries)
	for _, p := range points {
		s, ok := byWeather[p.Weather]
		if !ok {
			s = &chart.ContinuousSeries{
				Name:  l.Weather(p.Weather),
				Style: pointStyle(weatherColors[p.Weather]),
			}
			byWeather[p.Weather] = s
		}
		s.XValues = append(s.XValues, p.Temperature)
		s.YValues = append(s.YValues, float64(p.Count))

		minX = math.Min(minX, p.Temperature)
		maxX = math.Max(maxX, p.Temperature)
		maxY = math.Max(maxY, float64(p.Count))
	}

	series := make([]chart.Series, 0, len(byWeather))
	for _, w := range types.WeatherConditions {
		if s, ok := byWeather[w]; ok {
			series = append(series, *s)
		}
	}

	ch := chart.Chart{
		Title:      l.Title,
		Background: background,
		XAxis: chart.XAxis{
			Name:           l.XAxis,
			Range:          &chart.ContinuousRange{Min: math.Floor(minX) - 1, Max: math.Ceil(maxX) + 1},
			ValueFormatter: countFormatter(l),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           l.YAxis,
			Range:          countRange(maxY),
			ValueFormatter: countFormatter(l),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return r.render(ch, format)
}

// WeatherUsage draws mean rentals per weather condition as bars.
func (r *Renderer) WeatherUsage(means []models.WeatherMean, l models.ChartLabels, format types.ImageFormat) ([]byte, error) {
	if len(means) == 0 {
		return r.Placeholder(l.Title, l.NoData, format)
	}

	p, err := provider(format)
	if err != nil {
		return nil, err
	}

	maxY := 0.0
	bars := make([]chart.Value, 0, len(means))
	for _, m := range means {
		bars = append(bars, chart.Value{
			Value: m.Mean,
			Label: l.Weather(m.Weather),
			Style: chart.Style{
				FillColor:   weatherColors[m.Weather],
				StrokeColor: weatherColors[m.Weather],
				StrokeWidth: 1,
			},
		})
		maxY = math.Max(maxY, m.Mean)
	}

	bc := chart.BarChart{
		Title:      l.Title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   r.width / (2 * (len(bars) + 1)),
		Background: barBackground,
		YAxis: chart.YAxis{
			Name:           l.YAxis,
			Range:          countRange(maxY),
			ValueFormatter: countFormatter(l),
			GridMajorStyle: gridStyle,
		},
		Bars:     bars,
		Elements: []chart.Renderable{axisName(l.XAxis, r.width, r.height)},
	}

	return renderBars(bc, p)
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 480

	axisNameBaseline = 12
)

var (
	dayTypeColors = map[types.DayType]drawing.Color{
		types.Weekday: drawing.ColorFromHex("1f77b4"),
		types.Weekend: drawing.ColorFromHex("ff7f0e"),
	}

	weatherColors = map[types.WeatherCondition]drawing.Color{
		types.WeatherClear:              drawing.ColorFromHex("f2b701"),
		types.WeatherCloudy:             drawing.ColorFromHex("7f7f7f"),
		types.WeatherLightPrecipitation: drawing.ColorFromHex("5dade2"),
		types.WeatherHeavyPrecipitation: drawing.ColorFromHex("1a3a6b"),
	}

	gridStyle = chart.Style{
		StrokeColor: drawing.ColorFromHex("e5e5e5"),
		StrokeWidth: 1,
	}

	background = chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}

	// barBackground leaves room under the bar labels for the axis name.
	barBackground = chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 56}}
)

// Renderer draws the dashboard charts at a fixed size.
type Renderer struct {
	width  int
	height int
}

func New(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }

func provider(format types.ImageFormat) (chart.RendererProvider, error) {
	switch format {
	case types.FormatPNG, "":
		return chart.PNG, nil
	case types.FormatSVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidFormat, format)
	}
}

func (r *Renderer) render(ch chart.Chart, format types.ImageFormat) ([]byte, error) {
	p, err := provider(format)
	if err != nil {
		return nil, err
	}

	ch.Width = r.width
	ch.Height = r.height

	var buf bytes.Buffer
	if err := ch.Render(p, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", ch.Title, err)
	}
	return buf.Bytes(), nil
}

// countRange is a y range from zero to a rounded maximum, never empty.
func countRange(maxY float64) *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: 0, Max: niceCeil(maxY)}
}

// niceCeil rounds v up to one significant digit, e.g. 537 -> 600.
func niceCeil(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/mag) * mag
}

// countFormatter prints whole-number axis values in the labels' locale.
func countFormatter(l models.ChartLabels) chart.ValueFormatter {
	return func(v any) string {
		if f, ok := v.(float64); ok {
			return l.Number(f, 0)
		}
		return ""
	}
}

// axisName draws name centered under the x axis labels. BarChart has no axis
// name of its own.
func axisName(name string, width, height int) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		if name == "" {
			return
		}
		style := chart.Style{
			FontSize:  chart.DefaultAxisFontSize,
			FontColor: chart.DefaultAxisColor,
		}.InheritFrom(defaults)
		tb := chart.Draw.MeasureText(r, name, style)
		chart.Draw.Text(r, name, (width-tb.Width())/2, height-axisNameBaseline, style)
	}
}

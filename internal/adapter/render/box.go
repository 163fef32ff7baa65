package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// boxHalfWidth is half the width of a box, in x axis units.
const boxHalfWidth = 0.25

// DayTypeDistribution draws one box plot per day type. go-chart has no box
// series, so each box is assembled from line segments plus an outlier series.
func (r *Renderer) DayTypeDistribution(dists []models.DayTypeDistribution, l models.ChartLabels, format types.ImageFormat) ([]byte, error) {
	if len(dists) == 0 {
		return r.Placeholder(l.Title, l.NoData, format)
	}

	ticks := []chart.Tick{{Value: 0.5, Label: ""}}
	var series []chart.Series
	maxY := 0.0

	for i, d := range dists {
		x := float64(i + 1)
		ticks = append(ticks, chart.Tick{Value: x, Label: l.DayType(d.DayType)})
		series = append(series, boxSeries(x, d.Box, lineStyle(d.DayType))...)
		maxY = math.Max(maxY, d.Box.Max)
	}
	last := float64(len(dists)) + 0.5
	ticks = append(ticks, chart.Tick{Value: last, Label: ""})

	ch := chart.Chart{
		Title:      l.Title,
		Background: background,
		XAxis: chart.XAxis{
			Name:  l.XAxis,
			Range: &chart.ContinuousRange{Min: 0.5, Max: last},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:           l.YAxis,
			Range:          countRange(maxY),
			ValueFormatter: countFormatter(l),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}

	return r.render(ch, format)
}

func lineStyle(dt types.DayType) chart.Style {
	return chart.Style{
		StrokeColor: dayTypeColors[dt],
		StrokeWidth: 2,
	}
}

// boxSeries returns the box, median, whiskers, caps and outliers centered on x.
func boxSeries(x float64, b models.BoxStats, style chart.Style) []chart.Series {
	left, right := x-boxHalfWidth, x+boxHalfWidth
	capL, capR := x-boxHalfWidth/2, x+boxHalfWidth/2

	segment := func(xs, ys []float64) chart.Series {
		return chart.ContinuousSeries{Style: style, XValues: xs, YValues: ys}
	}

	out := []chart.Series{
		segment([]float64{left, right, right, left, left}, []float64{b.Q1, b.Q1, b.Q3, b.Q3, b.Q1}),
		segment([]float64{left, right}, []float64{b.Median, b.Median}),
		segment([]float64{x, x}, []float64{b.Q3, b.UpperWhisker}),
		segment([]float64{x, x}, []float64{b.LowerWhisker, b.Q1}),
		segment([]float64{capL, capR}, []float64{b.UpperWhisker, b.UpperWhisker}),
		segment([]float64{capL, capR}, []float64{b.LowerWhisker, b.LowerWhisker}),
	}

	if len(b.Outliers) > 0 {
		xs := make([]float64, len(b.Outliers))
		for i := range xs {
			xs[i] = x
		}
		out = append(out, chart.ContinuousSeries{
			Style:   pointStyle(style.StrokeColor),
			XValues: xs,
			YValues: b.Outliers,
		})
	}

	return out
}

func renderBars(bc chart.BarChart, p chart.RendererProvider) ([]byte, error) {
	var buf bytes.Buffer
	if err := bc.Render(p, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", bc.Title, err)
	}
	return buf.Bytes(), nil
}

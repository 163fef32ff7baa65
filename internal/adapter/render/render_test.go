package render

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func labels() models.ChartLabels {
	return models.ChartLabels{
		Title:  "Average Bike Rentals per Hour (2012)",
		XAxis:  "Hour",
		YAxis:  "Rentals",
		NoData: "No data for the selected dates",
	}
}

func assertPNG(t *testing.T, img []byte, width, height int) {
	t.Helper()
	require.True(t, bytes.HasPrefix(img, pngMagic), "not a png")

	cfg, err := png.DecodeConfig(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, width, cfg.Width)
	assert.Equal(t, height, cfg.Height)
}

func assertSVG(t *testing.T, img []byte) {
	t.Helper()
	assert.Contains(t, string(img), "<svg")
	assert.Contains(t, string(img), "</svg>")
}

func TestHourlyUsage(t *testing.T) {
	means := []models.HourlyMean{
		{Hour: 7, DayType: types.Weekday, Mean: 350},
		{Hour: 7, DayType: types.Weekend, Mean: 40},
		{Hour: 8, DayType: types.Weekday, Mean: 610},
		{Hour: 8, DayType: types.Weekend, Mean: 90},
	}
	r := New(640, 320)

	img, err := r.HourlyUsage(means, labels(), types.FormatPNG)
	require.NoError(t, err)
	assertPNG(t, img, 640, 320)

	img, err = r.HourlyUsage(means, labels(), types.FormatSVG)
	require.NoError(t, err)
	assertSVG(t, img)
}

func TestHourlyUsage_SinglePoint(t *testing.T) {
	means := []models.HourlyMean{{Hour: 8, DayType: types.Weekday, Mean: 0}}

	img, err := New(400, 300).HourlyUsage(means, labels(), types.FormatPNG)
	require.NoError(t, err)
	assertPNG(t, img, 400, 300)
}

func TestDayTypeDistribution(t *testing.T) {
	dists := []models.DayTypeDistribution{
		{
			DayType: types.Weekday,
			Box: models.BoxStats{
				Min: 1, Q1: 2, Median: 3, Q3: 5, Max: 100,
				LowerWhisker: 1, UpperWhisker: 5, Outliers: []float64{100},
			},
		},
		{
			DayType: types.Weekend,
			Box: models.BoxStats{
				Min: 5, Q1: 5, Median: 5, Q3: 5, Max: 5,
				LowerWhisker: 5, UpperWhisker: 5, Outliers: []float64{},
			},
		},
	}

	img, err := New(400, 300).DayTypeDistribution(dists, labels(), types.FormatPNG)
	require.NoError(t, err)
	assertPNG(t, img, 400, 300)
}

func TestTemperatureScatter(t *testing.T) {
	points := []models.TemperaturePoint{
		{Date: time.Date(2011, 6, 21, 0, 0, 0, 0, time.UTC), Temperature: 29.5, Count: 5362, Weather: types.WeatherClear},
		{Date: time.Date(2011, 6, 22, 0, 0, 0, 0, time.UTC), Temperature: 31.2, Count: 5020, Weather: types.WeatherCloudy},
		{Date: time.Date(2011, 6, 23, 0, 0, 0, 0, time.UTC), Temperature: 27.0, Count: 3285, Weather: types.WeatherLightPrecipitation},
	}

	img, err := New(400, 300).TemperatureScatter(points, labels(), types.FormatSVG)
	require.NoError(t, err)
	assertSVG(t, img)
}

func TestWeatherUsage(t *testing.T) {
	means := []models.WeatherMean{
		{Weather: types.WeatherClear, Mean: 5500},
		{Weather: types.WeatherCloudy, Mean: 4000},
		{Weather: types.WeatherLightPrecipitation, Mean: 1500},
	}

	img, err := New(640, 320).WeatherUsage(means, labels(), types.FormatPNG)
	require.NoError(t, err)
	assertPNG(t, img, 640, 320)
}

func TestWeatherUsage_AxisNameAndGrid(t *testing.T) {
	means := []models.WeatherMean{
		{Weather: types.WeatherClear, Mean: 5500},
		{Weather: types.WeatherCloudy, Mean: 4000},
	}
	l := labels()
	l.XAxis = "Weather condition"

	img, err := New(640, 320).WeatherUsage(means, l, types.FormatSVG)
	require.NoError(t, err)
	assertSVG(t, img)
	assert.Contains(t, string(img), "Weather condition")
	assert.Contains(t, string(img), "stroke:rgba(229,229,229,1.0)", "grid lines use the shared grid style")
}

func TestCountFormatter(t *testing.T) {
	plain := countFormatter(labels())
	assert.Equal(t, "1234", plain(1234.0))
	assert.Equal(t, "", plain("x"))

	l := labels()
	l.FormatNumber = func(v float64, decimals int) string {
		return fmt.Sprintf("%.*f!", decimals, v)
	}
	assert.Equal(t, "1234!", countFormatter(l)(1234.4))
}

func TestEmptyInputsRenderPlaceholder(t *testing.T) {
	r := New(400, 300)

	renders := map[string]func(types.ImageFormat) ([]byte, error){
		"hourly":      func(f types.ImageFormat) ([]byte, error) { return r.HourlyUsage(nil, labels(), f) },
		"daytype":     func(f types.ImageFormat) ([]byte, error) { return r.DayTypeDistribution(nil, labels(), f) },
		"temperature": func(f types.ImageFormat) ([]byte, error) { return r.TemperatureScatter(nil, labels(), f) },
		"weather":     func(f types.ImageFormat) ([]byte, error) { return r.WeatherUsage(nil, labels(), f) },
	}

	for name, fn := range renders {
		t.Run(name, func(t *testing.T) {
			img, err := fn(types.FormatPNG)
			require.NoError(t, err)
			assertPNG(t, img, 400, 300)

			img, err = fn(types.FormatSVG)
			require.NoError(t, err)
			assertSVG(t, img)
		})
	}
}

func TestInvalidFormat(t *testing.T) {
	r := New(400, 300)

	_, err := r.Placeholder("t", "n", "gif")
	assert.ErrorIs(t, err, types.ErrInvalidFormat)

	_, err = r.HourlyUsage([]models.HourlyMean{{Hour: 1, Mean: 2}}, labels(), "gif")
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
}

func TestNiceCeil(t *testing.T) {
	assert.Equal(t, 1.0, niceCeil(0))
	assert.Equal(t, 600.0, niceCeil(537))
	assert.Equal(t, 7000.0, niceCeil(6100))
	assert.Equal(t, 40.0, niceCeil(40))
}

func TestNew_Defaults(t *testing.T) {
	w, h := New(0, -1).Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

package types

type ServiceMode string

// Dashboard Service - Serves the bike-sharing analysis dashboard, its charts and JSON views
const (
	DashboardService ServiceMode = "dashboard"
)

// DayType splits calendar days into working days and weekends
type DayType int

const (
	Weekday DayType = 0
	Weekend DayType = 1
)

// DayTypes lists day types in chart order
var DayTypes = []DayType{Weekday, Weekend}

func (d DayType) String() string {
	if d == Weekend {
		return "weekend"
	}
	return "weekday"
}

func (d DayType) Valid() bool {
	return d == Weekday || d == Weekend
}

func DayTypeFromWeekend(isWeekend bool) DayType {
	if isWeekend {
		return Weekend
	}
	return Weekday
}

// WeatherCondition is the ordinal sky/precipitation code of a day (weathersit)
type WeatherCondition int

const (
	WeatherClear              WeatherCondition = 1
	WeatherCloudy             WeatherCondition = 2
	WeatherLightPrecipitation WeatherCondition = 3
	WeatherHeavyPrecipitation WeatherCondition = 4
)

// WeatherConditions lists weather categories in their fixed chart order
var WeatherConditions = []WeatherCondition{
	WeatherClear,
	WeatherCloudy,
	WeatherLightPrecipitation,
	WeatherHeavyPrecipitation,
}

func (w WeatherCondition) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherCloudy:
		return "cloudy"
	case WeatherLightPrecipitation:
		return "light_precipitation"
	case WeatherHeavyPrecipitation:
		return "heavy_precipitation"
	default:
		return "unknown"
	}
}

func (w WeatherCondition) Valid() bool {
	return w >= WeatherClear && w <= WeatherHeavyPrecipitation
}

// Dataset names
const (
	DatasetHourly = "hourly"
	DatasetDaily  = "daily"
)

// ChartKind identifies one of the dashboard charts
type ChartKind string

const (
	ChartHourlyUsage         ChartKind = "hourly-usage"
	ChartDayTypeDistribution ChartKind = "daytype-distribution"
	ChartTemperatureScatter  ChartKind = "temperature-scatter"
	ChartWeatherUsage        ChartKind = "weather-usage"
)

var ChartKinds = []ChartKind{
	ChartHourlyUsage,
	ChartDayTypeDistribution,
	ChartTemperatureScatter,
	ChartWeatherUsage,
}

// Dataset returns the dataset a chart is drawn from
func (c ChartKind) Dataset() string {
	switch c {
	case ChartTemperatureScatter, ChartWeatherUsage:
		return DatasetDaily
	default:
		return DatasetHourly
	}
}

// ImageFormat is the encoding of a rendered chart
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatSVG ImageFormat = "svg"
)

func (f ImageFormat) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

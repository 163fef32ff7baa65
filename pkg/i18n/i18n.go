// Package i18n holds the English and Indonesian texts of the dashboard.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Message keys.
const (
	PageTitle    = "page.title"
	SidebarTitle = "sidebar.title"

	FilterHourly = "filter.hourly"
	FilterDaily  = "filter.daily"
	FilterApply  = "filter.apply"
	ExportViews  = "export.views"
	RowsSelected = "rows.selected"

	SectionHourly = "section.hourly"
	SectionDaily  = "section.daily"

	CaptionHourly  = "caption.hourly"
	CaptionDayType = "caption.daytype"
	CaptionDaily   = "caption.daily"

	ChartHourlyTitle      = "chart.hourly.title"
	ChartDayTypeTitle     = "chart.daytype.title"
	ChartTemperatureTitle = "chart.temperature.title"
	ChartWeatherTitle     = "chart.weather.title"

	AxisHour        = "axis.hour"
	AxisRentals     = "axis.rentals"
	AxisDayType     = "axis.daytype"
	AxisTemperature = "axis.temperature"
	AxisWeather     = "axis.weather"

	DayWeekday = "daytype.weekday"
	DayWeekend = "daytype.weekend"

	WeatherClear              = "weather.clear"
	WeatherCloudy             = "weather.cloudy"
	WeatherLightPrecipitation = "weather.light_precipitation"
	WeatherHeavyPrecipitation = "weather.heavy_precipitation"

	NoData            = "chart.no_data"
	ErrDataNotFound   = "error.data_not_found"
	ErrDataLoad       = "error.data_load"
	WarnImageNotFound = "warning.image"
)

var (
	English    = language.English
	Indonesian = language.Indonesian

	// Supported lists the available locales, the first one being the fallback.
	Supported = []language.Tag{English, Indonesian}
)

var texts = map[language.Tag]map[string]string{
	English: {
		PageTitle:    "Bike Sharing Analysis Dashboard",
		SidebarTitle: "Bike Sharing Dashboard",

		FilterHourly: "Filter Date (Hourly Data 2012)",
		FilterDaily:  "Filter Date (Daily Summer 2011)",
		FilterApply:  "Apply",
		ExportViews:  "Download views (xlsx)",
		RowsSelected: "%d rows selected",

		SectionHourly: "Hourly Bike Rentals (2012)",
		SectionDaily:  "Summer 2011 Bike Rentals (Impact of Weather)",

		CaptionHourly:  "This chart shows the average number of bike rentals per hour in 2012, split by working days and weekends.",
		CaptionDayType: "This box plot shows the spread of bike rentals on working days and weekends in 2012.",
		CaptionDaily:   "These charts show the relationship between temperature and bike rentals during summer 2011, and the average rentals per weather condition.",

		ChartHourlyTitle:      "Average Bike Rentals per Hour (2012)",
		ChartDayTypeTitle:     "Bike Rental Distribution on Working Days and Weekends (2012)",
		ChartTemperatureTitle: "Temperature vs. Bike Rentals (Summer 2011)",
		ChartWeatherTitle:     "Average Bike Rentals by Weather Condition (Summer 2011)",

		AxisHour:        "Hour",
		AxisRentals:     "Rentals",
		AxisDayType:     "Day Type",
		AxisTemperature: "Temperature (Celsius)",
		AxisWeather:     "Weather Condition",

		DayWeekday: "Working Day",
		DayWeekend: "Weekend",

		WeatherClear:              "Clear",
		WeatherCloudy:             "Cloudy",
		WeatherLightPrecipitation: "Light Rain",
		WeatherHeavyPrecipitation: "Heavy Rain",

		NoData:            "No data for the selected dates",
		ErrDataNotFound:   "Data files not found. Please ensure '%s' and '%s' are available.",
		ErrDataLoad:       "Error loading data: %s",
		WarnImageNotFound: "Could not load bike image",
	},
	Indonesian: {
		PageTitle:    "Dasbor Analisis Bike Sharing",
		SidebarTitle: "Dasbor Bike Sharing",

		FilterHourly: "Filter Tanggal (Data Per Jam 2012)",
		FilterDaily:  "Filter Tanggal (Data Harian Musim Panas 2011)",
		FilterApply:  "Terapkan",
		ExportViews:  "Unduh tampilan (xlsx)",
		RowsSelected: "%d baris dipilih",

		SectionHourly: "Penyewaan Sepeda Per Jam (2012)",
		SectionDaily:  "Penyewaan Sepeda Musim Panas 2011 (Pengaruh Cuaca)",

		CaptionHourly:  "Visualisasi ini menunjukkan rata-rata jumlah penyewaan sepeda per jam pada tahun 2012, dibedakan berdasarkan hari kerja dan akhir pekan.",
		CaptionDayType: "Box plot ini menunjukkan sebaran penyewaan sepeda pada hari kerja dan akhir pekan pada tahun 2012.",
		CaptionDaily:   "Visualisasi ini menunjukkan hubungan antara suhu dan jumlah penyewaan sepeda selama musim panas tahun 2011, serta rata-rata penyewaan berdasarkan kondisi cuaca.",

		ChartHourlyTitle:      "Rata-rata Penyewaan Sepeda per Jam (2012)",
		ChartDayTypeTitle:     "Distribusi Penyewaan Sepeda pada Hari Kerja dan Akhir Pekan (2012)",
		ChartTemperatureTitle: "Hubungan antara Suhu dan Jumlah Penyewaan (Musim Panas 2011)",
		ChartWeatherTitle:     "Rata-rata Penyewaan Sepeda berdasarkan Kondisi Cuaca (Musim Panas 2011)",

		AxisHour:        "Jam",
		AxisRentals:     "Jumlah Penyewaan",
		AxisDayType:     "Tipe Hari",
		AxisTemperature: "Suhu (Celcius)",
		AxisWeather:     "Kondisi Cuaca",

		DayWeekday: "Hari Kerja",
		DayWeekend: "Akhir Pekan",

		WeatherClear:              "Cerah",
		WeatherCloudy:             "Berawan",
		WeatherLightPrecipitation: "Gerimis",
		WeatherHeavyPrecipitation: "Hujan Lebat",

		NoData:            "Tidak ada data untuk tanggal yang dipilih",
		ErrDataNotFound:   "File data tidak ditemukan. Pastikan '%s' dan '%s' tersedia.",
		ErrDataLoad:       "Gagal memuat data: %s",
		WarnImageNotFound: "Gambar sepeda tidak dapat dimuat",
	},
}

var (
	cat     *catalog.Builder
	matcher = language.NewMatcher(Supported)
)

func init() {
	cat = catalog.NewBuilder(catalog.Fallback(English))
	for tag, msgs := range texts {
		for key, msg := range msgs {
			if err := cat.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: set %s/%s: %v", tag, key, err))
			}
		}
	}
}

// Translator renders messages and numbers for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

func New(tag language.Tag) *Translator {
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// T returns the localized text for key, formatting args into it.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// Number formats n with the locale's digit grouping.
func (t *Translator) Number(n float64, decimals int) string {
	return t.printer.Sprint(number.Decimal(n,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

func (t *Translator) Tag() language.Tag { return t.tag }

// Lang is the short language code, e.g. "en".
func (t *Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

// Match picks a supported locale: the explicit lang parameter first, then the
// Accept-Language header, then fallback.
func Match(lang, acceptLanguage string, fallback language.Tag) language.Tag {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if m, ok := match(tag); ok {
				return m
			}
		}
	}

	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if m, ok := match(tags...); ok {
				return m
			}
		}
	}

	return fallback
}

func match(tags ...language.Tag) (language.Tag, bool) {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.Und, false
	}
	return Supported[idx], true
}

// Parse returns the supported locale named by s, or English.
func Parse(s string) language.Tag {
	return Match(s, "", English)
}

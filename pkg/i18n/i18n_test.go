package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslator_T(t *testing.T) {
	en := New(English)
	id := New(Indonesian)

	assert.Equal(t, "Bike Sharing Analysis Dashboard", en.T(PageTitle))
	assert.Equal(t, "Hari Kerja", id.T(DayWeekday))
	assert.Equal(t, "Akhir Pekan", id.T(DayWeekend))
	assert.Equal(t, "Hujan Lebat", id.T(WeatherHeavyPrecipitation))
	assert.Equal(t, "Jumlah Penyewaan", id.T(AxisRentals))
}

func TestTranslator_Arguments(t *testing.T) {
	en := New(English)

	got := en.T(ErrDataNotFound, "hour_df_2012_cleaned.csv", "day_df_summer_2011_cleaned.csv")
	assert.Equal(t, "Data files not found. Please ensure 'hour_df_2012_cleaned.csv' and 'day_df_summer_2011_cleaned.csv' are available.", got)
}

func TestCatalogsComplete(t *testing.T) {
	for key := range texts[English] {
		_, ok := texts[Indonesian][key]
		assert.True(t, ok, "missing indonesian text for %s", key)
	}
	assert.Len(t, texts[Indonesian], len(texts[English]))
}

func TestTranslator_Number(t *testing.T) {
	assert.Equal(t, "1,234.5", New(English).Number(1234.5, 1))
	assert.Equal(t, "1.234,5", New(Indonesian).Number(1234.5, 1))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		lang   string
		accept string
		want   language.Tag
	}{
		{name: "explicit id", lang: "id", want: Indonesian},
		{name: "explicit en", lang: "en", accept: "id-ID", want: English},
		{name: "accept language", accept: "id-ID,id;q=0.9,en;q=0.8", want: Indonesian},
		{name: "unsupported falls back", lang: "fr", accept: "de", want: English},
		{name: "garbage", lang: "!!", want: English},
		{name: "nothing", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.lang, tt.accept, English))
		})
	}
}

func TestLang(t *testing.T) {
	assert.Equal(t, "id", New(Indonesian).Lang())
	assert.Equal(t, "en", New(English).Lang())
}

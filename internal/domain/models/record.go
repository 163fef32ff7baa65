package models

import (
	"time"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// HourlyRecord is one row of the 2012 hourly rentals table.
type HourlyRecord struct {
	Date    time.Time     `json:"date"`
	Hour    int           `json:"hour"`
	DayType types.DayType `json:"day_type"`
	Count   int           `json:"count"`
}

func (r HourlyRecord) RecordDate() time.Time { return r.Date }

// DailyRecord is one row of the summer 2011 daily rentals table.
type DailyRecord struct {
	Date        time.Time              `json:"date"`
	Temperature float64                `json:"temperature"`
	Weather     types.WeatherCondition `json:"weather"`
	Count       int                    `json:"count"`
}

func (r DailyRecord) RecordDate() time.Time { return r.Date }

// Dated is implemented by every row that carries a calendar date.
type Dated interface {
	RecordDate() time.Time
}

// Dataset holds both tables. It is never mutated after load.
type Dataset struct {
	Hourly []HourlyRecord
	Daily  []DailyRecord

	HourlyBounds DateRange
	DailyBounds  DateRange
}

// NewDataset builds a Dataset and computes the observed date span of each table.
func NewDataset(hourly []HourlyRecord, daily []DailyRecord) *Dataset {
	return &Dataset{
		Hourly:       hourly,
		Daily:        daily,
		HourlyBounds: BoundsOf(hourly),
		DailyBounds:  BoundsOf(daily),
	}
}

// DatasetBounds is the observed min/max date of each table, used to bound the
// date pickers.
type DatasetBounds struct {
	Hourly DateRange `json:"hourly"`
	Daily  DateRange `json:"daily"`
}

func (d *Dataset) Bounds() DatasetBounds {
	return DatasetBounds{Hourly: d.HourlyBounds, Daily: d.DailyBounds}
}

// BoundsOf returns the min and max date found in rows. Empty input yields a
// zero range.
func BoundsOf[T Dated](rows []T) DateRange {
	var r DateRange
	for i, row := range rows {
		d := Day(row.RecordDate())
		if i == 0 || d.Before(r.Start) {
			r.Start = d
		}
		if i == 0 || d.After(r.End) {
			r.End = d
		}
	}
	return r
}

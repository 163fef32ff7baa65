package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// DateLayout is the calendar date format used by the data files, query
// parameters and JSON views.
const DateLayout = time.DateOnly

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// Day truncates t to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidDate, s)
	}
	return t, nil
}

// Inverted reports whether the start lies after the end. Inverted ranges
// contain no dates.
func (r DateRange) Inverted() bool {
	return Day(r.Start).After(Day(r.End))
}

// Contains reports whether the calendar date of t lies within the range, both
// bounds inclusive.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(Day(r.Start)) && !d.After(Day(r.End))
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

type dateRangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateRangeJSON{
		Start: r.Start.Format(DateLayout),
		End:   r.End.Format(DateLayout),
	})
}

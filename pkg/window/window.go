// Package window turns a named period into a concrete date range. All
// arithmetic is relative to a caller-supplied reference instant so range
// derivation stays deterministic under test.
package window

import (
	"fmt"
	"time"

	"irricore/entities"
)

type Period string

const (
	Today  Period = "today"
	Week   Period = "week"
	Month  Period = "month"
	Custom Period = "custom"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Today, Week, Month, Custom:
		return Period(s), nil
	}
	return "", &entities.ValidationError{Msg: "unknown period: " + s}
}

// Range is an inclusive pair of calendar dates.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

const dayFormat = "2006-01-02"

// Contains reports whether t falls on a calendar day inside the range,
// evaluated in loc.
func (r Range) Contains(t time.Time, loc *time.Location) bool {
	day := t.In(loc).Format(dayFormat)
	return day >= r.Start.In(loc).Format(dayFormat) && day <= r.End.In(loc).Format(dayFormat)
}

// Resolve derives the range for a named period. Custom ranges are supplied
// by the caller, never computed here, so passing Custom is an error.
func Resolve(p Period, today time.Time) (Range, error) {
	var r Range
	switch p {
	case Today:
		r = Range{Start: dayStart(today), End: today}
	case Week:
		r = Range{Start: today.AddDate(0, 0, -7), End: today}
	case Month:
		r = Range{Start: monthBack(today), End: today}
	case Custom:
		return Range{}, &entities.ValidationError{Msg: "custom window requires an explicit range"}
	default:
		return Range{}, &entities.ValidationError{Msg: "unknown period: " + string(p)}
	}
	if r.Start.After(r.End) {
		panic(fmt.Sprintf("window: resolved start %s after end %s", r.Start, r.End))
	}
	return r, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// monthBack steps one month back keeping the day-of-month, clamped to the
// target month's last day so Mar 31 maps to Feb 28 (29 in leap years)
// rather than overflowing into March.
func monthBack(t time.Time) time.Time {
	y, m, d := t.Date()
	firstOfPrev := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)
	py, pm, _ := firstOfPrev.Date()
	last := time.Date(py, pm+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(py, pm, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// Package calendar buckets schedules by calendar day for day-by-day
// navigation.
package calendar

import (
	"time"

	"irricore/entities"
)

const DayFormat = "2006-01-02"

// DayKey formats the bucket key for an instant in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayFormat)
}

// GroupByDate partitions schedules by the local calendar day of their date.
// Within a bucket the input order is preserved; callers wanting time-of-day
// order pre-sort.
func GroupByDate(schedules []*entities.WateringSchedule, loc *time.Location) map[string][]*entities.WateringSchedule {
	buckets := make(map[string][]*entities.WateringSchedule)
	for _, s := range schedules {
		key := DayKey(s.Date, loc)
		buckets[key] = append(buckets[key], s)
	}
	return buckets
}

// Bucket returns the schedules for a day key, or an empty slice when the day
// has none. Never an error.
func Bucket(buckets map[string][]*entities.WateringSchedule, key string) []*entities.WateringSchedule {
	if b, ok := buckets[key]; ok {
		return b
	}
	return []*entities.WateringSchedule{}
}

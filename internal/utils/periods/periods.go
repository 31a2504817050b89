// Package periods centralizes the calendar arithmetic used by the dashboard
// aggregations. All windows are computed from wall-clock "now" at call time;
// nothing is cached.
package periods

import "time"

// MonthKeyLayout is the bucket key format for the monthly evolution series.
const MonthKeyLayout = "2006-01"

// CurrentMonth returns the inclusive [first day, last day] window of the
// month containing now, in now's location.
func CurrentMonth(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// TrailingWindowStart returns the first calendar day of the month that lies
// `months` months before the month containing now. Day-of-month is irrelevant
// to the window; time.Date normalizes the month offset.
func TrailingWindowStart(now time.Time, months int) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(months), 1, 0, 0, 0, 0, now.Location())
}

// MonthKey returns the "YYYY-MM" bucket key for a transaction date.
func MonthKey(date time.Time) string {
	return date.Format(MonthKeyLayout)
}

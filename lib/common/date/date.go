package date

import "time"

// Date creates a civil date in UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns today's civil date.
func Today() time.Time {
	now := time.Now().Local()
	return Date(now.Year(), now.Month(), now.Day())
}

// StartOfMonth returns the first day of the month containing d.
func StartOfMonth(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), 1)
}

// IsMonthEnd reports whether the next calendar day starts a new month.
func IsMonthEnd(d time.Time) bool {
	return d.AddDate(0, 0, 1).Day() == 1
}

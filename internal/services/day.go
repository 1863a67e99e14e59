package services

import (
	"fmt"
	"time"
)

// Day boundaries are computed in UTC everywhere: a record belongs to the
// UTC calendar day of its creation timestamp, regardless of server locale.

// dayWindow returns the half-open UTC interval [start, start+24h)
// containing t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// monthWindow returns the half-open UTC interval covering the given month.
func monthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// daysInMonth returns the number of calendar days in the given month,
// accounting for leap years.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dayKey formats a day as "d-m-yyyy", the key shape of the month view.
func dayKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%d-%d-%d", u.Day(), int(u.Month()), u.Year())
}

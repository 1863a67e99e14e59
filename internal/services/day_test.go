package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow_UTCBoundaries(t *testing.T) {
	// 23:59 UTC belongs to the same day; 00:00 next day does not.
	almostMidnight := time.Date(2025, 6, 3, 23, 59, 59, 0, time.UTC)
	start, end := dayWindow(almostMidnight)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), end)

	// A non-UTC timestamp is bucketed by its UTC day, not the local one.
	tz := time.FixedZone("UTC+5", 5*3600)
	early := time.Date(2025, 6, 4, 2, 0, 0, 0, tz) // 2025-06-03T21:00Z
	start, _ = dayWindow(early)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), start)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, daysInMonth(2024, time.February))
	assert.Equal(t, 28, daysInMonth(2023, time.February))
	assert.Equal(t, 31, daysInMonth(2025, time.January))
	assert.Equal(t, 30, daysInMonth(2025, time.April))
}

func TestMonthWindow_HalfOpen(t *testing.T) {
	from, to := monthWindow(2024, time.February)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestDayKey_Format(t *testing.T) {
	assert.Equal(t, "3-9-2025", dayKey(time.Date(2025, 9, 3, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "29-2-2024", dayKey(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
}

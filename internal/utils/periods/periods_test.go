package periods

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)
	first, last := CurrentMonth(now)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestCurrentMonthFebruaryLeapYear(t *testing.T) {
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	_, last := CurrentMonth(now)

	assert.Equal(t, 29, last.Day())
}

func TestTrailingWindowStart(t *testing.T) {
	now := time.Date(2024, time.March, 31, 10, 0, 0, 0, time.UTC)

	// Day-of-month must not leak into the boundary.
	assert.Equal(t,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		TrailingWindowStart(now, 2))

	// Crossing a year boundary.
	assert.Equal(t,
		time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC),
		TrailingWindowStart(now, 6))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-02", MonthKey(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
}

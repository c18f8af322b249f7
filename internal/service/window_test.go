package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindowBounds(t *testing.T) {
	first, last := NewMonthWindow(2026, time.February).Bounds()
	assert.Equal(t, day(2026, time.February, 1), first)
	assert.Equal(t, day(2026, time.February, 28), last)

	first, last = NewMonthWindow(2024, time.February).Bounds()
	assert.Equal(t, day(2024, time.February, 1), first)
	assert.Equal(t, day(2024, time.February, 29), last)

	first, last = NewMonthWindow(2026, time.December).Bounds()
	assert.Equal(t, day(2026, time.December, 1), first)
	assert.Equal(t, day(2026, time.December, 31), last)
}

func TestMonthWindowContains(t *testing.T) {
	window := NewMonthWindow(2026, time.August)
	assert.True(t, window.Contains(day(2026, time.August, 1)))
	assert.True(t, window.Contains(day(2026, time.August, 31)))
	assert.False(t, window.Contains(day(2026, time.July, 31)))
	assert.False(t, window.Contains(day(2026, time.September, 1)))
	assert.False(t, window.Contains(day(2025, time.August, 15)))
}

func TestMonthWindowString(t *testing.T) {
	assert.Equal(t, "2026-08", NewMonthWindow(2026, time.August).String())
	assert.Equal(t, "2026-12", NewMonthWindow(2026, time.December).String())
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"월요일은 그대로", day(2026, time.August, 10), day(2026, time.August, 10)},
		{"금요일은 같은 주 월요일로", day(2026, time.August, 14), day(2026, time.August, 10)},
		{"일요일은 지난 월요일로", day(2026, time.August, 16), day(2026, time.August, 10)},
		{"월 경계를 넘는다", day(2026, time.September, 2), day(2026, time.August, 31)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, weekStart(tc.now))
		})
	}
}

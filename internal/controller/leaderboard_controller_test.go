package controller

import (
	"testing"
	"time"

	"bible_challenge_backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthWindow(t *testing.T) {
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)

	window, err := parseMonthWindow("", "", now)
	require.NoError(t, err)
	assert.Equal(t, service.NewMonthWindow(2026, time.August), window)

	// 월만 넘겨도 같은 해 안에서 달 이동이 된다
	window, err = parseMonthWindow("", "7", now)
	require.NoError(t, err)
	assert.Equal(t, service.NewMonthWindow(2026, time.July), window)

	window, err = parseMonthWindow("2025", "", now)
	require.NoError(t, err)
	assert.Equal(t, service.NewMonthWindow(2025, time.August), window)

	window, err = parseMonthWindow("2025", "12", now)
	require.NoError(t, err)
	assert.Equal(t, service.NewMonthWindow(2025, time.December), window)
}

func TestParseMonthWindowRejectsBadValues(t *testing.T) {
	now := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.Local)

	_, err := parseMonthWindow("next-year", "", now)
	assert.Error(t, err)

	_, err = parseMonthWindow("", "0", now)
	assert.Error(t, err)

	_, err = parseMonthWindow("", "13", now)
	assert.Error(t, err)

	_, err = parseMonthWindow("", "july", now)
	assert.Error(t, err)
}

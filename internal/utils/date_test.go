package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCurrentDay(t *testing.T) {
	ts := time.Date(2025, 6, 2, 17, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), StartCurrentDay(ts))
}

func TestStartNextDay(t *testing.T) {
	ts := time.Date(2025, 6, 30, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), StartNextDay(ts))
}

func TestYearsInRange(t *testing.T) {
	from := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []int{2024, 2025, 2026}, YearsInRange(from, to))

	sameYear := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []int{2025}, YearsInRange(sameYear, sameYear))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 2, parsed.Day())

	parsed, err = ParseDate("2025-06-02T09:30:00")
	require.NoError(t, err)
	assert.Equal(t, 9, parsed.Hour())

	_, err = ParseDate("02/06/2025")
	assert.Error(t, err)
}

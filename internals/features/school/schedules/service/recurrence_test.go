package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func collect(from, toEx time.Time, wd int, keep func(time.Time) bool) []time.Time {
	var out []time.Time
	for d := range WeekdayOccurrences(from, toEx, wd, keep) {
		out = append(out, d)
	}
	return out
}

func TestISOWeekday(t *testing.T) {
	// 2024-09-02 adalah Senin
	assert.Equal(t, 1, ISOWeekday(date(2024, 9, 2)))
	assert.Equal(t, 3, ISOWeekday(date(2024, 9, 4)))
	assert.Equal(t, 6, ISOWeekday(date(2024, 9, 7)))
	assert.Equal(t, 7, ISOWeekday(date(2024, 9, 8)), "Minggu = 7, bukan 0")
}

func TestWeekdayOccurrences_Basic(t *testing.T) {
	// Rabu di [Sen 2024-09-02, Sab 2024-09-14)
	got := collect(date(2024, 9, 2), date(2024, 9, 14), 3, nil)
	require.Equal(t, []time.Time{date(2024, 9, 4), date(2024, 9, 11)}, got)
}

func TestWeekdayOccurrences_FromIsTheWeekday(t *testing.T) {
	// from sendiri jatuh di weekday yang diminta → ikut
	got := collect(date(2024, 9, 2), date(2024, 9, 16), 1, nil)
	require.Equal(t, []time.Time{date(2024, 9, 2), date(2024, 9, 9)}, got)
}

func TestWeekdayOccurrences_ExclusiveEnd(t *testing.T) {
	// batas atas eksklusif: 2024-09-16 (Senin) tidak ikut
	got := collect(date(2024, 9, 2), date(2024, 9, 16), 1, nil)
	for _, d := range got {
		assert.True(t, d.Before(date(2024, 9, 16)))
	}
}

func TestWeekdayOccurrences_EmptyWindow(t *testing.T) {
	assert.Empty(t, collect(date(2024, 9, 2), date(2024, 9, 2), 1, nil))
	// jendela 3 hari tanpa Minggu
	assert.Empty(t, collect(date(2024, 9, 2), date(2024, 9, 5), 7, nil))
}

func TestWeekdayOccurrences_Stride(t *testing.T) {
	got := collect(date(2024, 9, 1), date(2024, 12, 1), 5, nil)
	require.NotEmpty(t, got)
	for i, d := range got {
		assert.Equal(t, 5, ISOWeekday(d))
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, d.Sub(got[i-1]), "interval tepat 7 hari")
		}
	}
}

func TestWeekdayOccurrences_Predicate(t *testing.T) {
	skip := date(2024, 9, 4)
	got := collect(date(2024, 9, 2), date(2024, 9, 14), 3, func(d time.Time) bool {
		return !d.Equal(skip)
	})
	require.Equal(t, []time.Time{date(2024, 9, 11)}, got)
}

// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package itinerary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyletran/atlastrip/internal/trips/itinerary"
)

// scheduled is a minimal Entry for grouping tests.
type scheduled struct {
	day   int
	time  string
	label string
}

func (s scheduled) DayNumber() int    { return s.day }
func (s scheduled) ClockTime() string { return s.time }

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(itinerary.DateLayout, value)
	require.NoError(t, err)
	return parsed
}

/*
TestGroupByDay verifies day bucketing, intra-day time ordering, and
ascending day order regardless of insertion order.
*/
func TestGroupByDay(t *testing.T) {
	entries := []scheduled{
		{day: 2, time: "14:00", label: "Museum"},
		{day: 1, time: "09:00", label: "Breakfast"},
		{day: 2, time: "09:30", label: "Market"},
		{day: 1, time: "19:00", label: "Dinner"},
	}

	groups := itinerary.GroupByDay(entries)
	require.Len(t, groups, 2)

	assert.Equal(t, 1, groups[0].Day)
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Breakfast", groups[0].Entries[0].label)
	assert.Equal(t, "Dinner", groups[0].Entries[1].label)

	assert.Equal(t, 2, groups[1].Day)
	require.Len(t, groups[1].Entries, 2)
	assert.Equal(t, "Market", groups[1].Entries[0].label)
	assert.Equal(t, "Museum", groups[1].Entries[1].label)
}

/*
TestGroupByDay_Deterministic verifies regrouping the same slice yields an
identical result and leaves the source untouched.
*/
func TestGroupByDay_Deterministic(t *testing.T) {
	entries := []scheduled{
		{day: 3, time: "10:00", label: "c"},
		{day: 1, time: "08:00", label: "a"},
		{day: 1, time: "08:00", label: "b"},
	}

	first := itinerary.GroupByDay(entries)
	second := itinerary.GroupByDay(entries)
	assert.Equal(t, first, second)

	// Equal-time entries keep their relative order (stable sort).
	assert.Equal(t, "a", first[0].Entries[0].label)
	assert.Equal(t, "b", first[0].Entries[1].label)
}

func TestGroupByDay_Empty(t *testing.T) {
	groups := itinerary.GroupByDay([]scheduled{})
	assert.Empty(t, groups)
}

/*
TestGroupByDay_SparseDays checks that days without activities simply do not
appear; no empty buckets are fabricated.
*/
func TestGroupByDay_SparseDays(t *testing.T) {
	entries := []scheduled{
		{day: 5, time: "12:00", label: "only"},
		{day: 1, time: "12:00", label: "first"},
	}

	groups := itinerary.GroupByDay(entries)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Day)
	assert.Equal(t, 5, groups[1].Day)
}

/*
TestDayDate verifies calendar arithmetic including a month boundary.
*/
func TestDayDate(t *testing.T) {
	start := mustDate(t, "2025-06-01")

	assert.Equal(t, "2025-06-01", itinerary.DayDate(start, 1).Format(itinerary.DateLayout))
	assert.Equal(t, "2025-06-03", itinerary.DayDate(start, 3).Format(itinerary.DateLayout))

	endOfMonth := mustDate(t, "2025-06-30")
	assert.Equal(t, "2025-07-01", itinerary.DayDate(endOfMonth, 2).Format(itinerary.DateLayout))
}

/*
TestDurationDays covers inclusive counting and the single-day floor.
*/
func TestDurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"three_days", "2025-06-01", "2025-06-03", 3},
		{"single_day", "2025-06-01", "2025-06-01", 1},
		{"two_days", "2025-12-31", "2026-01-01", 2},
		{"full_week", "2025-06-02", "2025-06-08", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := itinerary.DurationDays(mustDate(t, tt.start), mustDate(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestFormatTime covers the 12-hour conversion matrix including both noon
edge cases.
*/
func TestFormatTime(t *testing.T) {
	tests := []struct {
		clock string
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:00", "9:00 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"14:00", "2:00 PM"},
		{"23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			assert.Equal(t, tt.want, itinerary.FormatTime(tt.clock))
		})
	}
}

func TestFormatTime_Unparseable(t *testing.T) {
	// Garbage input is passed through rather than panicking mid-render.
	assert.Equal(t, "not-a-time", itinerary.FormatTime("not-a-time"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Monday, June 2, 2025", itinerary.FormatDate(mustDate(t, "2025-06-02")))
	assert.Equal(t, "Sunday, June 1, 2025", itinerary.FormatDate(mustDate(t, "2025-06-01")))
}

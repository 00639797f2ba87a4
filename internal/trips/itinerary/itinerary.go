// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

/*
Package itinerary contains the pure data-shaping logic for trip schedules.

It groups flat activity lists into ordered calendar days, derives per-day
dates from the trip start, and computes presentation formats. Everything in
this package is deterministic and stateless: the same inputs always produce
the same output, and nothing here touches storage or the network.
*/
package itinerary

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the ISO calendar date format used across the trip domain.
const DateLayout = "2006-01-02"

// dateLabelLayout is the long-form presentation format for itinerary days.
const dateLabelLayout = "Monday, January 2, 2006"

// Entry is any schedulable item that sits on a 1-based trip day at a
// zero-padded "HH:MM" wall-clock time.
type Entry interface {
	DayNumber() int
	ClockTime() string
}

// DayGroup is one day's worth of entries, ordered by time.
type DayGroup[T Entry] struct {
	Day     int
	Entries []T
}

// GroupByDay partitions entries into day buckets, orders entries within a
// bucket by wall-clock time, and returns the buckets in ascending day order.
//
// Zero-padded "HH:MM" strings compare lexicographically in chronological
// order, so no time parsing is needed here. The input slice is never
// mutated; calling GroupByDay twice over the same data yields identical
// results.
func GroupByDay[T Entry](entries []T) []DayGroup[T] {
	buckets := make(map[int][]T)
	for _, entry := range entries {
		day := entry.DayNumber()
		buckets[day] = append(buckets[day], entry)
	}

	days := make([]int, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Ints(days)

	groups := make([]DayGroup[T], 0, len(days))
	for _, day := range days {
		entries := buckets[day]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ClockTime() < entries[j].ClockTime()
		})
		groups = append(groups, DayGroup[T]{Day: day, Entries: entries})
	}

	return groups
}

// DayDate returns the calendar date of the given 1-based trip day.
// Day 1 is the start date itself. AddDate handles month and DST boundaries.
func DayDate(start time.Time, day int) time.Time {
	return start.AddDate(0, 0, day-1)
}

// DurationDays returns the inclusive number of calendar days a trip spans.
// A trip that starts and ends on the same date lasts 1 day.
func DurationDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// FormatTime converts a zero-padded 24-hour "HH:MM" into a 12-hour label
// ("09:00" → "9:00 AM", "14:05" → "2:05 PM"). Midnight is "12:00 AM" and
// noon is "12:00 PM". Input that does not parse is returned unchanged.
func FormatTime(clock string) string {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return fmt.Sprintf("%d:%02d %s",
		hour12(parsed.Hour()),
		parsed.Minute(),
		meridiem(parsed.Hour()),
	)
}

// FormatDate renders a calendar date in the long itinerary form,
// e.g. "Monday, June 2, 2025".
func FormatDate(t time.Time) string {
	return t.Format(dateLabelLayout)
}

func hour12(hour24 int) int {
	h := hour24 % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridiem(hour24 int) string {
	if hour24 < 12 {
		return "AM"
	}
	return "PM"
}

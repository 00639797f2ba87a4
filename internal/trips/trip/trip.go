// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

/*
Package trip implements the trip planning domain: trips, their day-by-day
activities, and the owner-scoped operations over them.

# Architecture

The package follows the layered layout used across the codebase:

  - Entity: Trip and Activity with their invariants.
  - Service: Validation, ownership enforcement, itinerary composition.
  - Repository: Owner-predicated PostgreSQL access.
  - HTTP: Thin JSON transport.

# Ownership Model

A trip is owned by exactly one user. Every repository lookup carries the
owner id in its WHERE clause, so a non-owned trip is indistinguishable from
a non-existent one. Both come back as NOT_FOUND.
*/
package trip

import (
	"time"

	"github.com/vyletran/atlastrip/internal/enrichment"
)

// # Domain Entities

// Trip represents a planned journey to a single destination.
//
// StartDate and EndDate are ISO calendar dates ("2006-01-02"); the trip
// spans both endpoints inclusively.
type Trip struct {
	ID          string      `json:"id"`
	UserID      string      `json:"-"` // Owner id never leaves the API.
	Destination string      `json:"destination"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Activities  []*Activity `json:"activities"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Activity is a single itinerary item belonging to one trip.
//
// Day is a 1-based offset from the trip start date. Time is a zero-padded
// 24-hour wall clock ("09:00", "14:30"); the zero padding is what makes
// lexicographic ordering equal chronological ordering.
type Activity struct {
	ID          string    `json:"id"`
	TripID      string    `json:"-"`
	Day         int       `json:"day"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DayNumber returns the activity's 1-based day offset.
func (activity *Activity) DayNumber() int { return activity.Day }

// ClockTime returns the activity's zero-padded "HH:MM" wall clock.
func (activity *Activity) ClockTime() string { return activity.Time }

// # View Models

// Detail is the decorated read model for a single trip: the raw entity plus
// the aggregated itinerary and best-effort enrichment data.
type Detail struct {
	*Trip
	DurationDays int                         `json:"duration_days"`
	Itinerary    []ItineraryDay              `json:"itinerary"`
	ImageURL     *string                     `json:"image_url,omitempty"`
	Weather      *enrichment.WeatherSnapshot `json:"weather,omitempty"`
}

// ItineraryDay is one calendar day of the itinerary view.
type ItineraryDay struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	DateLabel  string          `json:"date_label"`
	Activities []*ActivityView `json:"activities"`
}

// ActivityView wraps an activity with its presentation-ready 12-hour time.
type ActivityView struct {
	*Activity
	TimeLabel string `json:"time_label"`
}

// # Inputs

// CreateActivityInput holds one activity of a trip creation request.
type CreateActivityInput struct {
	Day         int    `json:"day"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// CreateTripInput holds the data required to create a trip with its activities.
type CreateTripInput struct {
	Destination string                `json:"destination"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	Activities  []CreateActivityInput `json:"activities"`
}

// # Field Identifiers

// Global field names for validation in the trip domain.
const (
	FieldDestination = "destination"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldDay         = "day"
	FieldTime        = "time"
	FieldDescription = "description"
	FieldTripID      = "trip_id"
)

// # Domain Constraints

const (
	// DestinationMaxLength bounds the free-text destination.
	DestinationMaxLength = 100

	// DescriptionMaxLength bounds an activity description.
	DescriptionMaxLength = 200
)

// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package trip_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyletran/atlastrip/internal/enrichment"
	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/trips/trip"
	"github.com/vyletran/atlastrip/pkg/pointer"
)

// # In-Memory Fakes

// memoryRepository is an in-memory trip Repository honoring the owner
// predicate the same way the SQL implementation does.
type memoryRepository struct {
	trips []*trip.Trip
}

func (repo *memoryRepository) Create(_ context.Context, t *trip.Trip) error {
	// Newest-first list order: prepend.
	repo.trips = append([]*trip.Trip{t}, repo.trips...)
	return nil
}

func (repo *memoryRepository) ListByOwner(_ context.Context, userID string) ([]*trip.Trip, error) {
	owned := []*trip.Trip{}
	for _, t := range repo.trips {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (repo *memoryRepository) FindByID(_ context.Context, tripID, userID string) (*trip.Trip, error) {
	for _, t := range repo.trips {
		if t.ID == tripID && t.UserID == userID {
			return t, nil
		}
	}
	return nil, apperr.NotFound("Trip")
}

func (repo *memoryRepository) FindShared(_ context.Context, tripID string) (*trip.Trip, error) {
	for _, t := range repo.trips {
		if t.ID == tripID {
			return t, nil
		}
	}
	return nil, apperr.NotFound("Trip")
}

func (repo *memoryRepository) Delete(_ context.Context, tripID, userID string) error {
	for index, t := range repo.trips {
		if t.ID == tripID && t.UserID == userID {
			repo.trips = append(repo.trips[:index], repo.trips[index+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Trip")
}

// stubEnricher returns fixed enrichment values, nil by default.
type stubEnricher struct {
	imageURL *string
	weather  *enrichment.WeatherSnapshot
}

func (stub *stubEnricher) ResolveImage(context.Context, string) *string {
	return stub.imageURL
}

func (stub *stubEnricher) ResolveWeather(context.Context, string) *enrichment.WeatherSnapshot {
	return stub.weather
}

func newTestService() (*trip.Service, *memoryRepository, *stubEnricher) {
	repo := &memoryRepository{}
	enricher := &stubEnricher{}
	return trip.NewService(repo, enricher), repo, enricher
}

const (
	ownerID    = "0192aaaa-0000-7000-8000-0000000000aa"
	strangerID = "0192bbbb-0000-7000-8000-0000000000bb"
)

// # Access Guard

func TestAuthorizeOwnership(t *testing.T) {
	assert.NoError(t, trip.AuthorizeOwnership(ownerID, ownerID))

	err := trip.AuthorizeOwnership(ownerID, strangerID)
	require.Error(t, err)

	// Mismatch reads as NOT_FOUND, never FORBIDDEN.
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

// # Creation

func TestService_Create(t *testing.T) {
	service, repo, _ := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, ownerID, trip.CreateTripInput{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		Activities: []trip.CreateActivityInput{
			{Day: 2, Time: "14:00", Description: "Museum"},
			{Day: 1, Time: "09:00", Description: "Breakfast"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, ownerID, created.UserID)
	require.Len(t, created.Activities, 2)
	for _, activity := range created.Activities {
		assert.NotEmpty(t, activity.ID)
	}

	require.Len(t, repo.trips, 1)
}

/*
TestService_Create_Validation drives the rejection matrix: missing and
oversized fields, malformed dates and times, inverted ranges, and activity
days outside the trip span.
*/
func TestService_Create_Validation(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	valid := func() trip.CreateTripInput {
		return trip.CreateTripInput{
			Destination: "Paris",
			StartDate:   "2025-06-01",
			EndDate:     "2025-06-03",
			Activities: []trip.CreateActivityInput{
				{Day: 1, Time: "09:00", Description: "Breakfast"},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*trip.CreateTripInput)
	}{
		{"missing_destination", func(in *trip.CreateTripInput) { in.Destination = "  " }},
		{"destination_too_long", func(in *trip.CreateTripInput) { in.Destination = strings.Repeat("x", 101) }},
		{"missing_start_date", func(in *trip.CreateTripInput) { in.StartDate = "" }},
		{"malformed_start_date", func(in *trip.CreateTripInput) { in.StartDate = "06/01/2025" }},
		{"end_before_start", func(in *trip.CreateTripInput) { in.EndDate = "2025-05-31" }},
		{"activity_day_zero", func(in *trip.CreateTripInput) { in.Activities[0].Day = 0 }},
		{"activity_day_past_end", func(in *trip.CreateTripInput) { in.Activities[0].Day = 4 }},
		{"activity_time_unpadded", func(in *trip.CreateTripInput) { in.Activities[0].Time = "9:00" }},
		{"activity_time_invalid", func(in *trip.CreateTripInput) { in.Activities[0].Time = "24:00" }},
		{"activity_description_missing", func(in *trip.CreateTripInput) { in.Activities[0].Description = "" }},
		{"activity_description_too_long", func(in *trip.CreateTripInput) {
			in.Activities[0].Description = strings.Repeat("x", 201)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(&input)

			_, err := service.Create(ctx, ownerID, input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

func TestService_Create_SingleDayTrip(t *testing.T) {
	service, _, _ := newTestService()

	// A same-day trip spans 1 day, so day 1 is valid and day 2 is not.
	created, err := service.Create(context.Background(), ownerID, trip.CreateTripInput{
		Destination: "Kyoto",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-01",
		Activities:  []trip.CreateActivityInput{{Day: 1, Time: "10:00", Description: "Temple"}},
	})
	require.NoError(t, err)
	assert.Len(t, created.Activities, 1)

	_, err = service.Create(context.Background(), ownerID, trip.CreateTripInput{
		Destination: "Kyoto",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-01",
		Activities:  []trip.CreateActivityInput{{Day: 2, Time: "10:00", Description: "Temple"}},
	})
	require.Error(t, err)
}

// # Reading & Ownership

func seedTrip(t *testing.T, service *trip.Service, userID string) *trip.Trip {
	t.Helper()
	created, err := service.Create(context.Background(), userID, trip.CreateTripInput{
		Destination: "Paris",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		Activities: []trip.CreateActivityInput{
			{Day: 2, Time: "14:00", Description: "Museum"},
			{Day: 1, Time: "09:00", Description: "Breakfast"},
		},
	})
	require.NoError(t, err)
	return created
}

func TestService_List_OwnerScoped(t *testing.T) {
	service, _, _ := newTestService()
	seedTrip(t, service, ownerID)
	seedTrip(t, service, strangerID)

	mine, err := service.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ownerID, mine[0].UserID)

	none, err := service.List(context.Background(), "0192cccc-0000-7000-8000-0000000000cc")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_List_NewestFirst(t *testing.T) {
	service, _, _ := newTestService()
	first := seedTrip(t, service, ownerID)
	second := seedTrip(t, service, ownerID)

	trips, err := service.List(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, second.ID, trips[0].ID)
	assert.Equal(t, first.ID, trips[1].ID)
}

/*
TestService_Get_Detail is the end-to-end itinerary check: activities come
back grouped by day, ordered by time, with derived dates and 12-hour labels.
*/
func TestService_Get_Detail(t *testing.T) {
	service, _, _ := newTestService()
	created := seedTrip(t, service, ownerID)

	detail, err := service.Get(context.Background(), ownerID, created.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, detail.DurationDays)
	require.Len(t, detail.Itinerary, 2)

	dayOne := detail.Itinerary[0]
	assert.Equal(t, 1, dayOne.Day)
	assert.Equal(t, "2025-06-01", dayOne.Date)
	assert.Equal(t, "Sunday, June 1, 2025", dayOne.DateLabel)
	require.Len(t, dayOne.Activities, 1)
	assert.Equal(t, "Breakfast", dayOne.Activities[0].Description)
	assert.Equal(t, "9:00 AM", dayOne.Activities[0].TimeLabel)

	dayTwo := detail.Itinerary[1]
	assert.Equal(t, 2, dayTwo.Day)
	assert.Equal(t, "2025-06-02", dayTwo.Date)
	require.Len(t, dayTwo.Activities, 1)
	assert.Equal(t, "Museum", dayTwo.Activities[0].Description)
	assert.Equal(t, "2:00 PM", dayTwo.Activities[0].TimeLabel)

	// Enrichment was unavailable; the view degrades without it.
	assert.Nil(t, detail.ImageURL)
	assert.Nil(t, detail.Weather)
}

func TestService_Get_Enriched(t *testing.T) {
	service, _, enricher := newTestService()
	created := seedTrip(t, service, ownerID)

	enricher.imageURL = pointer.To("https://images.example/paris.jpg")
	enricher.weather = &enrichment.WeatherSnapshot{Temperature: 22, Condition: "Clear sky", Icon: "sun"}

	detail, err := service.Get(context.Background(), ownerID, created.ID)
	require.NoError(t, err)

	require.NotNil(t, detail.ImageURL)
	assert.Equal(t, "https://images.example/paris.jpg", *detail.ImageURL)
	require.NotNil(t, detail.Weather)
	assert.Equal(t, "Clear sky", detail.Weather.Condition)
}

func TestService_Get_NotOwned(t *testing.T) {
	service, _, _ := newTestService()
	created := seedTrip(t, service, ownerID)

	// A foreign trip id reads as absent, not forbidden.
	_, err := service.Get(context.Background(), strangerID, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.Get(context.Background(), ownerID, "0192ffff-0000-7000-8000-00000000ffff")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

// # Sharing

func TestService_GetShared(t *testing.T) {
	service, _, _ := newTestService()
	created := seedTrip(t, service, ownerID)

	// The share view needs no owner; any holder of the id can read it.
	detail, err := service.GetShared(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris", detail.Destination)
	assert.Len(t, detail.Itinerary, 2)

	_, err = service.GetShared(context.Background(), "0192ffff-0000-7000-8000-00000000ffff")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

// # Deletion

func TestService_Delete(t *testing.T) {
	service, repo, _ := newTestService()
	created := seedTrip(t, service, ownerID)

	// A stranger cannot delete it, and learns nothing from trying.
	err := service.Delete(context.Background(), strangerID, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	require.Len(t, repo.trips, 1)

	// The owner can.
	require.NoError(t, service.Delete(context.Background(), ownerID, created.ID))
	assert.Empty(t, repo.trips)

	// Deleting again reports absence.
	err = service.Delete(context.Background(), ownerID, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

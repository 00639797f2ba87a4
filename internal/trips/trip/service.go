// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package trip

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vyletran/atlastrip/internal/enrichment"
	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/platform/validate"
	"github.com/vyletran/atlastrip/internal/trips/itinerary"
	"github.com/vyletran/atlastrip/pkg/uuid"
)

// # Contracts & Types

// Enricher decorates trip views with best-effort external data. Both
// methods return nil when the data cannot be resolved; they never error.
type Enricher interface {
	ResolveImage(context context.Context, destination string) *string
	ResolveWeather(context context.Context, place string) *enrichment.WeatherSnapshot
}

// Service implements the trip planning use cases.
type Service struct {
	repository Repository
	enricher   Enricher
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(repository Repository, enricher Enricher) *Service {
	return &Service{
		repository: repository,
		enricher:   enricher,
	}
}

// # Access Guard

/*
AuthorizeOwnership decides whether the acting user may touch a resource.

Description: The ownership predicate behind every trip operation. Repository
queries already filter by owner; this is the explicit, unit-testable form of
the same rule. A mismatch reports NotFound, never Forbidden, so probing a
foreign trip id is indistinguishable from probing a random one.

Parameters:
  - resourceOwnerID: string
  - userID: string

Returns:
  - error: apperr.NotFound on mismatch, nil when allowed
*/
func AuthorizeOwnership(resourceOwnerID, userID string) error {
	if resourceOwnerID != userID {
		return apperr.NotFound("Trip")
	}
	return nil
}

// # Trip Creation

/*
Create validates and persists a new trip together with its activities.

Description: Validates the trip fields and every activity, then hands the
assembled aggregate to the repository for an atomic insert. Activity days
are checked against the actual trip duration so an itinerary can never
reference a day outside the trip.

Parameters:
  - context: context.Context
  - userID: string (owner)
  - input: CreateTripInput

Returns:
  - *Trip: Created aggregate with generated ids
  - error: ValidationError or storage failures
*/
func (service *Service) Create(context context.Context, userID string, input CreateTripInput) (*Trip, error) {

	destination := strings.TrimSpace(input.Destination)

	validator := &validate.Validator{}
	validator.Required(FieldDestination, destination).
		MaxLen(FieldDestination, destination, DestinationMaxLength).
		Required(FieldStartDate, input.StartDate).
		Date(FieldStartDate, input.StartDate).
		Required(FieldEndDate, input.EndDate).
		Date(FieldEndDate, input.EndDate)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(itinerary.DateLayout, input.StartDate)
	if err != nil {
		return nil, validate.RequiredError(FieldStartDate, "must be a valid date")
	}
	endDate, err := time.Parse(itinerary.DateLayout, input.EndDate)
	if err != nil {
		return nil, validate.RequiredError(FieldEndDate, "must be a valid date")
	}

	if endDate.Before(startDate) {
		return nil, validate.RequiredError(FieldEndDate, "must not be before start_date")
	}

	durationDays := itinerary.DurationDays(startDate, endDate)

	activities := make([]*Activity, 0, len(input.Activities))
	for index, item := range input.Activities {
		if err := validateActivity(index, item, durationDays); err != nil {
			return nil, err
		}
		activities = append(activities, &Activity{
			ID:          uuid.New(),
			Day:         item.Day,
			Time:        item.Time,
			Description: strings.TrimSpace(item.Description),
		})
	}

	trip := &Trip{
		ID:          uuid.New(),
		UserID:      userID,
		Destination: destination,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Activities:  activities,
	}

	if err := service.repository.Create(context, trip); err != nil {
		return nil, fmt.Errorf("trip_service_create_failed: %w", err)
	}

	return trip, nil
}

// validateActivity checks a single activity of a creation request.
func validateActivity(index int, input CreateActivityInput, durationDays int) error {
	field := func(name string) string {
		return fmt.Sprintf("activities[%d].%s", index, name)
	}

	description := strings.TrimSpace(input.Description)

	validator := &validate.Validator{}
	validator.Range(field(FieldDay), input.Day, 1, durationDays).
		Required(field(FieldTime), input.Time).
		Clock(field(FieldTime), input.Time).
		Required(field(FieldDescription), description).
		MaxLen(field(FieldDescription), description, DescriptionMaxLength)

	return validator.Err()
}

// # Reading

/*
List returns all trips of the acting user, newest first.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*Trip: Trips with activities ordered by day and time
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, userID string) ([]*Trip, error) {
	trips, err := service.repository.ListByOwner(context, userID)
	if err != nil {
		return nil, fmt.Errorf("trip_service_list_failed: %w", err)
	}
	return trips, nil
}

/*
Get returns the decorated detail view of an owned trip.

Parameters:
  - context: context.Context
  - userID: string
  - tripID: string

Returns:
  - *Detail: Trip with itinerary, image, and weather
  - error: apperr.NotFound for absent or non-owned trips
*/
func (service *Service) Get(context context.Context, userID, tripID string) (*Detail, error) {
	trip, err := service.repository.FindByID(context, tripID, userID)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwnership(trip.UserID, userID); err != nil {
		return nil, err
	}
	return service.buildDetail(context, trip)
}

/*
GetShared returns the decorated detail view for the public share link.

Description: No session and no owner filter; anyone holding the trip id can
read (not modify) its itinerary.

Parameters:
  - context: context.Context
  - tripID: string

Returns:
  - *Detail: Same payload as the owner's detail view
  - error: apperr.NotFound or retrieval failures
*/
func (service *Service) GetShared(context context.Context, tripID string) (*Detail, error) {
	trip, err := service.repository.FindShared(context, tripID)
	if err != nil {
		return nil, err
	}
	return service.buildDetail(context, trip)
}

/*
Delete removes an owned trip and, by cascade, its activities.

Parameters:
  - context: context.Context
  - userID: string
  - tripID: string

Returns:
  - error: apperr.NotFound for absent or non-owned trips
*/
func (service *Service) Delete(context context.Context, userID, tripID string) error {
	return service.repository.Delete(context, tripID, userID)
}

// # View Composition

// buildDetail assembles the itinerary view and fires both enrichment
// lookups concurrently; neither can fail the request.
func (service *Service) buildDetail(context context.Context, trip *Trip) (*Detail, error) {
	startDate, err := time.Parse(itinerary.DateLayout, trip.StartDate)
	if err != nil {
		return nil, fmt.Errorf("trip_service_bad_start_date: %w", err)
	}
	endDate, err := time.Parse(itinerary.DateLayout, trip.EndDate)
	if err != nil {
		return nil, fmt.Errorf("trip_service_bad_end_date: %w", err)
	}

	detail := &Detail{
		Trip:         trip,
		DurationDays: itinerary.DurationDays(startDate, endDate),
		Itinerary:    buildItinerary(startDate, trip.Activities),
	}

	if service.enricher != nil {
		var group sync.WaitGroup
		group.Add(2)

		go func() {
			defer group.Done()
			detail.ImageURL = service.enricher.ResolveImage(context, trip.Destination)
		}()
		go func() {
			defer group.Done()
			detail.Weather = service.enricher.ResolveWeather(context, trip.Destination)
		}()

		group.Wait()
	}

	return detail, nil
}

// buildItinerary shapes the flat activity list into ordered calendar days.
func buildItinerary(startDate time.Time, activities []*Activity) []ItineraryDay {
	groups := itinerary.GroupByDay(activities)

	days := make([]ItineraryDay, 0, len(groups))
	for _, group := range groups {
		date := itinerary.DayDate(startDate, group.Day)

		views := make([]*ActivityView, 0, len(group.Entries))
		for _, activity := range group.Entries {
			views = append(views, &ActivityView{
				Activity:  activity,
				TimeLabel: itinerary.FormatTime(activity.Time),
			})
		}

		days = append(days, ItineraryDay{
			Day:        group.Day,
			Date:       date.Format(itinerary.DateLayout),
			DateLabel:  itinerary.FormatDate(date),
			Activities: views,
		})
	}

	return days
}

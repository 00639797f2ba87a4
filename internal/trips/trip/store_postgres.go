// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

// PostgreSQL implementation of the trip repository.
//
// # Design Notes
//
//   - Table and column identifiers come from the shared schema definitions
//     so SQL and migrations cannot drift apart silently.
//   - Calendar dates travel as ISO strings at this boundary: inserts cast
//     with ::date, selects render with to_char, so the entity never carries
//     a timezone it does not have.
//   - Trip creation is a single transaction covering the trip row and its
//     activity batch, so a reader never observes a half-created trip.
//   - Activity ordering (day, then time) is done in SQL; CHAR(5) zero-padded
//     times sort chronologically.
package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/platform/database/schema"
)

// # Query Fragments

// tripSelectColumns renders the trip column list with dates as ISO strings.
var tripSelectColumns = fmt.Sprintf(
	"%s, %s, %s, to_char(%s, 'YYYY-MM-DD'), to_char(%s, 'YYYY-MM-DD'), %s, %s",
	schema.Trip.ID, schema.Trip.UserID, schema.Trip.Destination,
	schema.Trip.StartDate, schema.Trip.EndDate,
	schema.Trip.CreatedAt, schema.Trip.UpdatedAt,
)

// activityOrder keeps activities chronological within a trip.
var activityOrder = fmt.Sprintf(
	"%s ASC, %s ASC, %s ASC",
	schema.TripActivity.Day, schema.TripActivity.ActivityTime, schema.TripActivity.ID,
)

// # Repository

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the trip Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Create atomically persists a trip and its activities.

Description: Opens a transaction, inserts the trip row, then inserts the
activity batch bound to it. Rollback on any failure leaves no trace.

Parameters:
  - context: context.Context
  - trip: *Trip

Returns:
  - error: Transaction or execution failures
*/
func (repository *PostgresRepository) Create(context context.Context, trip *Trip) error {

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_trip_repo_begin_failed: %w", err)
	}

	// Reclaims the transaction if anything below fails or panics.
	defer transaction.Rollback(context)

	tripQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4::date, $5::date, $6, $7)`,
		schema.Trip.Table,
		schema.Trip.ID, schema.Trip.UserID, schema.Trip.Destination,
		schema.Trip.StartDate, schema.Trip.EndDate,
		schema.Trip.CreatedAt, schema.Trip.UpdatedAt,
	)

	now := time.Now()
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = now
	}
	trip.UpdatedAt = now

	_, err = transaction.Exec(context, tripQuery,
		trip.ID,
		trip.UserID,
		trip.Destination,
		trip.StartDate,
		trip.EndDate,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_trip_repo_create_failed: %w", err)
	}

	activityQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.TripActivity.Table,
		schema.TripActivity.ID, schema.TripActivity.TripID, schema.TripActivity.Day,
		schema.TripActivity.ActivityTime, schema.TripActivity.Description,
		schema.TripActivity.CreatedAt, schema.TripActivity.UpdatedAt,
	)

	for _, activity := range trip.Activities {
		activity.TripID = trip.ID
		if activity.CreatedAt.IsZero() {
			activity.CreatedAt = now
		}
		activity.UpdatedAt = now

		_, err = transaction.Exec(context, activityQuery,
			activity.ID,
			activity.TripID,
			activity.Day,
			activity.Time,
			activity.Description,
			activity.CreatedAt,
			activity.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("postgres_trip_repo_create_activity_failed: %w", err)
		}
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_trip_repo_commit_failed: %w", err)
	}

	return nil
}

/*
ListByOwner returns the owner's trips newest-first with activities attached.

Description: Two queries: one for the trip rows, one for all activities of
those trips, merged in memory. Avoids N+1 round-trips.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*Trip: Hydrated trips, newest createdat first
  - error: Database execution errors
*/
func (repository *PostgresRepository) ListByOwner(context context.Context, userID string) ([]*Trip, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC`,
		tripSelectColumns, schema.Trip.Table, schema.Trip.UserID,
		schema.Trip.CreatedAt, schema.Trip.ID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_trip_repo_list_failed: %w", err)
	}
	defer rows.Close()

	trips := []*Trip{}
	byID := make(map[string]*Trip)

	for rows.Next() {
		trip := &Trip{Activities: []*Activity{}}
		err := rows.Scan(
			&trip.ID,
			&trip.UserID,
			&trip.Destination,
			&trip.StartDate,
			&trip.EndDate,
			&trip.CreatedAt,
			&trip.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_trip_repo_list_scan_failed: %w", err)
		}
		trips = append(trips, trip)
		byID[trip.ID] = trip
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_trip_repo_list_rows_failed: %w", err)
	}

	if len(trips) == 0 {
		return trips, nil
	}

	activityQuery := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s t ON t.%s = a.%s
		WHERE t.%s = $1
		ORDER BY a.%s ASC, a.%s ASC, a.%s ASC`,
		schema.TripActivity.ID, schema.TripActivity.TripID, schema.TripActivity.Day,
		schema.TripActivity.ActivityTime, schema.TripActivity.Description,
		schema.TripActivity.CreatedAt, schema.TripActivity.UpdatedAt,
		schema.TripActivity.Table,
		schema.Trip.Table, schema.Trip.ID, schema.TripActivity.TripID,
		schema.Trip.UserID,
		schema.TripActivity.Day, schema.TripActivity.ActivityTime, schema.TripActivity.ID,
	)

	activityRows, err := repository.pool.Query(context, activityQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_trip_repo_list_activities_failed: %w", err)
	}
	defer activityRows.Close()

	for activityRows.Next() {
		activity := &Activity{}
		err := activityRows.Scan(
			&activity.ID,
			&activity.TripID,
			&activity.Day,
			&activity.Time,
			&activity.Description,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_trip_repo_list_activity_scan_failed: %w", err)
		}
		if trip, ok := byID[activity.TripID]; ok {
			trip.Activities = append(trip.Activities, activity)
		}
	}
	if err := activityRows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_trip_repo_list_activity_rows_failed: %w", err)
	}

	return trips, nil
}

/*
FindByID returns one trip by (id, owner) with its activities.

Description: The owner id is part of the WHERE clause; a trip owned by
someone else scans as no rows and surfaces as NotFound.

Parameters:
  - context: context.Context
  - tripID: string
  - userID: string

Returns:
  - *Trip: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindByID(context context.Context, tripID, userID string) (*Trip, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2`,
		tripSelectColumns, schema.Trip.Table, schema.Trip.ID, schema.Trip.UserID,
	)

	return repository.findOne(context, query, tripID, userID)
}

/*
FindShared returns one trip by id only, for the public share view.

Parameters:
  - context: context.Context
  - tripID: string

Returns:
  - *Trip: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresRepository) FindShared(context context.Context, tripID string) (*Trip, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		tripSelectColumns, schema.Trip.Table, schema.Trip.ID,
	)

	return repository.findOne(context, query, tripID)
}

// findOne runs a single-trip query and hydrates its activities.
func (repository *PostgresRepository) findOne(context context.Context, query string, args ...any) (*Trip, error) {
	trip := &Trip{Activities: []*Activity{}}

	err := repository.pool.QueryRow(context, query, args...).Scan(
		&trip.ID,
		&trip.UserID,
		&trip.Destination,
		&trip.StartDate,
		&trip.EndDate,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Trip")
		}
		return nil, fmt.Errorf("postgres_trip_repo_find_failed: %w", err)
	}

	activityQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s`,
		schema.TripActivity.ID, schema.TripActivity.TripID, schema.TripActivity.Day,
		schema.TripActivity.ActivityTime, schema.TripActivity.Description,
		schema.TripActivity.CreatedAt, schema.TripActivity.UpdatedAt,
		schema.TripActivity.Table,
		schema.TripActivity.TripID,
		activityOrder,
	)

	rows, err := repository.pool.Query(context, activityQuery, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("postgres_trip_repo_find_activities_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		activity := &Activity{}
		err := rows.Scan(
			&activity.ID,
			&activity.TripID,
			&activity.Day,
			&activity.Time,
			&activity.Description,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_trip_repo_find_activity_scan_failed: %w", err)
		}
		trip.Activities = append(trip.Activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_trip_repo_find_activity_rows_failed: %w", err)
	}

	return trip, nil
}

/*
Delete removes a trip owned by userID. Activities go with it via the
ON DELETE CASCADE on the activity table.

Parameters:
  - context: context.Context
  - tripID: string
  - userID: string

Returns:
  - error: apperr.NotFound when nothing matched, or execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, tripID, userID string) error {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1 AND %s = $2",
		schema.Trip.Table, schema.Trip.ID, schema.Trip.UserID,
	)

	tag, err := repository.pool.Exec(context, query, tripID, userID)
	if err != nil {
		return fmt.Errorf("postgres_trip_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Trip")
	}

	return nil
}

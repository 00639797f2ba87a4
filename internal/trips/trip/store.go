// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package trip

import (
	"context"
)

// # Trip Data Access

// Repository defines the data access contract for trips and their activities.
//
// Owner-scoped methods take the acting userID and fold it into the query
// predicate. There is no way to fetch another user's trip through them;
// FindShared is the single, deliberate exception for the public share view.
type Repository interface {

	/*
		Create atomically persists a trip together with its activities.

		Parameters:
		  - context: context.Context
		  - trip: *Trip (with Activities populated)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, trip *Trip) error

	/*
		ListByOwner returns the owner's trips newest-first, activities included
		and ordered by day then time.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*Trip: Hydrated trips (empty slice when none)
		  - error: Database retrieval failures
	*/
	ListByOwner(context context.Context, userID string) ([]*Trip, error)

	/*
		FindByID returns the trip with the given id if owned by userID.

		Parameters:
		  - context: context.Context
		  - tripID: string
		  - userID: string (owner predicate, part of the WHERE clause)

		Returns:
		  - *Trip: Hydrated entity with activities
		  - error: apperr.NotFound for absent or non-owned trips
	*/
	FindByID(context context.Context, tripID, userID string) (*Trip, error)

	/*
		FindShared returns a trip by id without an owner filter. Feeds the
		public read-only share view only.

		Parameters:
		  - context: context.Context
		  - tripID: string

		Returns:
		  - *Trip: Hydrated entity with activities
		  - error: apperr.NotFound or retrieval failures
	*/
	FindShared(context context.Context, tripID string) (*Trip, error)

	/*
		Delete removes the trip if owned by userID; activities cascade.

		Parameters:
		  - context: context.Context
		  - tripID: string
		  - userID: string

		Returns:
		  - error: apperr.NotFound for absent or non-owned trips
	*/
	Delete(context context.Context, tripID, userID string) error
}

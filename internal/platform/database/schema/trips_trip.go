// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package schema

// TripTable represents the 'trips.trip' table
type TripTable struct {
	Table       string
	ID          string
	UserID      string
	Destination string
	StartDate   string
	EndDate     string
	CreatedAt   string
	UpdatedAt   string
}

// Trip is the schema definition for trips.trip
var Trip = TripTable{
	Table:       "trips.trip",
	ID:          "id",
	UserID:      "userid",
	Destination: "destination",
	StartDate:   "startdate",
	EndDate:     "enddate",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t TripTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.Destination, t.StartDate, t.EndDate, t.CreatedAt, t.UpdatedAt,
	}
}

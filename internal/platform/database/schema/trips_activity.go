// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package schema

// TripActivityTable represents the 'trips.activity' table
type TripActivityTable struct {
	Table        string
	ID           string
	TripID       string
	Day          string
	ActivityTime string
	Description  string
	CreatedAt    string
	UpdatedAt    string
}

// TripActivity is the schema definition for trips.activity
var TripActivity = TripActivityTable{
	Table:        "trips.activity",
	ID:           "id",
	TripID:       "tripid",
	Day:          "day",
	ActivityTime: "activitytime",
	Description:  "description",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t TripActivityTable) Columns() []string {
	return []string{
		t.ID, t.TripID, t.Day, t.ActivityTime, t.Description, t.CreatedAt, t.UpdatedAt,
	}
}

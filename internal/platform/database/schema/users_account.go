// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

// Package schema centralizes table and column identifiers so that SQL built
// in the repositories never spells a raw table name twice.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	DisplayName:  "displayname",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.DisplayName, t.PasswordHash, t.CreatedAt, t.UpdatedAt,
	}
}

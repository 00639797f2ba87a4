// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, token
// generation, signed-token issuance) from the domain logic. It acts as an
// Infrastructure service injected into the Application layer.
package sec

// Identity is the resolved, request-scoped user identity.
//
// It is the value the authentication middleware injects into the request
// context after a session token has been validated. Handlers never see raw
// tokens, only this resolved identity.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

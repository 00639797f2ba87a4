// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/platform/sec"
)

// # Session Contracts

// SessionManager abstracts how an authenticated session is materialized
// into a transport token and resolved back into an identity.
//
// Two strategies exist behind this interface:
//
//   - Server sessions (default): an opaque random token whose SHA-256 hash
//     maps to a userID in Redis. Revocation is immediate.
//   - Signed sessions: a self-contained HS256 JWT. No server-side state,
//     but tokens live until their expiry.
//
// The rest of the application never knows which strategy is active.
type SessionManager interface {

	/*
		Create establishes a new session for an authenticated user.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - string: Transport token to place in the session cookie
		  - time.Time: Token expiry
		  - error: Generation or persistence failures
	*/
	Create(context context.Context, user *User) (string, time.Time, error)

	/*
		Resolve translates a transport token back into a verified identity.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *sec.Identity: Resolved identity
		  - error: apperr.Unauthorized for any invalid, expired, or revoked token
	*/
	Resolve(context context.Context, token string) (*sec.Identity, error)

	/*
		Destroy terminates the session for the given token. Idempotent.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - error: Persistence failures
	*/
	Destroy(context context.Context, token string) error
}

// # Server Sessions (opaque token + Redis)

// ServerSessionManager implements SessionManager with opaque random tokens
// stored (hashed) in a SessionStore.
type ServerSessionManager struct {
	sessions SessionStore
	users    UserRepository
}

// NewServerSessionManager constructs the default, revocable session strategy.
func NewServerSessionManager(sessions SessionStore, users UserRepository) *ServerSessionManager {
	return &ServerSessionManager{sessions: sessions, users: users}
}

// Create generates a high-entropy token, stores its hash, and returns the
// plaintext token. The plaintext never touches the store.
func (manager *ServerSessionManager) Create(context context.Context, user *User) (string, time.Time, error) {

	// Generate the opaque session token
	token, err := sec.GenerateSecureToken(SessionTokenLength)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("server_session_token_failed: %w", err)
	}

	// Persist hash -> userID with the session TTL
	expiresAt := time.Now().Add(SessionTTL)
	if err := manager.sessions.Set(context, sec.HashToken(token), user.ID, SessionTTL); err != nil {
		return "", time.Time{}, fmt.Errorf("server_session_create_failed: %w", err)
	}

	return token, expiresAt, nil
}

// Resolve looks up the token hash and re-fetches the account so that the
// identity reflects the current database state, not a login-time snapshot.
func (manager *ServerSessionManager) Resolve(context context.Context, token string) (*sec.Identity, error) {

	// Resolve hash -> userID. Any miss is a generic Unauthorized.
	userID, err := manager.sessions.Get(context, sec.HashToken(token))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	// Re-fetch the account. A deleted account invalidates its sessions.
	user, err := manager.users.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	return &sec.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.DisplayName,
	}, nil
}

// Destroy removes the session entry. Destroying an already-absent session
// succeeds, so logout is idempotent.
func (manager *ServerSessionManager) Destroy(context context.Context, token string) error {
	if err := manager.sessions.Delete(context, sec.HashToken(token)); err != nil {
		return fmt.Errorf("server_session_destroy_failed: %w", err)
	}
	return nil
}

// # Signed Sessions (stateless JWT)

// SignedSessionManager implements SessionManager with self-contained HS256
// tokens. Selected with SESSION_STRATEGY=signed.
type SignedSessionManager struct {
	tokens *sec.SignedTokenService
	users  UserRepository
}

// NewSignedSessionManager constructs the stateless session strategy.
func NewSignedSessionManager(tokens *sec.SignedTokenService, users UserRepository) *SignedSessionManager {
	return &SignedSessionManager{tokens: tokens, users: users}
}

// Create signs a JWT carrying the user's ID and email.
func (manager *SignedSessionManager) Create(context context.Context, user *User) (string, time.Time, error) {
	token, expiresAt, err := manager.tokens.Generate(user.ID, user.Email, SessionTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signed_session_create_failed: %w", err)
	}
	return token, expiresAt, nil
}

// Resolve verifies the signature and expiry, then re-checks the account still
// exists. The extra read trades a little latency for not honoring tokens of
// deleted accounts for up to 30 days.
func (manager *SignedSessionManager) Resolve(context context.Context, token string) (*sec.Identity, error) {

	claims, err := manager.tokens.Verify(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	user, err := manager.users.FindByID(context, claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	return &sec.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.DisplayName,
	}, nil
}

// Destroy is a no-op for signed tokens: there is no server-side state to
// remove. The HTTP layer still clears the cookie, and the token ages out.
func (manager *SignedSessionManager) Destroy(context context.Context, token string) error {
	return nil
}

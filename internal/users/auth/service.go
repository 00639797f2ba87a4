// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/platform/sec"
	"github.com/vyletran/atlastrip/pkg/uuid"
)

// # Service

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	sessions       SessionManager
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, sessions SessionManager) *Service {
	return &Service{
		userRepository: userRepo,
		sessions:       sessions,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Deep-enrollment of a new member. Email uniqueness is enforced by
the database constraint; a duplicate surfaces as apperr.Conflict from the
repository, never from a racy pre-check here.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: Conflict (if email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Canonicalize the email so lookups and the unique constraint agree.
	email := NormalizeEmail(input.Email)

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  strings.TrimSpace(input.DisplayName),
	}

	// Persist the user to the database. Duplicate emails come back as Conflict.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

/*
Login validates user credentials and establishes a session.

Description: Verifies identity, performs constant-time password comparison,
and materializes a session through the configured SessionManager.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session token and user profile
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Look up the account. Generic message to prevent enumeration.
	user, err := service.userRepository.FindByEmail(context, NormalizeEmail(input.Email))
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	// Establish the session
	token, expiresAt, err := service.sessions.Create(context, user)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

/*
Logout terminates the session behind the given token.

Description: Idempotent. A missing, expired, or already-destroyed session is
treated as a successful logout.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := service.sessions.Destroy(context, token); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	return nil
}

// # Profile

/*
CurrentUser returns the full profile of an authenticated user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *User: Hydrated profile
  - error: Unauthorized if the account no longer exists
*/
func (service *Service) CurrentUser(context context.Context, userID string) (*User, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}
	return user, nil
}

// NormalizeEmail lowercases and trims an email so that "Ana@Mail.com " and
// "ana@mail.com" address the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/platform/sec"
	"github.com/vyletran/atlastrip/internal/users/auth"
)

// # In-Memory Fakes

// memoryUserRepository is an in-memory UserRepository for service tests.
type memoryUserRepository struct {
	byID    map[string]*auth.User
	byEmail map[string]*auth.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]*auth.User),
		byEmail: make(map[string]*auth.User),
	}
}

func (repo *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	if _, exists := repo.byEmail[user.Email]; exists {
		return apperr.Conflict("Email is already registered")
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	repo.byID[user.ID] = user
	repo.byEmail[user.Email] = user
	return nil
}

func (repo *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (repo *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := repo.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

// memorySessionStore is an in-memory SessionStore with real expiry semantics.
type memorySessionStore struct {
	entries map[string]memorySessionEntry
}

type memorySessionEntry struct {
	userID    string
	expiresAt time.Time
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{entries: make(map[string]memorySessionEntry)}
}

func (store *memorySessionStore) Set(_ context.Context, tokenHash, userID string, ttl time.Duration) error {
	store.entries[tokenHash] = memorySessionEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (store *memorySessionStore) Get(_ context.Context, tokenHash string) (string, error) {
	entry, ok := store.entries[tokenHash]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", apperr.NotFound("Session")
	}
	return entry.userID, nil
}

func (store *memorySessionStore) Delete(_ context.Context, tokenHash string) error {
	delete(store.entries, tokenHash)
	return nil
}

func newTestService(t *testing.T) (*auth.Service, *memoryUserRepository, *memorySessionStore) {
	t.Helper()
	users := newMemoryUserRepository()
	sessions := newMemorySessionStore()
	manager := auth.NewServerSessionManager(sessions, users)
	return auth.NewService(users, manager), users, sessions
}

// # Registration

/*
TestService_Register verifies enrollment, hashing, and email normalization.
*/
func TestService_Register(t *testing.T) {
	service, users, _ := newTestService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, auth.RegisterInput{
		Email:       "  Ana@Example.COM ",
		Password:    "correct horse",
		DisplayName: "Ana",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	// Email is canonicalized before persistence.
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEmpty(t, user.ID)

	// The stored hash must never equal the plaintext, and must verify.
	stored := users.byEmail["ana@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse", stored.PasswordHash))
}

/*
TestService_Register_DuplicateEmail verifies the Conflict path, including
case-variant duplicates.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{Email: "ana@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = service.Register(ctx, auth.RegisterInput{Email: "ANA@example.com", Password: "password2"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

// # Authentication

/*
TestService_Login covers the credential verification matrix. Both an unknown
email and a wrong password produce the same generic Unauthorized message to
prevent account enumeration.
*/
func TestService_Login(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{Email: "ana@example.com", Password: "correct horse"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"correct_credentials", "ana@example.com", "correct horse", false},
		{"case_variant_email", "Ana@Example.com", "correct horse", false},
		{"wrong_password", "ana@example.com", "wrong horse", true},
		{"unknown_email", "ghost@example.com", "correct horse", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Login(ctx, auth.LoginInput{Email: tt.email, Password: tt.password})

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "UNAUTHORIZED", ae.Code)
				assert.Equal(t, "Invalid email or password", ae.Message)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.Token)
			assert.True(t, session.ExpiresAt.After(time.Now()))
			assert.Equal(t, "ana@example.com", session.User.Email)
		})
	}
}

/*
TestService_Logout verifies session revocation and idempotency.
*/
func TestService_Logout(t *testing.T) {
	service, _, sessions := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{Email: "ana@example.com", Password: "correct horse"})
	require.NoError(t, err)

	session, err := service.Login(ctx, auth.LoginInput{Email: "ana@example.com", Password: "correct horse"})
	require.NoError(t, err)
	require.Len(t, sessions.entries, 1)

	// First logout removes the session.
	require.NoError(t, service.Logout(ctx, session.Token))
	assert.Empty(t, sessions.entries)

	// Second logout with the same (now dead) token still succeeds.
	require.NoError(t, service.Logout(ctx, session.Token))

	// An empty token is a no-op.
	require.NoError(t, service.Logout(ctx, ""))
}

/*
TestService_CurrentUser checks profile resolution for live and deleted accounts.
*/
func TestService_CurrentUser(t *testing.T) {
	service, users, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.Register(ctx, auth.RegisterInput{Email: "ana@example.com", Password: "correct horse"})
	require.NoError(t, err)

	user, err := service.CurrentUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// A vanished account resolves to Unauthorized, not an internal error.
	delete(users.byID, created.ID)
	_, err = service.CurrentUser(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

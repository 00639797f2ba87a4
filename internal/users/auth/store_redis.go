// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vyletran/atlastrip/internal/platform/apperr"
	"github.com/vyletran/atlastrip/internal/platform/constants"
)

// # Session Store

// RedisSessionStore implements SessionStore using Redis.
//
// Redis handles expiry natively through TTLs, so no sweeper job is needed:
// an expired session simply stops resolving.
type RedisSessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed SessionStore.
func NewSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

/*
Set stores a session token hash with its associated userID and TTL.

Parameters:
  - context: context.Context
  - tokenHash: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (store *RedisSessionStore) Set(context context.Context, tokenHash string, userID string, ttl time.Duration) error {

	// Use constants for key prefix
	key := constants.RedisPrefixSession + tokenHash

	// Set the session with TTL
	if err := store.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	// Return nil on success
	return nil
}

/*
Get retrieves the userID for a given session token hash.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - string: Original UserID
  - error: apperr.NotFound or connectivity errors
*/
func (store *RedisSessionStore) Get(context context.Context, tokenHash string) (string, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixSession + tokenHash

	// Get the session from Redis
	userID, err := store.client.Get(context, key).Result()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session")
		}
		return "", fmt.Errorf("redis_session_get_failed: %w", err)
	}

	// Return the userID
	return userID, nil
}

/*
Delete removes the session from Redis.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - error: Deletion failures
*/
func (store *RedisSessionStore) Delete(context context.Context, tokenHash string) error {

	// Use constants for key prefix
	key := constants.RedisPrefixSession + tokenHash

	// Delete the session from Redis
	if err := store.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	// Return nil on success
	return nil
}

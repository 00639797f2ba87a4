// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

/*
Package enrichment decorates trip views with third-party data: a destination
photo and current weather conditions.

# Degradation Contract

Enrichment is strictly best-effort. No failure in this package — provider
downtime, timeouts, malformed payloads, missing API keys, cache outages —
ever surfaces as an error to callers. The result is simply absent (nil) and
the trip view renders without it.

# Caching

Successful lookups are cached in Redis for a short window, keyed by a
diacritics-folded destination key, so that repeated views of the same trip
do not hammer the upstream providers. Cache failures are ignored; the
providers are simply queried again.
*/
package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vyletran/atlastrip/internal/platform/constants"
	"github.com/vyletran/atlastrip/internal/platform/ctxutil"
	"github.com/vyletran/atlastrip/pkg/placekey"
	"github.com/vyletran/atlastrip/pkg/pointer"
)

// # Constants

const (
	// ProviderTimeout bounds each upstream call so a slow provider cannot
	// stall a trip view past its request deadline.
	ProviderTimeout = 5 * time.Second

	// CacheTTL is how long a resolved image or weather snapshot is reused.
	// Weather goes stale quickly, so the window is short.
	CacheTTL = 30 * time.Minute
)

// # Types

// WeatherSnapshot is the current-conditions summary shown on a trip view.
type WeatherSnapshot struct {
	Temperature int    `json:"temperature"` // Celsius, rounded.
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`   // Percent.
	WindSpeed   int    `json:"wind_speed"` // km/h, rounded.
	Icon        string `json:"icon"`
}

// ImageProvider resolves a destination into a representative photo URL.
type ImageProvider interface {
	SearchPhoto(context context.Context, query string) (string, error)
}

// WeatherProvider resolves a place name into current conditions.
type WeatherProvider interface {
	CurrentWeather(context context.Context, place string) (*WeatherSnapshot, error)
}

// # Gateway

// Gateway is the single entry point the trip domain talks to. It owns the
// timeout policy, the cache, and the never-fail contract.
type Gateway struct {
	images  ImageProvider
	weather WeatherProvider
	cache   *redis.Client // Optional; nil disables caching.
}

// NewGateway constructs an enrichment gateway. cache may be nil.
func NewGateway(images ImageProvider, weather WeatherProvider, cache *redis.Client) *Gateway {
	return &Gateway{images: images, weather: weather, cache: cache}
}

/*
ResolveImage returns a destination photo URL, or nil when unavailable.

Description: Checks the Redis cache first, then falls through to the image
provider under a bounded timeout. Failures are logged at debug level and
swallowed.

Parameters:
  - context: context.Context
  - destination: string (free-text destination as the user typed it)

Returns:
  - *string: Photo URL, or nil when no image could be resolved
*/
func (gateway *Gateway) ResolveImage(context context.Context, destination string) *string {
	key := constants.RedisPrefixImageCache + placekey.From(destination)

	if cached, ok := gateway.cacheGet(context, key); ok {
		return pointer.To(cached)
	}

	callContext, cancel := contextWithTimeout(context)
	defer cancel()

	url, err := gateway.images.SearchPhoto(callContext, destination)
	if err != nil || url == "" {
		gateway.logMiss(context, "image", destination, err)
		return nil
	}

	gateway.cacheSet(context, key, url)
	return pointer.To(url)
}

/*
ResolveWeather returns current weather for a place, or nil when unavailable.

Description: Same cache-then-provider flow as ResolveImage; the snapshot is
stored as JSON in Redis.

Parameters:
  - context: context.Context
  - place: string

Returns:
  - *WeatherSnapshot: Current conditions, or nil when unresolved
*/
func (gateway *Gateway) ResolveWeather(context context.Context, place string) *WeatherSnapshot {
	key := constants.RedisPrefixWeatherCache + placekey.From(place)

	if cached, ok := gateway.cacheGet(context, key); ok {
		snapshot := &WeatherSnapshot{}
		if err := json.Unmarshal([]byte(cached), snapshot); err == nil {
			return snapshot
		}
		// A corrupt cache entry falls through to a fresh lookup.
	}

	callContext, cancel := contextWithTimeout(context)
	defer cancel()

	snapshot, err := gateway.weather.CurrentWeather(callContext, place)
	if err != nil || snapshot == nil {
		gateway.logMiss(context, "weather", place, err)
		return nil
	}

	if encoded, err := json.Marshal(snapshot); err == nil {
		gateway.cacheSet(context, key, string(encoded))
	}

	return snapshot
}

// # Cache Plumbing

func (gateway *Gateway) cacheGet(context context.Context, key string) (string, bool) {
	if gateway.cache == nil {
		return "", false
	}
	value, err := gateway.cache.Get(context, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			ctxutil.GetLogger(context).Debug("enrichment cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return "", false
	}
	return value, true
}

func (gateway *Gateway) cacheSet(context context.Context, key, value string) {
	if gateway.cache == nil {
		return
	}
	if err := gateway.cache.Set(context, key, value, CacheTTL).Err(); err != nil {
		ctxutil.GetLogger(context).Debug("enrichment cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (gateway *Gateway) logMiss(context context.Context, kind, subject string, err error) {
	ctxutil.GetLogger(context).Debug("enrichment unavailable",
		slog.String("kind", kind),
		slog.String("subject", subject),
		slog.Any("error", err),
	)
}

func contextWithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, ProviderTimeout)
}

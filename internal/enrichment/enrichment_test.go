// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package enrichment_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyletran/atlastrip/internal/enrichment"
)

// # Pexels Provider

func TestPexelsClient_SearchPhoto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/search", request.URL.Path)
		assert.Equal(t, "Paris", request.URL.Query().Get("query"))
		assert.Equal(t, "1", request.URL.Query().Get("per_page"))
		assert.Equal(t, "test-key", request.Header.Get("Authorization"))

		fmt.Fprint(writer, `{"photos":[{"src":{"large2x":"https://images.example/paris.jpg"}}]}`)
	}))
	defer server.Close()

	client := enrichment.NewPexelsClient("test-key", server.URL)
	url, err := client.SearchPhoto(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example/paris.jpg", url)
}

func TestPexelsClient_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		fmt.Fprint(writer, `{"photos":[]}`)
	}))
	defer server.Close()

	client := enrichment.NewPexelsClient("test-key", server.URL)
	_, err := client.SearchPhoto(context.Background(), "Nowhereville")
	require.Error(t, err)
}

func TestPexelsClient_MissingKey(t *testing.T) {
	client := enrichment.NewPexelsClient("", "http://unused.invalid")
	_, err := client.SearchPhoto(context.Background(), "Paris")
	require.Error(t, err)
}

func TestPexelsClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := enrichment.NewPexelsClient("test-key", server.URL)
	_, err := client.SearchPhoto(context.Background(), "Paris")
	require.Error(t, err)
}

// # Open-Meteo Provider

// newWeatherServers starts paired geocode and forecast fakes.
func newWeatherServers(t *testing.T, geocodeBody, forecastBody string) (*httptest.Server, *httptest.Server) {
	t.Helper()

	geocode := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/search", request.URL.Path)
		assert.Equal(t, "1", request.URL.Query().Get("count"))
		fmt.Fprint(writer, geocodeBody)
	}))
	t.Cleanup(geocode.Close)

	forecast := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/forecast", request.URL.Path)
		assert.Equal(t, "celsius", request.URL.Query().Get("temperature_unit"))
		assert.Equal(t, "kmh", request.URL.Query().Get("wind_speed_unit"))
		fmt.Fprint(writer, forecastBody)
	}))
	t.Cleanup(forecast.Close)

	return geocode, forecast
}

func TestOpenMeteoClient_CurrentWeather(t *testing.T) {
	geocode, forecast := newWeatherServers(t,
		`{"results":[{"latitude":48.85,"longitude":2.35}]}`,
		`{"current":{"temperature_2m":21.6,"relative_humidity_2m":64.2,"wind_speed_10m":11.4,"weather_code":2}}`,
	)

	client := enrichment.NewOpenMeteoClient(geocode.URL, forecast.URL)
	snapshot, err := client.CurrentWeather(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, 22, snapshot.Temperature)
	assert.Equal(t, "Partly cloudy", snapshot.Condition)
	assert.Equal(t, 64, snapshot.Humidity)
	assert.Equal(t, 11, snapshot.WindSpeed)
	assert.Equal(t, "cloud-sun", snapshot.Icon)
}

func TestOpenMeteoClient_UnknownCode(t *testing.T) {
	geocode, forecast := newWeatherServers(t,
		`{"results":[{"latitude":0,"longitude":0}]}`,
		`{"current":{"temperature_2m":1,"relative_humidity_2m":1,"wind_speed_10m":1,"weather_code":42}}`,
	)

	client := enrichment.NewOpenMeteoClient(geocode.URL, forecast.URL)
	snapshot, err := client.CurrentWeather(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", snapshot.Condition)
}

func TestOpenMeteoClient_GeocodeMiss(t *testing.T) {
	geocode, forecast := newWeatherServers(t, `{"results":[]}`, `{}`)

	client := enrichment.NewOpenMeteoClient(geocode.URL, forecast.URL)
	_, err := client.CurrentWeather(context.Background(), "Nowhereville")
	require.Error(t, err)
}

// # Gateway Degradation

// failingImages is an ImageProvider that always errors.
type failingImages struct{}

func (failingImages) SearchPhoto(context.Context, string) (string, error) {
	return "", fmt.Errorf("provider down")
}

// failingWeather is a WeatherProvider that always errors.
type failingWeather struct{}

func (failingWeather) CurrentWeather(context.Context, string) (*enrichment.WeatherSnapshot, error) {
	return nil, fmt.Errorf("provider down")
}

// staticImages returns a fixed photo URL and counts invocations.
type staticImages struct {
	url   string
	calls int
}

func (s *staticImages) SearchPhoto(context.Context, string) (string, error) {
	s.calls++
	return s.url, nil
}

/*
TestGateway_AbsentOnFailure pins the degradation contract: provider failures
produce nil results, never errors.
*/
func TestGateway_AbsentOnFailure(t *testing.T) {
	gateway := enrichment.NewGateway(failingImages{}, failingWeather{}, nil)

	assert.Nil(t, gateway.ResolveImage(context.Background(), "Paris"))
	assert.Nil(t, gateway.ResolveWeather(context.Background(), "Paris"))
}

func TestGateway_ResolveImage(t *testing.T) {
	images := &staticImages{url: "https://images.example/lisbon.jpg"}
	gateway := enrichment.NewGateway(images, failingWeather{}, nil)

	url := gateway.ResolveImage(context.Background(), "Lisbon")
	require.NotNil(t, url)
	assert.Equal(t, "https://images.example/lisbon.jpg", *url)

	// Without a cache every resolve hits the provider.
	gateway.ResolveImage(context.Background(), "Lisbon")
	assert.Equal(t, 2, images.calls)
}

/*
TestGateway_TransportFailure drives a real provider against a dead server to
confirm the nil-on-failure path covers transport errors too.
*/
func TestGateway_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // Dead endpoint.

	gateway := enrichment.NewGateway(
		enrichment.NewPexelsClient("test-key", server.URL),
		enrichment.NewOpenMeteoClient(server.URL, server.URL),
		nil,
	)

	assert.Nil(t, gateway.ResolveImage(context.Background(), "Paris"))
	assert.Nil(t, gateway.ResolveWeather(context.Background(), "Paris"))
}

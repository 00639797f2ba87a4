// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
)

// # Open-Meteo Weather Provider

// OpenMeteoClient implements WeatherProvider against the Open-Meteo
// geocoding and forecast APIs. No API key is required.
type OpenMeteoClient struct {
	geocodeBaseURL  string
	forecastBaseURL string
	httpClient      *http.Client
}

// NewOpenMeteoClient constructs an Open-Meteo-backed weather provider.
func NewOpenMeteoClient(geocodeBaseURL, forecastBaseURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		geocodeBaseURL:  geocodeBaseURL,
		forecastBaseURL: forecastBaseURL,
		httpClient:      &http.Client{},
	}
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

// weatherCondition maps a WMO weather code to a display label and icon.
type weatherCondition struct {
	label string
	icon  string
}

// WMO weather interpretation codes, as documented by Open-Meteo.
var weatherConditions = map[int]weatherCondition{
	0:  {"Clear sky", "sun"},
	1:  {"Mainly clear", "sun"},
	2:  {"Partly cloudy", "cloud-sun"},
	3:  {"Overcast", "cloud"},
	45: {"Foggy", "cloud-fog"},
	48: {"Depositing rime fog", "cloud-fog"},
	51: {"Light drizzle", "cloud-drizzle"},
	53: {"Moderate drizzle", "cloud-drizzle"},
	55: {"Dense drizzle", "cloud-drizzle"},
	61: {"Slight rain", "cloud-rain"},
	63: {"Moderate rain", "cloud-rain"},
	65: {"Heavy rain", "cloud-rain"},
	71: {"Slight snow", "cloud-snow"},
	73: {"Moderate snow", "cloud-snow"},
	75: {"Heavy snow", "cloud-snow"},
	77: {"Snow grains", "cloud-snow"},
	80: {"Slight rain showers", "cloud-rain"},
	81: {"Moderate rain showers", "cloud-rain"},
	82: {"Violent rain showers", "cloud-rain"},
	95: {"Thunderstorm", "cloud-lightning"},
	96: {"Thunderstorm with slight hail", "cloud-lightning"},
	99: {"Thunderstorm with heavy hail", "cloud-lightning"},
}

// unknownCondition is the fallback for codes outside the table.
var unknownCondition = weatherCondition{"Unknown", "cloud"}

/*
CurrentWeather resolves a place name into current conditions.

Description: Two-hop lookup: geocode the place (count=1), then fetch the
current conditions at the resolved coordinates in celsius and km/h.

Parameters:
  - context: context.Context (caller-bounded deadline)
  - place: string

Returns:
  - *WeatherSnapshot: Rounded, display-ready conditions
  - error: Geocode miss, transport, status, or decode failures
*/
func (client *OpenMeteoClient) CurrentWeather(context context.Context, place string) (*WeatherSnapshot, error) {
	latitude, longitude, err := client.geocode(context, place)
	if err != nil {
		return nil, err
	}
	return client.currentConditions(context, latitude, longitude)
}

// geocode resolves a place name to coordinates via the top search result.
func (client *OpenMeteoClient) geocode(context context.Context, place string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s/v1/search?name=%s&count=1", client.geocodeBaseURL, url.QueryEscape(place))

	var payload geocodeResponse
	if err := client.getJSON(context, endpoint, &payload); err != nil {
		return 0, 0, fmt.Errorf("openmeteo: geocode: %w", err)
	}

	if len(payload.Results) == 0 {
		return 0, 0, fmt.Errorf("openmeteo: no geocode results for %q", place)
	}

	return payload.Results[0].Latitude, payload.Results[0].Longitude, nil
}

// currentConditions fetches and rounds the current weather at coordinates.
func (client *OpenMeteoClient) currentConditions(context context.Context, latitude, longitude float64) (*WeatherSnapshot, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/forecast?latitude=%f&longitude=%f&current=temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code&temperature_unit=celsius&wind_speed_unit=kmh",
		client.forecastBaseURL, latitude, longitude,
	)

	var payload forecastResponse
	if err := client.getJSON(context, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("openmeteo: forecast: %w", err)
	}

	condition, ok := weatherConditions[payload.Current.WeatherCode]
	if !ok {
		condition = unknownCondition
	}

	return &WeatherSnapshot{
		Temperature: int(math.Round(payload.Current.Temperature)),
		Condition:   condition.label,
		Humidity:    int(math.Round(payload.Current.Humidity)),
		WindSpeed:   int(math.Round(payload.Current.WindSpeed)),
		Icon:        condition.icon,
	}, nil
}

// getJSON issues a GET and decodes a JSON body into target.
func (client *OpenMeteoClient) getJSON(context context.Context, endpoint string, target any) error {
	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

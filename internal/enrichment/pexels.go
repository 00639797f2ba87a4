// Copyright (c) 2026 Atlastrip. All rights reserved.
// Author: vy.letran.dn@gmail.com

package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// # Pexels Image Provider

// PexelsClient implements ImageProvider against the Pexels photo search API.
type PexelsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPexelsClient constructs a Pexels-backed image provider.
// An empty apiKey is allowed; every lookup will then fail and the gateway
// degrades to "no image".
func NewPexelsClient(apiKey, baseURL string) *PexelsClient {
	return &PexelsClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type pexelsSearchResponse struct {
	Photos []struct {
		Src struct {
			Large2x string `json:"large2x"`
		} `json:"src"`
	} `json:"photos"`
}

/*
SearchPhoto returns the URL of the top photo for a destination query.

Description: Issues GET /v1/search with per_page=1 and returns the large2x
rendition of the first hit.

Parameters:
  - context: context.Context (caller-bounded deadline)
  - query: string

Returns:
  - string: Photo URL
  - error: Missing key, transport, status, or empty-result failures
*/
func (client *PexelsClient) SearchPhoto(context context.Context, query string) (string, error) {
	if client.apiKey == "" {
		return "", fmt.Errorf("pexels: api key not configured")
	}

	endpoint := fmt.Sprintf("%s/v1/search?query=%s&per_page=1", client.baseURL, url.QueryEscape(query))

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("pexels: build request: %w", err)
	}
	request.Header.Set("Authorization", client.apiKey)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("pexels: do request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pexels: unexpected status %d", response.StatusCode)
	}

	var payload pexelsSearchResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("pexels: decode response: %w", err)
	}

	if len(payload.Photos) == 0 || payload.Photos[0].Src.Large2x == "" {
		return "", fmt.Errorf("pexels: no photos for %q", query)
	}

	return payload.Photos[0].Src.Large2x, nil
}

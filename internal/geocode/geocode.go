// Package geocode resolves free-text event locations to coordinates
// using the Nominatim (OpenStreetMap) search API.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound reports that the query produced no match. Callers show a
// "try a more specific address" message for this, as opposed to the
// generic failure for transport errors.
var ErrNotFound = errors.New("location not found")

const defaultBaseURL = "https://nominatim.openstreetmap.org/search"

// Result is the single best match for a location query.
type Result struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"displayName"`
}

// Client queries the geocoding service. The zero value is not usable;
// construct with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type Config struct {
	BaseURL   string
	UserAgent string
}

// NewClient builds a geocoding client. Nominatim's usage policy requires
// an identifying User-Agent.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "FamilyOrganiser/1.0"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

type apiResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve looks up location and returns the best match. The context is
// honored for the whole call and re-checked before the result is
// applied, so an abandoned caller never receives a late answer.
func (c *Client) Resolve(ctx context.Context, location string) (*Result, error) {
	if location == "" {
		return nil, ErrNotFound
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", location)
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode API returned status %d", resp.StatusCode)
	}

	var results []apiResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	if err := ctx.Err(); err != nil {
		// The caller has gone away; discard the result.
		return nil, err
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return &Result{Lat: lat, Lon: lon, DisplayName: results[0].DisplayName}, nil
}

// MapLinks holds external map URLs for a location, offered as a fallback
// when the embedded map cannot be shown.
type MapLinks struct {
	Google string `json:"google"`
	Apple  string `json:"apple"`
}

// LinksFor builds search links for the raw location text.
func LinksFor(location string) MapLinks {
	q := url.QueryEscape(location)
	return MapLinks{
		Google: "https://www.google.com/maps/search/?api=1&query=" + q,
		Apple:  "https://maps.apple.com/?q=" + q,
	}
}

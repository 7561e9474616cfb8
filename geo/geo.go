// Package geo resolves the caller's public IP address and coarse
// location through an ipapi-style JSON endpoint. Lookups are best
// effort: callers treat a failed lookup as "location unknown" and
// carry on.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public ipapi.co self-lookup URL.
const DefaultEndpoint = "https://ipapi.co/json/"

// Location is the subset of the lookup response the rest of the
// system consumes.
type Location struct {
	IP      string  `json:"ip"`
	City    string  `json:"city"`
	Country string  `json:"country_name"`
	Lat     float64 `json:"latitude"`
	Lon     float64 `json:"longitude"`
}

// Client performs self-lookups against a single endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the lookup URL.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithHTTPClient overrides the HTTP client used for lookups.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a geolocation client against DefaultEndpoint.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves the caller's own IP and location. The endpoint
// reports quota and parse problems inside a 200 response via an
// "error" field, so that is checked as well as the HTTP status.
func (c *Client) Lookup(ctx context.Context) (Location, error) {
	return c.get(ctx, c.endpoint)
}

// LookupIP resolves the location of an arbitrary address through the
// same service. Used to enrich visitor presence entries.
func (c *Client) LookupIP(ctx context.Context, ip string) (Location, error) {
	base := strings.TrimSuffix(c.endpoint, "/json/")
	return c.get(ctx, base+"/"+url.PathEscape(ip)+"/json/")
}

func (c *Client) get(ctx context.Context, target string) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Location{}, fmt.Errorf("building geolocation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geolocation lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation endpoint returned %s", resp.Status)
	}

	var payload struct {
		Location
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("decoding geolocation response: %w", err)
	}
	if payload.Error {
		return Location{}, fmt.Errorf("geolocation endpoint rejected lookup: %s", payload.Reason)
	}
	return payload.Location, nil
}

// SPDX-License-Identifier: MIT

package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the public WAQI API root.
	DefaultEndpoint = "https://api.waqi.info"

	// DefaultTimeout bounds a single feed request made by StandardClient.
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 1 << 20
)

// Reading is the latest air-quality observation for a city.
type Reading struct {
	City     string
	AQI      float64
	Lat, Lon float64
	HasGeo   bool // false when the feed omitted coordinates
	Time     time.Time
}

// Client fetches readings from a WAQI-style feed.
type Client struct {
	http     HTTPClient
	endpoint string
	token    string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the transport. Panics on nil.
func WithHTTPClient(c HTTPClient) ClientOption {
	if c == nil {
		panic("airquality: WithHTTPClient(nil)")
	}
	return func(cl *Client) {
		cl.http = c
	}
}

// WithEndpoint overrides DefaultEndpoint. Panics on an empty string.
func WithEndpoint(endpoint string) ClientOption {
	if endpoint == "" {
		panic("airquality: WithEndpoint(\"\")")
	}
	return func(cl *Client) {
		cl.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// NewClient builds a Client authenticating with token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		http:     NewStandardClient(newHTTPClient(DefaultTimeout)),
		endpoint: DefaultEndpoint,
		token:    token,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// feedResponse is the envelope: data is an object on success and a plain
// string message on failure.
type feedResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type feedData struct {
	AQI  json.RawMessage `json:"aqi"`
	City struct {
		Name string    `json:"name"`
		Geo  []float64 `json:"geo"`
	} `json:"city"`
	Time struct {
		ISO string `json:"iso"`
	} `json:"time"`
}

// Latest returns the most recent reading for city.
//
// Errors:
//   - ErrMissingCity for an empty city.
//   - transport errors (wrapped) and ctx errors.
//   - ErrNoData (wrapped) for non-2xx status, a non-"ok" payload, or an AQI
//     that is absent or not numeric ("-" is used by the feed for offline
//     stations).
func (c *Client) Latest(ctx context.Context, city string) (Reading, error) {
	if city == "" {
		return Reading{}, ErrMissingCity
	}
	u := fmt.Sprintf("%s/feed/%s/?token=%s", c.endpoint, url.PathEscape(city), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Reading{}, fmt.Errorf("airquality: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("airquality: fetch %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Reading{}, fmt.Errorf("airquality: fetch %q: status %d: %w", city, resp.StatusCode, ErrNoData)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Reading{}, fmt.Errorf("airquality: read %q: %w", city, err)
	}

	return decodeFeed(city, body)
}

func decodeFeed(city string, body []byte) (Reading, error) {
	var env feedResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return Reading{}, fmt.Errorf("airquality: decode %q: %v: %w", city, err, ErrNoData)
	}
	if env.Status != "ok" {
		var msg string
		_ = json.Unmarshal(env.Data, &msg)
		return Reading{}, fmt.Errorf("airquality: %q: status %q %s: %w", city, env.Status, msg, ErrNoData)
	}

	var d feedData
	if err := json.Unmarshal(env.Data, &d); err != nil {
		return Reading{}, fmt.Errorf("airquality: decode %q data: %v: %w", city, err, ErrNoData)
	}
	var aqi float64
	if len(d.AQI) == 0 || string(d.AQI) == "null" {
		return Reading{}, fmt.Errorf("airquality: %q: aqi missing: %w", city, ErrNoData)
	}
	if err := json.Unmarshal(d.AQI, &aqi); err != nil {
		return Reading{}, fmt.Errorf("airquality: %q: aqi %s: %w", city, string(d.AQI), ErrNoData)
	}

	r := Reading{City: d.City.Name, AQI: aqi}
	if r.City == "" {
		r.City = city
	}
	if len(d.City.Geo) >= 2 {
		r.Lat, r.Lon, r.HasGeo = d.City.Geo[0], d.City.Geo[1], true
	}
	if d.Time.ISO != "" {
		if ts, err := time.Parse(time.RFC3339, d.Time.ISO); err == nil {
			r.Time = ts
		}
	}

	return r, nil
}

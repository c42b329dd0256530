// Package geocode provides the remote place-search client. It queries a
// Nominatim-style endpoint and returns at most five results per query.
// Failures are returned to the caller; the search resolver degrades them
// to an empty remote result set instead of failing the session.
package geocode

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// DefaultBaseURL is the public Nominatim search endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org/search"

// ResultLimit caps the number of results requested and returned per query.
const ResultLimit = 5

const defaultTimeout = 10 * time.Second

// Result is one place returned by the search endpoint. Latitude and
// longitude arrive as stringified decimals and require numeric parsing.
type Result struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Location parses the result's coordinate strings.
func (r Result) Location() (types.Location, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return types.Location{}, fmt.Errorf("parsing latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return types.Location{}, fmt.Errorf("parsing longitude %q: %w", r.Lon, err)
	}
	return types.Location{Lat: lat, Lng: lon}, nil
}

// Client is the place-search HTTP client.
type Client struct {
	http    *resty.Client
	baseURL string
	lang    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate search endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithAcceptLanguage sets the language preference sent with each query.
func WithAcceptLanguage(lang string) Option {
	return func(c *Client) { c.lang = lang }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// NewClient creates a place-search client. The User-Agent header is set on
// every request; the public endpoint rejects anonymous clients.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetTimeout(defaultTimeout).
			SetHeader("User-Agent", "ramen-reality/1.0"),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the endpoint for places matching query. At most
// ResultLimit results are returned. The caller owns retry and degradation
// policy; any transport, status, or decode failure surfaces as an error.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	params := map[string]string{
		"format": "json",
		"q":      query,
		"limit":  strconv.Itoa(ResultLimit),
	}
	if c.lang != "" {
		params["accept-language"] = c.lang
	}

	var results []Result
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&results).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("place search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("place search: unexpected status %s", resp.Status())
	}

	if len(results) > ResultLimit {
		results = results[:ResultLimit]
	}
	return results, nil
}

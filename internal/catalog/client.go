// Package catalog is the gateway to the remote product catalog API.
//
// A Client performs a single GET against the catalog endpoint and decodes the
// JSON array it returns into Products. Decoding is best-effort: a record that
// cannot be decoded is skipped, never failing the whole fetch. Transport
// failures and non-2xx responses surface as *FetchError. Nothing is retried.
// Concurrent FetchAll calls on one Client share a single request.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/rshade/shelfview/internal/logging"
	"github.com/rshade/shelfview/pkg/version"
)

// maxBodyBytes caps the catalog response size.
const maxBodyBytes = 32 << 20

// FetchError is the single error kind produced by the gateway.
type FetchError struct {
	Endpoint string
	// StatusCode is the HTTP status for non-success responses, 0 for transport failures.
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog request to %s failed: HTTP %d %s",
			e.Endpoint, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("catalog request to %s failed: %v", e.Endpoint, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Fetcher is implemented by anything that can download the full product list.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Product, error)
}

// Client fetches the product catalog over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	inflight   singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each fetch, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMinInterval throttles consecutive fetches to at most one per interval.
// A zero interval disables throttling.
func WithMinInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a Client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		userAgent:  version.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the catalog URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchAll downloads and decodes the full product list. A call made while
// another is in flight waits for and receives a copy of that result.
func (c *Client) FetchAll(ctx context.Context) ([]Product, error) {
	v, err, shared := c.inflight.Do(c.endpoint, func() (any, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	products, _ := v.([]Product)
	if shared {
		products = slices.Clone(products)
	}
	return products, nil
}

func (c *Client) fetch(ctx context.Context) ([]Product, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.fail(0, fmt.Errorf("waiting for refresh window: %w", err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, c.fail(0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	log.Debug().Ctx(ctx).Str("endpoint", c.endpoint).Msg("fetching catalog")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("endpoint", c.endpoint).Msg("catalog request failed")
		return nil, c.fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().Ctx(ctx).Int("status", resp.StatusCode).Str("endpoint", c.endpoint).
			Msg("catalog returned non-success status")
		return nil, c.fail(resp.StatusCode, errors.New(resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.fail(0, fmt.Errorf("reading response: %w", err))
	}

	products, skipped, err := decodeProducts(body)
	if err != nil {
		return nil, c.fail(0, err)
	}

	event := log.Info().Ctx(ctx)
	if skipped > 0 {
		event = log.Warn().Ctx(ctx)
	}
	event.Int("products", len(products)).
		Int("skipped", skipped).
		Dur("duration", time.Since(start)).
		Msg("catalog fetched")

	return products, nil
}

func (c *Client) fail(status int, cause error) *FetchError {
	return &FetchError{Endpoint: c.endpoint, StatusCode: status, Cause: cause}
}

// decodeProducts decodes a JSON array of products, skipping undecodable records.
func decodeProducts(body []byte) ([]Product, int, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, 0, fmt.Errorf("decoding product list: %w", err)
	}

	products := make([]Product, 0, len(records))
	skipped := 0
	for _, rec := range records {
		var p Product
		if err := json.Unmarshal(rec, &p); err != nil {
			skipped++
			continue
		}
		products = append(products, p)
	}
	return products, skipped, nil
}

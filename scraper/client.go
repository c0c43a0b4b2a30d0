// Package scraper collects raw profile records from news sites and
// extracts readable article text. Fetching is rate limited per host and
// retried with backoff so one slow or flaky site cannot hammer anyone or
// sink a batch.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"golang.org/x/time/rate"
)

const (
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	maxResponseSize = 2 << 20
)

// Client is a polite HTTP fetcher: one request per second per host, up to
// three attempts with exponential backoff on transport errors.
type Client struct {
	http    *http.Client
	perHost rate.Limit

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewClient creates a Client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a Client around a custom HTTP client (for testing).
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{
		http:     hc,
		perHost:  rate.Every(time.Second),
		limiters: make(map[string]*rate.Limiter),
	}
}

func (c *Client) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[host]
	if !ok {
		l = rate.NewLimiter(c.perHost, 1)
		c.limiters[host] = l
	}
	return l
}

// Get fetches rawURL and returns the body. Non-2xx responses are errors
// and are not retried; transport failures are.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("scraper: parse url %q: %w", rawURL, err)
	}

	if err := c.limiter(parsed.Host).Wait(ctx); err != nil {
		return nil, fmt.Errorf("scraper: rate limit wait for %s: %w", parsed.Host, err)
	}

	body, err := retry.DoWithData(
		func() ([]byte, error) {
			return c.get(ctx, rawURL)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.MaxJitter(500*time.Millisecond),
		retry.RetryIf(func(err error) bool {
			var status statusError
			return !errors.As(err, &status)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("scraper: fetch %s: %w", rawURL, err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError{code: resp.StatusCode}
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

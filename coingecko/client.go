// Package coingecko implements [neoxbridge.PriceSource] against the
// CoinGecko simple price API, with a short-lived in-memory cache.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/neoxbridge"
)

// Interface compliance check.
var _ neoxbridge.PriceSource = (*Client)(nil)

const (
	defaultBaseURL  = "https://api.coingecko.com/api/v3"
	defaultCacheTTL = 60 * time.Second
	defaultTimeout  = 10 * time.Second
	vsCurrency      = "usd"
)

// coinIDs maps accepted symbols to CoinGecko coin IDs.
var coinIDs = map[string]string{
	"NEO":      "neo",
	"GAS":      "gas",
	"BTC":      "bitcoin",
	"BITCOIN":  "bitcoin",
	"ETH":      "ethereum",
	"ETHEREUM": "ethereum",
}

// CoinID returns the CoinGecko ID for symbol, case-insensitively.
func CoinID(symbol string) (string, bool) {
	id, ok := coinIDs[strings.ToUpper(strings.TrimSpace(symbol))]
	return id, ok
}

type cached struct {
	price   float64
	fetched time.Time
}

// Client fetches USD prices. It is safe for concurrent use.
type Client struct {
	baseURL    string
	ttl        time.Duration
	timeout    time.Duration
	httpClient *http.Client
	logger     *log.Logger
	now        func() time.Time

	mu    sync.Mutex
	cache map[string]cached
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCacheTTL sets how long a fetched price is reused. Zero disables
// caching.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) { c.ttl = d }
}

// WithTimeout bounds each fetch.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for failed fetches.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithClock sets the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a [Client].
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		ttl:        defaultCacheTTL,
		timeout:    defaultTimeout,
		httpClient: http.DefaultClient,
		logger:     log.New(io.Discard),
		now:        time.Now,
		cache:      make(map[string]cached),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Price returns the USD price of symbol.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	id, ok := CoinID(symbol)
	if !ok {
		return 0, fmt.Errorf("coingecko: %q: %w", symbol, neoxbridge.ErrUnknownSymbol)
	}

	now := c.now()
	c.mu.Lock()
	if e, ok := c.cache[id]; ok && now.Sub(e.fetched) < c.ttl {
		c.mu.Unlock()
		return e.price, nil
	}
	c.mu.Unlock()

	price, err := c.fetch(ctx, id)
	if err != nil {
		c.logger.Warn("price fetch failed", "symbol", symbol, "err", err)
		return 0, err
	}

	c.mu.Lock()
	c.cache[id] = cached{price: price, fetched: now}
	c.mu.Unlock()
	return price, nil
}

func (c *Client) fetch(ctx context.Context, id string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	q := url.Values{"ids": {id}, "vs_currencies": {vsCurrency}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/simple/price?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("coingecko: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("coingecko: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("coingecko: HTTP %d", resp.StatusCode)
	}

	var body map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("coingecko: decode response: %w", err)
	}
	price, ok := body[id][vsCurrency]
	if !ok {
		return 0, fmt.Errorf("coingecko: no %s price for %s: %w", vsCurrency, id, neoxbridge.ErrUnknownSymbol)
	}
	return price, nil
}

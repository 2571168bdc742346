// Package currency fetches exchange rates and converts and formats menu
// prices. Rates are USD-based; conversion is display-only and must never
// fail a page render.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("currency")

// Fallback table used when a fetch fails with no valid cache to fall back on.
var fallbackRates = map[string]float64{"USD": 1, "EUR": 0.92, "GBP": 0.79}

// Cache holds the last fetched USD-based rate table. One Cache is constructed
// at startup and shared by every render; writes are whole-table replacements
// under the lock, so racing fetches are last-writer-wins.
type Cache struct {
	url    string
	ttl    time.Duration
	client *http.Client
	now    func() time.Time

	mu        sync.Mutex
	rates     map[string]float64
	fetchedAt time.Time
}

// NewCache builds a cache fetching from url with the given freshness window.
// timeout bounds each fetch; a timed-out fetch is treated as a failure.
func NewCache(url string, ttl, timeout time.Duration) *Cache {
	return &Cache{
		url:    url,
		ttl:    ttl,
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rates returns the cached table when it is fresh, otherwise fetches a new
// one. On fetch failure it returns the static fallback table and leaves the
// timestamp untouched, so the next call retries instead of sticking to the
// fallback. The lock is held across the fetch: near-simultaneous callers in
// a stale window share one request.
func (c *Cache) Rates(ctx context.Context) map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.rates
	}

	fetched, err := c.fetch(ctx)
	if err != nil {
		log.Warningf("rate fetch failed, using fallback table: %v", err)
		return fallbackRates
	}
	c.rates = fetched
	c.fetchedAt = c.now()
	return c.rates
}

func (c *Cache) fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned %s", resp.Status)
	}
	var parsed ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("rate provider returned empty table")
	}
	return parsed.Rates, nil
}

// IsStale reports whether the next Rates call would hit the network.
func (c *Cache) IsStale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rates == nil || c.now().Sub(c.fetchedAt) >= c.ttl
}

// Invalidate drops the cached table so the next Rates call refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates = nil
	c.fetchedAt = time.Time{}
}

// Package catalog talks to the upstream catalog service and keeps a short
// lived in-memory copy of the product map. When the upstream is down and
// nothing was ever fetched, a baked-in default catalog keeps the shop
// browsable.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
	"github.com/RoshanShah43/rs-bazar/internal/usecase"
)

type Client struct {
	base    string
	hc      *http.Client
	refresh time.Duration
	log     *slog.Logger

	mu        sync.RWMutex
	products  map[string]domain.Product
	fetchedAt time.Time
}

// NewClient builds a catalog client. An empty baseURL serves the default
// catalog only, which is what local development runs on.
func NewClient(baseURL string, timeout, refresh time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if refresh <= 0 {
		refresh = 5 * time.Minute
	}
	return &Client{
		base:    baseURL,
		hc:      &http.Client{Timeout: timeout},
		refresh: refresh,
		log:     log,
	}
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, bool) {
	c.ensure(ctx)
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	return p, ok
}

func (c *Client) ListProducts(ctx context.Context) map[string]domain.Product {
	c.ensure(ctx)
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]domain.Product, len(c.products))
	for id, p := range c.products {
		out[id] = p
	}
	return out
}

// ensure refreshes the product map when stale. Fetch failures keep the
// previous copy; a cold cache falls back to the default catalog.
func (c *Client) ensure(ctx context.Context) {
	c.mu.RLock()
	fresh := c.products != nil && time.Since(c.fetchedAt) < c.refresh
	c.mu.RUnlock()
	if fresh {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.products != nil && time.Since(c.fetchedAt) < c.refresh {
		return
	}

	if c.base != "" {
		fetched, err := c.fetch(ctx)
		if err == nil {
			c.products = fetched
			c.fetchedAt = time.Now()
			return
		}
		c.log.Warn("catalog fetch failed", "err", err)
		if c.products != nil {
			// keep serving the stale copy, retry on the next call
			return
		}
	}

	c.products = Defaults()
	c.fetchedAt = time.Now()
}

func (c *Client) fetch(ctx context.Context) (map[string]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/products", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service: status %d", resp.StatusCode)
	}

	var list []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	out := make(map[string]domain.Product, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

var _ usecase.CatalogProvider = (*Client)(nil)

// Package sixt is the client for the dealership's car-sales inventory API.
package sixt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"skideal/internal/adapters/observability"
	"skideal/internal/domain"
)

const service = "sales"

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New builds a client for base. Calls are made once: no retry or backoff,
// the agent decides whether to ask again.
func New(base string, rps int, timeout time.Duration) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("sales base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var _ domain.SalesClient = (*Client)(nil)

// ---- Public API ----

func (c *Client) Models(ctx context.Context) (any, error) {
	return c.get(ctx, "models", "/models")
}

func (c *Client) ZeroKmCars(ctx context.Context) (any, error) {
	return c.get(ctx, "zero_km_cars", "/zero-km-cars")
}

func (c *Client) FirstHandCar(ctx context.Context, importerModel string) (any, error) {
	return c.get(ctx, "first_hand_car", "/first-hand-cars/"+url.PathEscape(importerModel))
}

func (c *Client) ZeroKmCar(ctx context.Context, carID string) (any, error) {
	return c.get(ctx, "zero_km_car", "/zero-km-cars/"+url.PathEscape(carID))
}

// ---- Internals ----

// get performs a rate-limited GET and decodes the JSON payload as-is.
func (c *Client) get(ctx context.Context, endpoint, path string) (any, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "skideal/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var out any
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", endpoint, err)
		}
		return out, nil

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/fitform/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client fetches product records from the storefront platform's public
// JSON endpoints (GET {base}/products/{handle}.js)
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new storefront client
func NewClient(baseURL string) *Client {
	// Storefront JSON endpoints throttle around 2 requests/second per client
	limiter := rate.NewLimiter(rate.Limit(2), 4)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait before retry attempt n (1-based)
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500<<(attempt-1)) * time.Millisecond
}

// GetProduct fetches and normalizes the product record for a handle.
// Transient failures are retried up to 3 times with backoff; a 404 maps to
// domain.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, handle string) (*domain.Product, error) {
	if handle == "" {
		return nil, domain.ErrInvalidRequest
	}

	reqURL := fmt.Sprintf("%s/products/%s.js", c.baseURL, url.PathEscape(handle))

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[STOREFRONT] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			if c.debug {
				log.Printf("[STOREFRONT] throttled (attempt %d)", attempt)
			}
			lastErr = domain.ErrRateLimited
			time.Sleep(exponentialBackoff(attempt))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[STOREFRONT] status %d (attempt %d): %s", resp.StatusCode, attempt, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrStorefrontAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var payload productPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode product payload: %w", err)
		}

		product := MapToProduct(&payload)
		if c.debug {
			log.Printf("[STOREFRONT] resolved %q: %d variants, %d options",
				handle, len(product.Variants), len(product.Options))
		}
		return product, nil
	}

	return nil, lastErr
}

// doRequest executes an HTTP GET with proper headers and error wrapping
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "FitForm/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorefrontAPIFailure, err)
	}

	return resp, nil
}

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ErrSourceUnavailable marks a failure to reach the source at all.
// The extractor wraps first-page failures with it; callers check it
// with errors.Is.
var ErrSourceUnavailable = errors.New("source unavailable")

// Client defines the interface for source API operations.
type Client interface {
	// FetchPage retrieves one page of the collection at the given offset.
	FetchPage(ctx context.Context, limit, skip int) (*Page, error)
	// UpdateProduct sends a field update for a single record and returns
	// the echoed record on success.
	UpdateProduct(ctx context.Context, id int, payload map[string]any) (map[string]any, error)
	// Close releases idle connections held by the client.
	Close()
}

// retryableStatus is the set of response codes worth retrying.
var retryableStatus = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// NewClient creates an HTTP client for the source API. The underlying
// connection pool is shared across all requests made through this client
// and is released by Close.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		cfg:     cfg,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

type httpClient struct {
	cfg     Config
	baseURL string
	http    *http.Client
}

func (c *httpClient) FetchPage(ctx context.Context, limit, skip int) (*Page, error) {
	url := fmt.Sprintf("%s/products?limit=%d&skip=%d", c.baseURL, limit, skip)

	body, err := c.doWithRetry(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode page at skip=%d: %w", skip, err)
	}
	if page.Products == nil {
		page.Products = []RawProduct{}
	}

	return &page, nil
}

func (c *httpClient) UpdateProduct(ctx context.Context, id int, payload map[string]any) (map[string]any, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for product %d: %w", id, err)
	}

	body, err := c.doWithRetry(ctx, http.MethodPut, url, encoded)
	if err != nil {
		return nil, err
	}

	var echoed map[string]any
	if err := json.Unmarshal(body, &echoed); err != nil {
		return nil, fmt.Errorf("failed to decode response for product %d: %w", id, err)
	}

	return echoed, nil
}

func (c *httpClient) Close() {
	c.http.CloseIdleConnections()
}

// doWithRetry issues the request, retrying retryable statuses and transport
// faults with exponential backoff. It returns the response body of the
// first successful attempt.
func (c *httpClient) doWithRetry(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	attempts := c.cfg.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	backoff := time.Duration(c.cfg.RetryDelayMs) * time.Millisecond
	if backoff <= 0 {
		backoff = time.Second
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "catalog-sync/1.0")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				lastErr = readErr
				continue
			}
			return body, nil
		}

		lastErr = fmt.Errorf("%s %s returned status %d", method, url, resp.StatusCode)
		if _, retryable := retryableStatus[resp.StatusCode]; !retryable {
			return nil, lastErr
		}
	}

	return nil, lastErr
}

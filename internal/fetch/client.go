// Package fetch provides the HTTP client for the country code source page.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hightemp/ccgen/internal/config"
	"golang.org/x/net/html/charset"
)

// Client downloads the source page. It makes exactly one request per Get.
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
}

// NewClient creates a new client for url with the default timeout.
func NewClient(url string) *Client {
	return NewClientWithTimeout(url, config.DefaultTimeout)
}

// NewClientWithTimeout creates a new client for url with a custom timeout.
func NewClientWithTimeout(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:       url,
		userAgent: config.UserAgent("dev"),
	}
}

// SetUserAgent overrides the User-Agent header.
func (c *Client) SetUserAgent(ua string) {
	c.userAgent = ua
}

// URL returns the address the client fetches.
func (c *Client) URL() string {
	return c.url
}

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// Get fetches the page and returns its body decoded to UTF-8 text.
func (c *Client) Get(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	// Honour the declared charset; pages without one are sniffed.
	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}

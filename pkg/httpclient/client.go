// Package httpclient provides the HTTP client used for fetches that go
// around the Data API, currently only the public channel Atom feed.
package httpclient

import (
	"fmt"
	"net/http"
	"time"
)

// HTTPClient wraps an http.Client with browser-like headers; the feed
// endpoint serves XML to browsers without any API key.
type HTTPClient struct {
	client *http.Client
}

// NewClient creates an HTTP client with a bounded request timeout.
func NewClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Do executes the request with feed-friendly headers applied.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/atom+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	return c.client.Do(req)
}

// Get is a convenience method for GET requests. Non-2xx responses are
// turned into errors so callers never parse an error page as a feed.
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}
	return resp, nil
}

// backend/src/services/feed_client.go
package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FeedClient fetches the raw feed response text. Injected into the feed
// service so load behavior can be tested without a network.
type FeedClient interface {
	FetchFeed(ctx context.Context) (string, error)
}

type httpFeedClient struct {
	httpClient *http.Client
	feedURL    string
	maxBytes   int64
}

// NewHTTPFeedClient returns a FeedClient that GETs the given feed URL.
// maxBytes caps how much of the response body is read; the feed is a small
// spreadsheet export and anything past the cap is not a feed we want.
func NewHTTPFeedClient(feedURL string, timeout time.Duration, maxBytes int64) FeedClient {
	return &httpFeedClient{
		httpClient: &http.Client{Timeout: timeout},
		feedURL:    feedURL,
		maxBytes:   maxBytes,
	}
}

func (c *httpFeedClient) FetchFeed(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("building feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("feed request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return "", fmt.Errorf("reading feed response: %w", err)
	}
	return string(body), nil
}

package news

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public Top Stories API root.
const DefaultBaseURL = "https://api.nytimes.com/svc/topstories/v2"

// StatusError is returned when the API answers with a non-success status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.Code)
}

// Client fetches top stories for a section. One GET per call, no retry;
// a failed attempt is terminal until the caller re-triggers it.
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	rss     *rssFetcher
}

// NewClient builds a client against baseURL. An empty baseURL selects
// the public API root. With no API key configured every call falls back
// to the public per-section RSS feed.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := resty.New()
	httpClient.SetTimeout(timeout)

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		rss:     newRSSFetcher(timeout),
	}
}

// TopStories fetches the current batch for a category. The returned
// slice is never nil on success; a response without results yields an
// empty batch.
func (c *Client) TopStories(ctx context.Context, category Category) ([]Article, error) {
	if c.apiKey == "" {
		return c.rss.Fetch(ctx, category)
	}

	url := fmt.Sprintf("%s/%s.json", c.baseURL, category.Endpoint())

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("api-key", c.apiKey).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s stories: %w", category, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	var body topStoriesResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decoding %s stories: %w", category, err)
	}

	if body.Results == nil {
		return []Article{}, nil
	}
	return body.Results, nil
}

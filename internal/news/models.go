package news

import (
	"strings"
	"time"
)

// Article is one story as returned by the Top Stories API. The API
// guarantees no stable identifier, so callers key off position.
type Article struct {
	Section       string       `json:"section"`
	Title         string       `json:"title"`
	Abstract      string       `json:"abstract"`
	URL           string       `json:"url"`
	Byline        string       `json:"byline"`
	PublishedDate time.Time    `json:"published_date"`
	Multimedia    []Multimedia `json:"multimedia"`
}

// Multimedia is one media item attached to an article.
type Multimedia struct {
	URL     string `json:"url"`
	Format  string `json:"format"`
	Caption string `json:"caption"`
}

// topStoriesResponse is the response envelope. Results may be absent;
// any other shape decodes to an empty batch.
type topStoriesResponse struct {
	Status  string    `json:"status"`
	Section string    `json:"section"`
	Results []Article `json:"results"`
}

// ImageURL returns the first media item's URL, or "" when the article
// carries no usable media.
func (a Article) ImageURL() string {
	for _, m := range a.Multimedia {
		if m.URL != "" {
			return m.URL
		}
	}
	return ""
}

// HasURL reports whether the article links anywhere. The upstream API
// sometimes serializes missing links as the literal string "null".
func (a Article) HasURL() bool {
	u := strings.TrimSpace(a.URL)
	return u != "" && u != "null"
}

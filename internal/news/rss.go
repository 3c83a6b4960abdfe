package news

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

// defaultRSSBase is the public per-section RSS root. The RSS path needs
// no credential, which makes it the fallback when no API key is set.
const defaultRSSBase = "https://rss.nytimes.com/services/xml/rss/nyt"

type rssFetcher struct {
	http   *resty.Client
	parser *gofeed.Parser
	base   string
}

func newRSSFetcher(timeout time.Duration) *rssFetcher {
	httpClient := resty.New()
	httpClient.SetTimeout(timeout)

	return &rssFetcher{
		http:   httpClient,
		parser: gofeed.NewParser(),
		base:   defaultRSSBase,
	}
}

// sectionFile maps a category onto its RSS file name. The RSS side
// capitalizes sections and calls the aggregate "HomePage".
func sectionFile(category Category) string {
	if category == CategoryAll {
		return "HomePage"
	}
	return category.String()
}

// Fetch retrieves and parses the section feed, mapping items into the
// same Article shape the API path produces.
func (r *rssFetcher) Fetch(ctx context.Context, category Category) ([]Article, error) {
	url := fmt.Sprintf("%s/%s.xml", r.base, sectionFile(category))

	resp, err := r.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s feed: %w", category, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	feed, err := r.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parsing %s feed: %w", category, err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		article := Article{
			Section:  category.String(),
			Title:    item.Title,
			Abstract: item.Description,
			URL:      item.Link,
		}
		if len(item.Authors) > 0 {
			article.Byline = item.Authors[0].Name
		}
		if item.PublishedParsed != nil {
			article.PublishedDate = *item.PublishedParsed
		}
		for _, enc := range item.Enclosures {
			if enc.URL != "" {
				article.Multimedia = append(article.Multimedia, Multimedia{URL: enc.URL, Format: enc.Type})
			}
		}
		if item.Image != nil && item.Image.URL != "" {
			article.Multimedia = append(article.Multimedia, Multimedia{URL: item.Image.URL})
		}
		articles = append(articles, article)
	}

	return articles, nil
}

package news

import "strings"

// Filter reduces articles to those whose title or abstract contains
// term as a case-insensitive substring. Relative order is preserved and
// the input slice is never mutated; an empty term returns the input
// unchanged.
func Filter(articles []Article, term string) []Article {
	term = strings.TrimSpace(term)
	if term == "" {
		return articles
	}

	needle := strings.ToLower(term)
	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Abstract), needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eabolaji/worldnews/internal/news"
	"github.com/eabolaji/worldnews/internal/theme"
)

func testStyles() Styles {
	return NewStyles(theme.PaletteFor(false))
}

func TestRenderCardShowsLinkForValidURL(t *testing.T) {
	a := news.Article{
		Title:    "Markets Rally",
		Abstract: "Stocks climbed on Tuesday.",
		URL:      "https://www.nytimes.com/markets",
	}

	card := renderCard(a, testStyles(), 38, 150, false)

	assert.Contains(t, card, "Markets Rally")
	assert.Contains(t, card, "Read More")
	assert.NotContains(t, card, MsgNoURL)
}

func TestRenderCardDisabledForMissingURL(t *testing.T) {
	for _, url := range []string{"", "null", "  "} {
		a := news.Article{Title: "No Link Here", Abstract: "Cannot open.", URL: url}

		card := renderCard(a, testStyles(), 38, 150, false)

		assert.Contains(t, card, MsgNoURL, "url=%q", url)
		assert.NotContains(t, card, "Read More", "url=%q", url)
	}
}

func TestRenderCardShowsImagePlaceholder(t *testing.T) {
	a := news.Article{Title: "Plain Story", URL: "https://example.com"}

	card := renderCard(a, testStyles(), 38, 150, false)

	assert.Contains(t, card, MsgNoImage)
}

func TestRenderGridEmptyState(t *testing.T) {
	out := renderGrid(nil, testStyles(), 120, 38, 150, 0)
	assert.Contains(t, out, MsgNoNews)
}

func TestRenderGridPreservesOrder(t *testing.T) {
	articles := []news.Article{
		{Title: "First Story", URL: "https://example.com/1"},
		{Title: "Second Story", URL: "https://example.com/2"},
		{Title: "Third Story", URL: "https://example.com/3"},
	}

	out := renderGrid(articles, testStyles(), 200, 38, 150, 0)

	first := strings.Index(out, "First Story")
	second := strings.Index(out, "Second Story")
	third := strings.Index(out, "Third Story")
	assert.True(t, first >= 0 && second > first && third > second)
}

func TestGridColumns(t *testing.T) {
	assert.Equal(t, 1, gridColumns(10, 38))
	assert.Equal(t, 1, gridColumns(38, 38))
	assert.Equal(t, 3, gridColumns(120, 38))
	assert.Equal(t, 1, gridColumns(0, 38))
}

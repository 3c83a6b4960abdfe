package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/eabolaji/worldnews/internal/news"
)

// fetchNews loads a category off the Elm loop. The seq travels with
// the result so Update can tell a current completion from a stale one.
func (a *App) fetchNews(category news.Category, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.config.API.HTTPTimeout)
		defer cancel()

		articles, err := a.source.TopStories(ctx, category)
		return newsLoadedMsg{seq: seq, articles: articles, err: err}
	}
}

func (a *App) indexArticles(articles []news.Article) tea.Cmd {
	if a.engine == nil {
		return nil
	}
	return func() tea.Msg {
		if err := a.engine.Index(articles); err != nil {
			a.log.Warnw("indexing failed", "error", err)
		}
		return nil
	}
}

func (a *App) performSearch(query string) tea.Cmd {
	if a.engine == nil {
		return nil
	}
	return func() tea.Msg {
		results, err := a.engine.Search(query, a.config.UI.MaxResults)
		if err != nil {
			a.log.Warnw("search failed", "query", query, "error", err)
			return searchResultsMsg{}
		}
		return searchResultsMsg{results: results}
	}
}

// renderArticle prepares reader content from the article fields. NYT
// payloads carry no body text, so the reader shows the metadata and
// abstract with a pointer to the full story.
func (a *App) renderArticle(article news.Article) tea.Cmd {
	width := a.width
	renderer, err := a.markdownRenderer(width)
	return func() tea.Msg {
		if err != nil {
			return articleRenderedMsg{content: article.Abstract}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", article.Title)
		if article.Byline != "" {
			fmt.Fprintf(&b, "*%s*\n\n", article.Byline)
		}
		if !article.PublishedDate.IsZero() {
			fmt.Fprintf(&b, "Published %s\n\n", article.PublishedDate.Format("Mon, 02 Jan 2006 15:04"))
		}
		fmt.Fprintf(&b, "---\n\n%s\n\n", article.Abstract)
		if article.HasURL() {
			fmt.Fprintf(&b, "[Read the full story](%s)\n", article.URL)
		} else {
			fmt.Fprintf(&b, "_%s_\n", MsgNoURL)
		}

		rendered, rerr := renderer.Render(b.String())
		if rerr != nil {
			return articleRenderedMsg{content: b.String()}
		}
		return articleRenderedMsg{content: rendered}
	}
}

// markdownRenderer caches the glamour renderer per width. Building one
// is expensive enough to notice on every article open.
func (a *App) markdownRenderer(width int) (*glamour.TermRenderer, error) {
	wrap := width - 4
	if wrap > a.config.UI.WordWrapMaxWidth {
		wrap = a.config.UI.WordWrapMaxWidth
	}
	if wrap < a.config.UI.WordWrapMinWidth {
		wrap = a.config.UI.WordWrapMinWidth
	}

	if a.glamourRenderer != nil && a.rendererWidth == wrap {
		return a.glamourRenderer, nil
	}

	style := "light"
	if a.dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	a.glamourRenderer = renderer
	a.rendererWidth = wrap
	return renderer, nil
}

// invalidateRenderer drops the cached renderer, used when the theme
// flips so the next article picks up the matching glamour style.
func (a *App) invalidateRenderer() {
	a.glamourRenderer = nil
	a.rendererWidth = 0
}

func (a *App) openArticle(article news.Article) tea.Cmd {
	if !article.HasURL() {
		a.status = MsgNoURL
		return nil
	}
	return func() tea.Msg {
		if err := a.launcher.Open(article.URL); err != nil {
			a.log.Warnw("opening article failed", "url", article.URL, "error", err)
			return errorMsg{err: fmt.Errorf("opening article: %w", err)}
		}
		return nil
	}
}

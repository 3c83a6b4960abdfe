package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eabolaji/worldnews/internal/news"
)

// The card and grid renderers are pure functions of their inputs: no
// internal state, no side effects. Cards render in input order.

// renderCard draws one article card. Cards whose article has no usable
// URL render in a faint disabled state and never carry a link line.
func renderCard(a news.Article, st Styles, width, maxAbstract int, selected bool) string {
	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	image := MsgNoImage
	if url := a.ImageURL(); url != "" {
		image = truncateMiddle(url, contentWidth)
	}

	title := a.Title
	if title == "" {
		title = "(untitled)"
	}

	var link string
	if a.HasURL() {
		link = st.Link.Render("Read More →")
	} else {
		link = st.Disabled.Render(MsgNoURL)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		st.Muted.Render(image),
		st.CardTitle.Width(contentWidth).Render(truncateEnd(title, contentWidth*3)),
		st.CardAbstract.Width(contentWidth).Render(truncateEnd(a.Abstract, maxAbstract)),
		link,
	)

	frame := st.Card
	switch {
	case !a.HasURL():
		frame = st.CardDisabled
	case selected:
		frame = st.CardSelected
	}

	return frame.Width(width - 2).Render(body)
}

// renderGrid lays cards out in rows, deriving the column count from the
// available width. An empty sequence renders the fixed empty-state
// message instead.
func renderGrid(articles []news.Article, st Styles, width, cardWidth, maxAbstract, cursor int) string {
	if len(articles) == 0 {
		return st.Muted.Render(MsgNoNews)
	}

	cols := gridColumns(width, cardWidth)

	var rows []string
	for start := 0; start < len(articles); start += cols {
		end := start + cols
		if end > len(articles) {
			end = len(articles)
		}

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(articles[i], st, cardWidth, maxAbstract, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// gridColumns derives how many cards fit side by side. Always at least
// one, so narrow terminals degrade to a single column.
func gridColumns(width, cardWidth int) int {
	if cardWidth <= 0 {
		return 1
	}
	cols := width / cardWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

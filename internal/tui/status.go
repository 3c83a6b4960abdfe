package tui

import "fmt"

// Canonical short status messages used across the app.
const (
	MsgLoading   = "Loading news…"
	MsgNoNews    = "No news available."
	MsgNoURL     = "No URL available for this article"
	MsgNoImage   = "No image available"
	MsgNoResults = "No results"
)

func MsgFetched(category string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%s: 1 story", category)
	}
	return fmt.Sprintf("%s: %d stories", category, count)
}

func MsgResultsCount(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

func MsgThemeChanged(dark bool) string {
	if dark {
		return "Dark mode"
	}
	return "Light mode"
}

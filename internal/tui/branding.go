package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/eabolaji/worldnews/internal/theme"
)

const AppName = "worldnews"

// ASCII art logo lines - canonical definition
var LogoLines = []string{
	"█   █ █▀▀█ █▀▀█ █    █▀▀▄",
	"█ █ █ █  █ █▄▄▀ █    █  █",
	"▀▄▀▄▀ ▀▀▀▀ ▀ ▀▀ ▀▀▀▀ ▀▀▀ ",
	"  trending news, in the terminal",
}

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#58A6FF"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#D2A8FF"),
	lipgloss.Color("#58A6FF"),
}

// Styles holds every style the interface renders with. A fresh set is
// derived from the active palette whenever the theme flips.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Muted        lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Link         lipgloss.Style
	Disabled     lipgloss.Style
	CardTitle    lipgloss.Style
	CardAbstract lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardDisabled lipgloss.Style
	StatusBar    lipgloss.Style
	Separator    lipgloss.Style
}

// NewStyles derives the full style set from a palette.
func NewStyles(p theme.Palette) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.CardBorder).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Help: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(p.Success),
		Link: lipgloss.NewStyle().
			Foreground(p.Primary).
			Underline(true),
		Disabled: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Faint(true),
		CardTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		CardAbstract: lipgloss.NewStyle().
			Foreground(p.Muted),
		Card:         card,
		CardSelected: card.BorderForeground(p.Selected),
		CardDisabled: card.BorderForeground(p.Muted).Faint(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Separator: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

// ShowBanner prints the startup banner before the TUI takes the screen.
func ShowBanner(version string) {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("NYT Top Stories client %s", versionTag))
	} else {
		lines = append(lines, "NYT Top Stories client")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}

		colorIdx := i % len(BannerColors)
		style := lipgloss.NewStyle().
			Foreground(BannerColors[colorIdx]).
			Bold(i < len(LogoLines))

		coloredLines = append(coloredLines, style.Render(line))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(1, 3).
		MarginTop(1)

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)
	output := borderStyle.Render(banner)

	fmt.Println(lipgloss.NewStyle().
		Width(70).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(output))
}

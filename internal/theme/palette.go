package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds every color the interface draws with. Two fixed
// palettes exist, one per mode; styles derive from the active one.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	CardBorder lipgloss.Color
	Selected   lipgloss.Color
}

var darkPalette = Palette{
	Primary:    lipgloss.Color("#58A6FF"),
	Secondary:  lipgloss.Color("#4ECDC4"),
	Accent:     lipgloss.Color("#D2A8FF"),
	Text:       lipgloss.Color("#EAEAEA"),
	Muted:      lipgloss.Color("#94A3B8"),
	Error:      lipgloss.Color("#F87171"),
	Success:    lipgloss.Color("#4ADE80"),
	CardBorder: lipgloss.Color("#30363D"),
	Selected:   lipgloss.Color("#FFE66D"),
}

var lightPalette = Palette{
	Primary:    lipgloss.Color("#1D4ED8"),
	Secondary:  lipgloss.Color("#0E7490"),
	Accent:     lipgloss.Color("#7C3AED"),
	Text:       lipgloss.Color("#1F2937"),
	Muted:      lipgloss.Color("#64748B"),
	Error:      lipgloss.Color("#DC2626"),
	Success:    lipgloss.Color("#15803D"),
	CardBorder: lipgloss.Color("#CBD5E1"),
	Selected:   lipgloss.Color("#B45309"),
}

// PaletteFor returns the palette for the given mode.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

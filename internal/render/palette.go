// Package render formats missed prayers and prayer times for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jwulff/kaza-go/internal/domain"
)

// Palette holds the accent colours for one theme.
type Palette struct {
	Primary   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
}

var (
	LightPalette = Palette{
		Primary:   lipgloss.Color("#10b981"),
		Text:      lipgloss.Color("#0f172a"),
		Muted:     lipgloss.Color("#64748b"),
		Highlight: lipgloss.Color("#ecfdf5"),
	}
	DarkPalette = Palette{
		Primary:   lipgloss.Color("#10b981"),
		Text:      lipgloss.Color("#f8fafc"),
		Muted:     lipgloss.Color("#cbd5e1"),
		Highlight: lipgloss.Color("#064e3b"),
	}
)

// PaletteFor picks the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// Glyph maps an icon identifier to a terminal symbol.
func Glyph(icon string) string {
	switch icon {
	case domain.IconMoon:
		return "☾"
	case domain.IconSun:
		return "☀"
	}
	return "•"
}

// Badge renders a prayer's icon and name in its own colours.
func Badge(d domain.Display) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(d.IconColor)).
		Background(lipgloss.Color(d.IconBg)).
		Padding(0, 1).
		Render(Glyph(d.Icon) + " " + d.Name)
}

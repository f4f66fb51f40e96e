package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue   = lipgloss.AdaptiveColor{Dark: "#4A90E2", Light: "#2B6CB0"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#F39C12", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#E74C3C", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#AAB8C2", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#D3D3D3", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#3C3C3C", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the application title bar and list titles.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps the entry detail and help content.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for rows in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the focused row.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard hints.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// DimmedStyle renders secondary text such as dates.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// DoneStyle renders completed goals.
var DoneStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Strikethrough(true)

// NumberStyle renders the "Entry #N" label.
var NumberStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// FooterStyle renders the brand line under the launcher menu.
var FooterStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Align(lipgloss.Center)

// MessageStyle colors a status-bar message by outcome: "ok",
// "not found" or anything else (treated as an error).
func MessageStyle(status string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch status {
	case "ok":
		return base.Foreground(ColorGreen)
	case "not found":
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorRed)
	}
}

// Apply selects the background mode named by the display.theme setting:
// "dark", "light", or "default"/"" to keep terminal detection.
func Apply(name string) error {
	switch name {
	case "", "default":
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

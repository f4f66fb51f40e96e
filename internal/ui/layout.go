package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yournal/internal/theme"
)

// Layout manages the header / content / status bar split of the screen.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// The status bar takes two lines: the last message and the key hints.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 2,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height left for the active view.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight, 0)
}

// RenderHeader renders the title on the left and section on the right.
func (l Layout) RenderHeader(title, section string) string {
	return l.bar(theme.HeaderStyle, title, section)
}

// RenderStatusBar renders the last operation message above the key hints.
// An empty message leaves a blank line so the content does not jump.
func (l Layout) RenderStatusBar(message, hints string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Width(l.Width).Render(message),
		l.bar(theme.StatusBarStyle, hints, ""),
	)
}

// bar fills the full width with style, left and right aligned parts.
func (l Layout) bar(style lipgloss.Style, left, right string) string {
	leftRendered := style.Render(left)
	rightRendered := ""
	if right != "" {
		rightRendered = style.Render(right)
	}

	gap := max(l.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 0)

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, filler, rightRendered)
}

// RenderWithFrame stacks header, content and status bar.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

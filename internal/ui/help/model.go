// Package help renders the key reference for the screen the user came from.
package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yournal/internal/keys"
	"github.com/nhle/yournal/internal/theme"
)

// Context selects which bindings the overlay lists.
type Context int

const (
	ContextMenu Context = iota
	ContextJournal
	ContextEntry
	ContextGoals
)

var contextTitles = map[Context]string{
	ContextMenu:    "Launcher",
	ContextJournal: "Journal",
	ContextEntry:   "Entry",
	ContextGoals:   "Self Goals",
}

// bindings adapts a fixed set of groups to help.KeyMap.
type bindings [][]key.Binding

func (b bindings) ShortHelp() []key.Binding {
	if len(b) == 0 {
		return nil
	}
	return b[0]
}

func (b bindings) FullHelp() [][]key.Binding { return b }

// Model is the help overlay view.
type Model struct {
	keys    *keys.KeyMap
	help    help.Model
	context Context
	width   int
	height  int
}

// New creates a help view for the launcher context.
func New(k *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	h.ShowAll = true
	return Model{
		keys:   k,
		help:   h,
		width:  width,
		height: height,
	}
}

// SetContext picks the screen whose keys are shown.
func (m *Model) SetContext(c Context) {
	m.context = c
}

// Context reports the screen whose keys are shown.
func (m Model) Context() Context {
	return m.context
}

// Bindings returns the groups listed for the current context.
func (m Model) Bindings() [][]key.Binding {
	k := m.keys
	global := []key.Binding{k.Journal, k.Goals, k.Command, k.Help, k.Quit}

	switch m.context {
	case ContextJournal:
		return [][]key.Binding{
			{k.Up, k.Down, k.Select, k.Search, k.Back},
			{k.New, k.Edit, k.Delete, k.Renumber},
			global,
		}
	case ContextEntry:
		return [][]key.Binding{
			{k.Up, k.Down, k.Back},
			{k.Edit, k.Delete},
			global,
		}
	case ContextGoals:
		return [][]key.Binding{
			{k.Up, k.Down, k.Search, k.Back},
			{k.New, k.Complete},
			global,
		}
	default:
		return [][]key.Binding{
			{k.Up, k.Down, k.Select},
			global,
		}
	}
}

// View renders the context's keys plus the palette commands.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	m.help.Width = m.width - 4

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(contextTitles[m.context]+" keys"),
		m.help.View(bindings(m.Bindings())),
		"",
		titleStyle.Render("Commands"),
		theme.DimmedStyle.Render("journal  goals  new  renumber  help  quit"),
	)

	return theme.DetailPanelStyle.
		Width(max(m.width-4, 0)).
		Height(max(m.height-4, 0)).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}

package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yournal/internal/keys"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// Action names carried by ActionMsg.
const (
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// ActionMsg asks the parent to act on the displayed entry.
type ActionMsg struct {
	Action string
	Number int
}

// Model shows a single journal entry in a scrollable viewport.
type Model struct {
	entry    *model.JournalEntry
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new detail view model.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Edit):
			if m.entry != nil {
				return m, m.action(ActionEdit)
			}

		case key.Matches(msg, m.keys.Delete):
			if m.entry != nil {
				return m, m.action(ActionDelete)
			}
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) action(name string) tea.Cmd {
	number := m.entry.Number
	return func() tea.Msg {
		return ActionMsg{Action: name, Number: number}
	}
}

// View renders the detail view.
func (m Model) View() string {
	if m.entry == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No entry selected")
	}

	return m.viewport.View()
}

// renderContent builds the viewport body: label, title, date, then content.
func (m Model) renderContent() string {
	e := m.entry
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)

	date := e.Date
	if t, err := e.ParsedDate(); err == nil {
		date = t.Format("Monday") + ", " + e.Date
	}
	header := fmt.Sprintf(
		"%s  %s",
		theme.NumberStyle.Render(e.GetLabel()),
		theme.DimmedStyle.Render(date),
	)

	body := e.Content
	if strings.TrimSpace(body) == "" {
		body = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("No content")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		titleStyle.Render(e.Title),
		"",
		sepStyle.Render(strings.Repeat("─", max(min(m.width-4, 80), 0))),
		"",
		lipgloss.NewStyle().Width(max(m.width-4, 20)).Render(body),
	)
}

// SetEntry updates the entry being displayed and re-renders the content.
func (m *Model) SetEntry(entry model.JournalEntry) {
	m.entry = &entry
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Entry returns the displayed entry, if any.
func (m Model) Entry() (model.JournalEntry, bool) {
	if m.entry == nil {
		return model.JournalEntry{}, false
	}
	return *m.entry, true
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	if m.entry != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yournal/internal/keys"
	"github.com/nhle/yournal/internal/theme"
)

// Section is one destination offered by the launcher.
type Section int

const (
	SectionJournal Section = iota
	SectionGoals
)

func (s Section) String() string {
	if s == SectionGoals {
		return "Self Goals"
	}
	return "Journal"
}

// ChosenMsg is sent when the user picks a section.
type ChosenMsg struct {
	Section Section
}

var sections = []Section{SectionJournal, SectionGoals}

// Model is the launcher shown at startup.
type Model struct {
	keys   *keys.KeyMap
	cursor int
	width  int
	height int
}

// New creates the launcher.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{keys: k, width: width, height: height}
}

// Cursor returns the highlighted section.
func (m Model) Cursor() Section {
	return sections[m.cursor]
}

// Update moves the cursor and emits ChosenMsg on selection.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(sections)-1 {
			m.cursor++
		}
	case key.Matches(km, m.keys.Journal):
		return m, choose(SectionJournal)
	case key.Matches(km, m.keys.Goals):
		return m, choose(SectionGoals)
	case key.Matches(km, m.keys.Select):
		return m, choose(sections[m.cursor])
	}
	return m, nil
}

func choose(s Section) tea.Cmd {
	return func() tea.Msg { return ChosenMsg{Section: s} }
}

// View renders the launcher centered in the content area.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.HeaderStyle.Render("Yournal"))
	b.WriteString("\n\n")

	for i, s := range sections {
		line := fmt.Sprintf("%d  %s", i+1, s)
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.FooterStyle.Render("write it down, check it off"))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

// SetSize updates the launcher dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

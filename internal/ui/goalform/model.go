package goalform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yournal/internal/theme"
	"github.com/nhle/yournal/internal/validate"
)

// SubmittedMsg carries the description of a new goal.
type SubmittedMsg struct {
	Description string
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// Model is a single-field form for adding a self goal.
type Model struct {
	form        *huh.Form
	description *string
	width       int
}

// New creates a goal form.
func New(width int) Model {
	return Model{description: new(string), width: width}
}

// Start resets and focuses the form.
func (m *Model) Start() tea.Cmd {
	*m.description = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Placeholder("What do you want to achieve?").
				Value(m.description).
				Validate(func(s string) error { return validate.Goal(s) }),
		),
	).WithWidth(min(max(m.width-4, 40), 100))
	return m.form.Init()
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		desc := *m.description
		return m, func() tea.Msg { return SubmittedMsg{Description: desc} }
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("New Goal")
	return lipgloss.NewStyle().Padding(1, 2).Render(title + "\n" + m.form.View())
}

// SetSize updates the form width.
func (m *Model) SetSize(width int) {
	m.width = width
}

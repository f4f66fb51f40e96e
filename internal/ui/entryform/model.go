package entryform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/theme"
	"github.com/nhle/yournal/internal/validate"
)

// SubmittedMsg is dispatched when the form completes. Number is zero for a
// new entry and the edited entry's number otherwise.
type SubmittedMsg struct {
	Number  int
	Title   string
	Content string
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title   string
	content string
}

// Model is the Bubble Tea model for the entry create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editing  int
	titleMax int
	width    int
	height   int
}

// New creates an entry form that caps titles at titleMax characters.
func New(titleMax, width, height int) Model {
	if titleMax <= 0 {
		titleMax = model.TitleMaxLength
	}
	return Model{
		fb:       &formBindings{},
		titleMax: titleMax,
		width:    width,
		height:   height,
	}
}

// StartCreate initializes the form for a new entry.
func (m *Model) StartCreate() tea.Cmd {
	m.editing = 0
	m.fb.title = ""
	m.fb.content = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form prefilled with an existing entry.
func (m *Model) StartEdit(entry model.JournalEntry) tea.Cmd {
	m.editing = entry.Number
	m.fb.title = entry.Title
	m.fb.content = entry.Content
	m.form = m.buildForm()
	return m.form.Init()
}

// Editing returns the number of the entry being edited, or 0.
func (m Model) Editing() int {
	return m.editing
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
		return m, m.handleSubmit()
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

	titleText := "New Entry"
	if m.editing > 0 {
		titleText = model.JournalEntry{Number: m.editing}.GetLabel()
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	maxLen := validate.MaxLength(m.titleMax)
	required := validate.Required("Title")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What is this entry about?").
				CharLimit(m.titleMax).
				Value(&m.fb.title).
				Validate(func(s string) error {
					if err := maxLen(s); err != nil {
						return err
					}
					return required(s)
				}),
			huh.NewText().
				Title("Content").
				Placeholder("Write freely...").
				Value(&m.fb.content).
				Validate(validate.Required("Content")),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	msg := SubmittedMsg{
		Number:  m.editing,
		Title:   m.fb.title,
		Content: m.fb.content,
	}
	return func() tea.Msg { return msg }
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-4, 10)
}

package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/keys"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/theme"
	"github.com/nhle/yournal/internal/ui"
	"github.com/nhle/yournal/internal/ui/command"
	"github.com/nhle/yournal/internal/ui/detail"
	"github.com/nhle/yournal/internal/ui/entryform"
	"github.com/nhle/yournal/internal/ui/goalform"
	helpview "github.com/nhle/yournal/internal/ui/help"
	"github.com/nhle/yournal/internal/ui/itemlist"
	"github.com/nhle/yournal/internal/ui/menu"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewMenu ViewState = iota
	ViewJournal
	ViewEntryDetail
	ViewEntryCreate
	ViewEntryEdit
	ViewGoals
	ViewGoalCreate
	ViewHelp
	ViewCommand
)

// statusLine is the message shown above the key hints.
type statusLine struct {
	text   string
	status string
}

// Model is the root Bubble Tea model that manages view routing, layout,
// and calls into the journal and goals services.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	journal      *journal.Journal
	goals        *journal.Goals
	keys         *keys.KeyMap
	titleMax     int
	menu         menu.Model
	entryList    itemlist.Model
	goalList     itemlist.Model
	detail       detail.Model
	entryForm    entryform.Model
	goalForm     goalform.Model
	helpView     helpview.Model
	commandView  command.Model
	status       statusLine
	ready        bool
}

// New creates the root model. titleMax caps entry titles in the form.
func New(j *journal.Journal, g *journal.Goals, titleMax int) Model {
	if titleMax <= 0 {
		titleMax = model.TitleMaxLength
	}
	k := keys.DefaultKeyMap()

	return Model{
		currentView: ViewMenu,
		journal:     j,
		goals:       g,
		keys:        k,
		titleMax:    titleMax,
		menu:        menu.New(k, 80, 24),
		entryList:   itemlist.New("Journal", "No entries yet.\n\nPress n to write one.", k, 80, 24),
		goalList:    itemlist.New("Self Goals", "No goals yet.\n\nPress n to set one.", k, 80, 24),
		detail:      detail.New(k, 80, 24),
		entryForm:   entryform.New(titleMax, 80, 24),
		goalForm:    goalform.New(80),
		helpView:    helpview.New(k, 80, 24),
		commandView: command.New(80, 24),
	}
}

// Init loads both lists so switching sections is instant.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadEntries(), m.loadGoals())
}

// CurrentView reports the active view.
func (m Model) CurrentView() ViewState {
	return m.currentView
}

// Status returns the last operation message shown in the status bar.
func (m Model) Status() string {
	return m.status.text
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.menu.SetSize(w, h)
		m.entryList.SetSize(w, h)
		m.goalList.SetSize(w, h)
		m.detail.SetSize(w, h)
		m.entryForm.SetSize(w, h)
		m.goalForm.SetSize(w)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case entriesLoadedMsg:
		cmd := m.entryList.SetItems(entryItems(msg.entries))
		return m, cmd

	case goalsLoadedMsg:
		cmd := m.goalList.SetItems(goalItems(msg.goals))
		return m, cmd

	case entryLoadedMsg:
		if !msg.result.OK() {
			m.setResult(msg.result)
			return m, nil
		}
		if msg.forEdit {
			m.currentView = ViewEntryEdit
			cmd := m.entryForm.StartEdit(msg.entry)
			return m, cmd
		}
		m.detail.SetEntry(msg.entry)
		m.currentView = ViewEntryDetail
		return m, nil

	case entryResultMsg:
		m.setResult(msg.result)
		return m, m.loadEntries()

	case goalResultMsg:
		m.setResult(msg.result)
		return m, m.loadGoals()

	case menu.ChosenMsg:
		cmd := m.openSection(msg.Section)
		return m, cmd

	case itemlist.SelectedMsg:
		if m.currentView == ViewJournal {
			return m, m.loadEntry(int(msg.Key), false)
		}
		return m, nil

	case detail.BackMsg:
		m.currentView = ViewJournal
		return m, nil

	case detail.ActionMsg:
		switch msg.Action {
		case detail.ActionEdit:
			if entry, ok := m.detail.Entry(); ok {
				m.currentView = ViewEntryEdit
				cmd := m.entryForm.StartEdit(entry)
				return m, cmd
			}
		case detail.ActionDelete:
			m.currentView = ViewJournal
			return m, m.deleteEntry(msg.Number)
		}
		return m, nil

	case entryform.SubmittedMsg:
		m.currentView = ViewJournal
		return m, m.saveEntry(msg)

	case entryform.CancelMsg:
		m.currentView = ViewJournal
		return m, nil

	case goalform.SubmittedMsg:
		m.currentView = ViewGoals
		return m, m.addGoal(msg.Description)

	case goalform.CancelMsg:
		m.currentView = ViewGoals
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		cmd := m.executeCommand(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.inputFocused() {
			break
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// inputFocused reports whether keystrokes belong to a text field.
func (m Model) inputFocused() bool {
	switch m.currentView {
	case ViewEntryCreate, ViewEntryEdit, ViewGoalCreate:
		return true
	case ViewJournal:
		return m.entryList.Searching()
	case ViewGoals:
		return m.goalList.Searching()
	case ViewCommand:
		// esc still closes the palette
		return false
	}
	return false
}

// handleKey processes global and per-list shortcuts.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.currentView == ViewCommand {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Command) {
			m.currentView = m.previousView
			return m, nil, true
		}
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.openHelp()
		return m, nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		cmd := m.commandView.Focus()
		return m, cmd, true
	}

	switch m.currentView {
	case ViewHelp:
		if key.Matches(msg, m.keys.Back) {
			m.currentView = m.previousView
			return m, nil, true
		}

	case ViewMenu:
		if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Back) {
			return m, tea.Quit, true
		}

	case ViewJournal:
		return m.handleJournalKey(msg)

	case ViewGoals:
		return m.handleGoalKey(msg)
	}

	return m, nil, false
}

func (m Model) handleJournalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Back):
		m.currentView = ViewMenu
		return m, nil, true

	case key.Matches(msg, m.keys.New):
		m.currentView = ViewEntryCreate
		cmd := m.entryForm.StartCreate()
		return m, cmd, true

	case key.Matches(msg, m.keys.Edit):
		if entry, ok := m.selectedEntry(); ok {
			return m, m.loadEntry(entry.Number, true), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Delete):
		if entry, ok := m.selectedEntry(); ok {
			return m, m.deleteEntry(entry.Number), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Renumber):
		return m, m.renumberEntries(), true

	case key.Matches(msg, m.keys.Goals):
		cmd := m.openSection(menu.SectionGoals)
		return m, cmd, true
	}
	return m, nil, false
}

func (m Model) handleGoalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Back):
		m.currentView = ViewMenu
		return m, nil, true

	case key.Matches(msg, m.keys.New):
		m.currentView = ViewGoalCreate
		cmd := m.goalForm.Start()
		return m, cmd, true

	case key.Matches(msg, m.keys.Complete):
		if item, ok := m.goalList.Selected(); ok {
			return m, m.completeGoal(item.GetKey()), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Journal):
		cmd := m.openSection(menu.SectionJournal)
		return m, cmd, true
	}
	return m, nil, false
}

func (m Model) selectedEntry() (model.JournalEntry, bool) {
	item, ok := m.entryList.Selected()
	if !ok {
		return model.JournalEntry{}, false
	}
	entry, ok := item.(model.JournalEntry)
	return entry, ok
}

// openSection switches to a list view and refreshes it.
func (m *Model) openSection(s menu.Section) tea.Cmd {
	if s == menu.SectionGoals {
		m.currentView = ViewGoals
		return m.loadGoals()
	}
	m.currentView = ViewJournal
	return m.loadEntries()
}

// openHelp shows the keys of the view help was opened from.
func (m *Model) openHelp() {
	switch m.currentView {
	case ViewJournal:
		m.helpView.SetContext(helpview.ContextJournal)
	case ViewEntryDetail:
		m.helpView.SetContext(helpview.ContextEntry)
	case ViewGoals:
		m.helpView.SetContext(helpview.ContextGoals)
	default:
		m.helpView.SetContext(helpview.ContextMenu)
	}
	m.previousView = m.currentView
	m.currentView = ViewHelp
}

// executeCommand handles a command from the palette.
func (m *Model) executeCommand(cmd command.CommandMsg) tea.Cmd {
	switch cmd {
	case command.CmdJournal:
		return m.openSection(menu.SectionJournal)
	case command.CmdGoals:
		return m.openSection(menu.SectionGoals)
	case command.CmdNew:
		if m.currentView == ViewGoals {
			m.currentView = ViewGoalCreate
			return m.goalForm.Start()
		}
		m.currentView = ViewEntryCreate
		return m.entryForm.StartCreate()
	case command.CmdRenumber:
		return m.renumberEntries()
	case command.CmdHelp:
		m.openHelp()
		return nil
	case command.CmdQuit:
		return tea.Quit
	default:
		m.status = statusLine{
			text:   fmt.Sprintf("Unknown command: %s", cmd),
			status: journal.StatusNotFound.String(),
		}
		return nil
	}
}

func (m *Model) setResult(r journal.Result) {
	m.status = statusLine{text: r.Message, status: r.Status.String()}
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case ViewJournal:
		m.entryList, cmd = m.entryList.Update(msg)
	case ViewEntryDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewEntryCreate, ViewEntryEdit:
		m.entryForm, cmd = m.entryForm.Update(msg)
	case ViewGoals:
		m.goalList, cmd = m.goalList.Update(msg)
	case ViewGoalCreate:
		m.goalForm, cmd = m.goalForm.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Yournal", m.sectionName())
	message := ""
	if m.status.text != "" {
		message = theme.MessageStyle(m.status.status).Render(m.status.text)
	}
	statusBar := m.layout.RenderStatusBar(message, m.keyHints())

	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewMenu:
		return m.menu.View()
	case ViewJournal:
		return m.entryList.View()
	case ViewEntryDetail:
		return m.detail.View()
	case ViewEntryCreate, ViewEntryEdit:
		return m.entryForm.View()
	case ViewGoals:
		return m.goalList.View()
	case ViewGoalCreate:
		return m.goalForm.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

func (m Model) sectionName() string {
	switch m.currentView {
	case ViewJournal, ViewEntryDetail, ViewEntryCreate, ViewEntryEdit:
		return menu.SectionJournal.String()
	case ViewGoals, ViewGoalCreate:
		return menu.SectionGoals.String()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewMenu:
		return "↑/↓ move | enter open | 1 journal | 2 goals | q quit"
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewEntryDetail:
		return "esc back | e edit | d delete | j/k scroll"
	case ViewEntryCreate, ViewEntryEdit, ViewGoalCreate:
		return "enter submit | esc cancel"
	case ViewGoals:
		return "n new | x complete | / search | esc menu | q quit"
	default:
		return "n new | e edit | d delete | enter view | R renumber | / search | esc menu | ? help"
	}
}

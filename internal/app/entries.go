package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/ui/entryform"
	"github.com/nhle/yournal/internal/validate"
)

// entriesLoadedMsg carries the journal list.
type entriesLoadedMsg struct {
	entries []model.JournalEntry
}

// entryLoadedMsg carries one entry for the detail view or the edit form.
type entryLoadedMsg struct {
	entry   model.JournalEntry
	result  journal.Result
	forEdit bool
}

// entryResultMsg is sent after any entry mutation.
type entryResultMsg struct {
	result journal.Result
}

func (m Model) loadEntries() tea.Cmd {
	j := m.journal
	return func() tea.Msg {
		return entriesLoadedMsg{entries: j.Entries(context.Background())}
	}
}

func (m Model) loadEntry(number int, forEdit bool) tea.Cmd {
	j := m.journal
	return func() tea.Msg {
		entry, res := j.Entry(context.Background(), number)
		return entryLoadedMsg{entry: entry, result: res, forEdit: forEdit}
	}
}

// saveEntry validates the form values and adds or edits the entry.
func (m Model) saveEntry(msg entryform.SubmittedMsg) tea.Cmd {
	j := m.journal
	titleMax := m.titleMax
	return func() tea.Msg {
		if err := validate.Entry(msg.Title, msg.Content, titleMax); err != nil {
			return entryResultMsg{result: journal.Invalid(err)}
		}
		ctx := context.Background()
		if msg.Number > 0 {
			return entryResultMsg{result: j.Edit(ctx, msg.Number, msg.Title, msg.Content)}
		}
		return entryResultMsg{result: j.Add(ctx, msg.Title, msg.Content)}
	}
}

func (m Model) deleteEntry(number int) tea.Cmd {
	j := m.journal
	return func() tea.Msg {
		return entryResultMsg{result: j.Delete(context.Background(), number)}
	}
}

func (m Model) renumberEntries() tea.Cmd {
	j := m.journal
	return func() tea.Msg {
		return entryResultMsg{result: j.Renumber(context.Background())}
	}
}

func entryItems(entries []model.JournalEntry) []model.ListItem {
	items := make([]model.ListItem, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return items
}

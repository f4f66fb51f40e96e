package itemlist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/theme"
)

// ListItemWrapper wraps a model.ListItem so it can be used in a bubbles/list.
type ListItemWrapper struct {
	Item model.ListItem
}

// FilterValue returns the string used for filtering.
func (w ListItemWrapper) FilterValue() string {
	return w.Item.GetTitle()
}

// Title returns the item title for the list.
func (w ListItemWrapper) Title() string {
	return w.Item.GetTitle()
}

// Description returns the secondary line for the list.
func (w ListItemWrapper) Description() string {
	return w.Item.GetDate()
}

// ItemDelegate implements list.ItemDelegate for journal entries and goals.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single list item line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	wrapper, ok := item.(ListItemWrapper)
	if !ok {
		return
	}

	var line string
	switch li := wrapper.Item.(type) {
	case model.Task:
		line = renderGoal(li)
	default:
		line = renderEntry(li)
	}

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// renderEntry draws "Entry #N  title  dd-mm-yyyy".
func renderEntry(li model.ListItem) string {
	return fmt.Sprintf(
		"%s  %s  %s",
		theme.NumberStyle.Render(li.GetLabel()),
		li.GetTitle(),
		theme.DimmedStyle.Render(li.GetDate()),
	)
}

// renderGoal draws an open (○) or completed (✓) goal.
func renderGoal(li model.ListItem) string {
	if li.IsCompleted() {
		return theme.DoneStyle.Render(fmt.Sprintf("✓ %s  %s", li.GetLabel(), li.GetTitle()))
	}
	return fmt.Sprintf("○ %s  %s", theme.NumberStyle.Render(li.GetLabel()), li.GetTitle())
}

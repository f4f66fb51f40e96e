package itemlist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yournal/internal/keys"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/theme"
)

// SelectedMsg is sent when the user opens the focused item.
type SelectedMsg struct {
	Key int64
}

// Model is a searchable list of journal entries or goals.
type Model struct {
	list        list.Model
	keys        *keys.KeyMap
	items       []model.ListItem
	query       string
	emptyText   string
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a list titled title. emptyText is shown when there is
// nothing to display.
func New(title, emptyText string, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search titles..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		keys:        k,
		emptyText:   emptyText,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetItems replaces the list contents, keeping any active search.
func (m *Model) SetItems(items []model.ListItem) tea.Cmd {
	m.items = items
	return m.apply()
}

// Items returns what is currently visible after filtering.
func (m Model) Items() []model.ListItem {
	visible := m.list.Items()
	out := make([]model.ListItem, 0, len(visible))
	for _, it := range visible {
		if w, ok := it.(ListItemWrapper); ok {
			out = append(out, w.Item)
		}
	}
	return out
}

// Selected returns the focused item, if any.
func (m Model) Selected() (model.ListItem, bool) {
	w, ok := m.list.SelectedItem().(ListItemWrapper)
	if !ok {
		return nil, false
	}
	return w.Item, true
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.query = strings.TrimSpace(m.searchInput.Value())
		cmd := m.apply()
		return m, cmd

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.query = ""
		cmd := m.apply()
		return m, cmd
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal (non-search) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedMsg{Key: item.GetKey()}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		cmd := m.searchInput.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// apply pushes the items matching the current query into the list.
func (m *Model) apply() tea.Cmd {
	needle := strings.ToLower(m.query)
	visible := make([]list.Item, 0, len(m.items))
	for _, it := range m.items {
		if needle != "" && !strings.Contains(strings.ToLower(it.GetTitle()), needle) {
			continue
		}
		visible = append(visible, ListItemWrapper{Item: it})
	}
	return m.list.SetItems(visible)
}

// View renders the list view.
func (m Model) View() string {
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}

	return m.list.View()
}

// renderEmptyState shows guidance text when nothing is listed.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.query != "" {
		return style.Render("No matching titles.\nPress / then esc to clear the search.")
	}
	return style.Render(m.emptyText)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}

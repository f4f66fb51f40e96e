package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/validate"
)

// goalsLoadedMsg carries the goal list.
type goalsLoadedMsg struct {
	goals []model.Task
}

// goalResultMsg is sent after any goal mutation.
type goalResultMsg struct {
	result journal.Result
}

func (m Model) loadGoals() tea.Cmd {
	g := m.goals
	return func() tea.Msg {
		return goalsLoadedMsg{goals: g.List(context.Background())}
	}
}

func (m Model) addGoal(description string) tea.Cmd {
	g := m.goals
	return func() tea.Msg {
		if err := validate.Goal(description); err != nil {
			return goalResultMsg{result: journal.Invalid(err)}
		}
		return goalResultMsg{result: g.Add(context.Background(), description)}
	}
}

func (m Model) completeGoal(id int64) tea.Cmd {
	g := m.goals
	return func() tea.Msg {
		return goalResultMsg{result: g.Complete(context.Background(), id)}
	}
}

func goalItems(goals []model.Task) []model.ListItem {
	items := make([]model.ListItem, len(goals))
	for i, t := range goals {
		items[i] = t
	}
	return items
}

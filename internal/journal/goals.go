package journal

import (
	"context"
	"errors"
	"fmt"

	clog "github.com/charmbracelet/log"

	"github.com/nhle/yournal/internal/logging"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/store"
)

// Goals manages the self-goal task list.
type Goals struct {
	store store.TaskStore
	log   *clog.Logger
}

// NewGoals returns a Goals over s. A nil logger means logging.L.
func NewGoals(s store.TaskStore, logger *clog.Logger) *Goals {
	if logger == nil {
		logger = logging.L
	}
	return &Goals{store: s, log: logger.With("component", "goals")}
}

// Add appends a goal.
func (g *Goals) Add(ctx context.Context, description string) Result {
	task, err := g.store.AddTask(ctx, description)
	if err != nil {
		g.log.Error("adding goal failed", "err", err)
		return Result{
			Status:  StatusStorageError,
			Message: fmt.Sprintf("Error saving goal: %v", err),
			Err:     err,
		}
	}
	return Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("Goal #%d added.", task.ID),
		Key:     task.ID,
	}
}

// List returns all goals. A storage failure is logged and yields an
// empty list.
func (g *Goals) List(ctx context.Context) []model.Task {
	tasks, err := g.store.ListTasks(ctx)
	if err != nil {
		g.log.Error("listing goals failed", "err", err)
		return []model.Task{}
	}
	return tasks
}

// Complete marks goal id as done.
func (g *Goals) Complete(ctx context.Context, id int64) Result {
	err := g.store.MarkTaskComplete(ctx, id)
	switch {
	case err == nil:
		return Result{
			Status:  StatusOK,
			Message: fmt.Sprintf("Goal #%d marked complete.", id),
			Key:     id,
		}
	case errors.Is(err, store.ErrNotFound):
		return Result{
			Status:  StatusNotFound,
			Message: fmt.Sprintf("Goal #%d not found.", id),
			Err:     err,
			Key:     id,
		}
	default:
		g.log.Error("completing goal failed", "id", id, "err", err)
		return Result{
			Status:  StatusStorageError,
			Message: fmt.Sprintf("Error updating goal: %v", err),
			Err:     err,
			Key:     id,
		}
	}
}

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nhle/yournal/internal/model"
)

const tasksTable = "tasks"

// AddTask appends a new, not yet completed task.
func (s *SQLiteStore) AddTask(ctx context.Context, description string) (model.Task, error) {
	query, args, err := builder.Insert(tasksTable).
		Columns("description").
		Values(description).
		ToSql()
	if err != nil {
		return model.Task{}, fmt.Errorf("building task insert: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Task{}, fmt.Errorf("creating task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("reading task id: %w", err)
	}

	return model.Task{ID: id, Description: description}, nil
}

// ListTasks returns all tasks in insertion order.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	query, args, err := builder.Select("id", "description", "completed").
		From(tasksTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building task query: %w", err)
	}

	tasks := []model.Task{}
	if err := s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}

// MarkTaskComplete sets the task's completed flag. There is no way back.
// ErrNotFound is returned, and nothing changes, when id does not exist.
func (s *SQLiteStore) MarkTaskComplete(ctx context.Context, id int64) error {
	query, args, err := builder.Update(tasksTable).
		Set("completed", boolToInt(true)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building task update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("completing task %d: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

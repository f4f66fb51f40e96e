package store

import (
	"context"
	"errors"

	"github.com/nhle/yournal/internal/model"
)

var (
	// ErrNotFound is returned when no row matches the given number or ID.
	ErrNotFound = errors.New("not found")

	// ErrNextNumber is returned by AddEntry when the next entry number
	// could not be computed. Nothing is inserted in that case.
	ErrNextNumber = errors.New("determining next entry number")
)

// EntryStore persists numbered journal entries. After every call that
// returns, the entry numbers in use are exactly 1..N.
type EntryStore interface {
	AddEntry(ctx context.Context, title, content string) (model.JournalEntry, error)
	ListEntries(ctx context.Context) ([]model.JournalEntry, error)
	GetEntry(ctx context.Context, number int) (model.JournalEntry, error)
	EditEntry(ctx context.Context, number int, title, content string) (model.JournalEntry, error)
	DeleteEntry(ctx context.Context, number int) error
	RenumberEntries(ctx context.Context) error
}

// TaskStore persists self goals. Tasks carry no ordering invariant.
type TaskStore interface {
	AddTask(ctx context.Context, description string) (model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	MarkTaskComplete(ctx context.Context, id int64) error
}

// Store is the full persistence interface backed by one database.
type Store interface {
	EntryStore
	TaskStore

	Close() error
}

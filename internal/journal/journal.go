// Package journal is the function-call interface the terminal UI, the CLI
// and the web variant use to reach the stores. It turns store errors into
// Results with display-ready messages and logs storage failures. Nothing
// here validates input; that happens at the boundary.
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

// Journal manages numbered journal entries.
type Journal struct {
	store store.EntryStore
	log   *clog.Logger
}

// New returns a Journal over s. A nil logger means logging.L.
func New(s store.EntryStore, logger *clog.Logger) *Journal {
	if logger == nil {
		logger = logging.L
	}
	return &Journal{store: s, log: logger.With("component", "journal")}
}

// Add stores a new entry and reports the number it received.
func (j *Journal) Add(ctx context.Context, title, content string) Result {
	entry, err := j.store.AddEntry(ctx, title, content)
	if err != nil {
		j.log.Error("adding entry failed", "err", err)
		if errors.Is(err, store.ErrNextNumber) {
			return Result{
				Status:  StatusStorageError,
				Message: "Failed to determine next entry number.",
				Err:     err,
			}
		}
		return Result{
			Status:  StatusStorageError,
			Message: fmt.Sprintf("Error saving entry to the database: %v", err),
			Err:     err,
		}
	}

	j.log.Debug("entry added", "number", entry.Number, "id", entry.ID)
	return Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("Entry #%d added successfully.", entry.Number),
		Key:     int64(entry.Number),
	}
}

// Entries lists every entry by number. A storage failure is logged and
// yields an empty list.
func (j *Journal) Entries(ctx context.Context) []model.JournalEntry {
	entries, err := j.store.ListEntries(ctx)
	if err != nil {
		j.log.Error("listing entries failed", "err", err)
		return []model.JournalEntry{}
	}
	return entries
}

// Entry looks up one entry by number.
func (j *Journal) Entry(ctx context.Context, number int) (model.JournalEntry, Result) {
	entry, err := j.store.GetEntry(ctx, number)
	if err != nil {
		return model.JournalEntry{}, j.failure(number, "Error loading entry", err)
	}
	return entry, Result{Status: StatusOK, Key: int64(number)}
}

// Edit replaces the title and content of entry number.
func (j *Journal) Edit(ctx context.Context, number int, title, content string) Result {
	if _, err := j.store.EditEntry(ctx, number, title, content); err != nil {
		return j.failure(number, "Error updating entry", err)
	}
	return Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("Entry #%d updated successfully.", number),
		Key:     int64(number),
	}
}

// Delete removes entry number; the entries after it move up by one.
func (j *Journal) Delete(ctx context.Context, number int) Result {
	if err := j.store.DeleteEntry(ctx, number); err != nil {
		return j.failure(number, "Error deleting entry", err)
	}
	return Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("Entry #%d deleted successfully.", number),
		Key:     int64(number),
	}
}

// Renumber closes any gaps in the entry numbers.
func (j *Journal) Renumber(ctx context.Context) Result {
	if err := j.store.RenumberEntries(ctx); err != nil {
		j.log.Error("renumbering entries failed", "err", err)
		return Result{
			Status:  StatusStorageError,
			Message: fmt.Sprintf("Error renumbering entries: %v", err),
			Err:     err,
		}
	}
	return Result{Status: StatusOK, Message: "Entries renumbered."}
}

func (j *Journal) failure(number int, prefix string, err error) Result {
	if errors.Is(err, store.ErrNotFound) {
		return Result{
			Status:  StatusNotFound,
			Message: fmt.Sprintf("Entry #%d not found.", number),
			Err:     err,
			Key:     int64(number),
		}
	}
	j.log.Error(prefix, "number", number, "err", err)
	return Result{
		Status:  StatusStorageError,
		Message: fmt.Sprintf("%s: %v", prefix, err),
		Err:     err,
		Key:     int64(number),
	}
}

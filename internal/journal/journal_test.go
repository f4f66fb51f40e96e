package journal_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/logging"
	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/store"
	"github.com/nhle/yournal/tests/testutil"
)

// -------- test fakes --------

type failingEntryStore struct {
	store.EntryStore
	err error
}

func (f *failingEntryStore) AddEntry(context.Context, string, string) (model.JournalEntry, error) {
	return model.JournalEntry{}, f.err
}

func (f *failingEntryStore) ListEntries(context.Context) ([]model.JournalEntry, error) {
	return nil, f.err
}

func (f *failingEntryStore) EditEntry(context.Context, int, string, string) (model.JournalEntry, error) {
	return model.JournalEntry{}, f.err
}

func (f *failingEntryStore) DeleteEntry(context.Context, int) error {
	return f.err
}

func (f *failingEntryStore) RenumberEntries(context.Context) error {
	return f.err
}

func newJournal(t *testing.T) *journal.Journal {
	t.Helper()
	return journal.New(testutil.NewTestStore(t), logging.New(io.Discard))
}

func TestJournalMessages(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()

	res := j.Add(ctx, "A", "x")
	assert.True(t, res.OK())
	assert.Equal(t, "Entry #1 added successfully.", res.Message)
	assert.Equal(t, int64(1), res.Key)

	res = j.Add(ctx, "B", "y")
	assert.Equal(t, "Entry #2 added successfully.", res.Message)

	res = j.Edit(ctx, 2, "B!", "y!")
	assert.True(t, res.OK())
	assert.Equal(t, "Entry #2 updated successfully.", res.Message)

	res = j.Delete(ctx, 1)
	assert.True(t, res.OK())
	assert.Equal(t, "Entry #1 deleted successfully.", res.Message)

	entries := j.Entries(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Number)
	assert.Equal(t, "B!", entries[0].Title)

	res = j.Renumber(ctx)
	assert.True(t, res.OK())
}

func TestJournalNotFound(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()

	res := j.Edit(ctx, 4, "t", "c")
	assert.Equal(t, journal.StatusNotFound, res.Status)
	assert.Equal(t, "Entry #4 not found.", res.Message)
	assert.ErrorIs(t, res.Err, store.ErrNotFound)

	res = j.Delete(ctx, 4)
	assert.Equal(t, journal.StatusNotFound, res.Status)

	_, res = j.Entry(ctx, 4)
	assert.Equal(t, journal.StatusNotFound, res.Status)
}

func TestJournalEntry(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()

	j.Add(ctx, "A", "x")
	entry, res := j.Entry(ctx, 1)
	require.True(t, res.OK())
	assert.Equal(t, "A", entry.Title)
	assert.Equal(t, "07-03-2024", entry.Date)
}

func TestJournalStorageErrors(t *testing.T) {
	boom := errors.New("disk I/O error")
	j := journal.New(&failingEntryStore{err: boom}, logging.New(io.Discard))
	ctx := context.Background()

	res := j.Add(ctx, "t", "c")
	assert.Equal(t, journal.StatusStorageError, res.Status)
	assert.Equal(t, "Error saving entry to the database: disk I/O error", res.Message)

	res = j.Edit(ctx, 1, "t", "c")
	assert.Equal(t, journal.StatusStorageError, res.Status)
	assert.Equal(t, "Error updating entry: disk I/O error", res.Message)

	res = j.Delete(ctx, 1)
	assert.Equal(t, "Error deleting entry: disk I/O error", res.Message)

	res = j.Renumber(ctx)
	assert.Equal(t, "Error renumbering entries: disk I/O error", res.Message)

	entries := j.Entries(ctx)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestJournalNextNumberFailure(t *testing.T) {
	err := errors.Join(store.ErrNextNumber, errors.New("no such table"))
	j := journal.New(&failingEntryStore{err: err}, logging.New(io.Discard))

	res := j.Add(context.Background(), "t", "c")
	assert.Equal(t, journal.StatusStorageError, res.Status)
	assert.Equal(t, "Failed to determine next entry number.", res.Message)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", journal.StatusOK.String())
	assert.Equal(t, "not found", journal.StatusNotFound.String())
	assert.Equal(t, "storage error", journal.StatusStorageError.String())
}

func TestInvalidResult(t *testing.T) {
	assert.Equal(t, "invalid", journal.StatusInvalid.String())

	res := journal.Invalid(errors.New("title and content cannot be empty"))
	assert.False(t, res.OK())
	assert.Equal(t, journal.StatusInvalid, res.Status)
	assert.Equal(t, "Title and content cannot be empty.", res.Message)
	assert.EqualError(t, res.Err, "title and content cannot be empty")
}

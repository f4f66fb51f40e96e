package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/yournal/internal/model"
	"github.com/nhle/yournal/internal/store"
	"github.com/nhle/yournal/tests/testutil"
)

type titleContent struct{ title, content string }

func addAll(t *testing.T, s store.EntryStore, entries ...titleContent) []model.JournalEntry {
	t.Helper()
	out := make([]model.JournalEntry, 0, len(entries))
	for _, e := range entries {
		added, err := s.AddEntry(context.Background(), e.title, e.content)
		require.NoError(t, err)
		out = append(out, added)
	}
	return out
}

func numbersOf(entries []model.JournalEntry) []int {
	nums := make([]int, len(entries))
	for i, e := range entries {
		nums[i] = e.Number
	}
	return nums
}

func titlesOf(entries []model.JournalEntry) []string {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	return titles
}

func TestListEntriesEmpty(t *testing.T) {
	s := testutil.NewTestStore(t)

	entries, err := s.ListEntries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestAddEntryAssignsSequentialNumbers(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	added := addAll(t, s,
		titleContent{"one", "a"},
		titleContent{"two", "b"},
		titleContent{"three", "c"},
		titleContent{"four", "d"},
	)

	for i, e := range added {
		assert.Equal(t, i+1, e.Number)
		assert.NotZero(t, e.ID)
		assert.Equal(t, "07-03-2024", e.Date)
	}

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, numbersOf(entries))
	assert.Equal(t, []string{"one", "two", "three", "four"}, titlesOf(entries))
}

func TestAddEntryDoesNotValidate(t *testing.T) {
	s := testutil.NewTestStore(t)

	entry, err := s.AddEntry(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Number)
}

func TestDeleteEntryRenumbers(t *testing.T) {
	titles := []string{"a", "b", "c", "d", "e"}

	for k := 1; k <= len(titles); k++ {
		t.Run(titles[k-1], func(t *testing.T) {
			s := testutil.NewTestStore(t)
			ctx := context.Background()

			for _, title := range titles {
				_, err := s.AddEntry(ctx, title, "body "+title)
				require.NoError(t, err)
			}

			require.NoError(t, s.DeleteEntry(ctx, k))

			entries, err := s.ListEntries(ctx)
			require.NoError(t, err)

			want := append(append([]string{}, titles[:k-1]...), titles[k:]...)
			assert.Equal(t, []int{1, 2, 3, 4}, numbersOf(entries))
			assert.Equal(t, want, titlesOf(entries))
		})
	}
}

func TestDeleteEntryKeepsIDsAndDates(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	added := addAll(t, s,
		titleContent{"A", "x"},
		titleContent{"B", "y"},
		titleContent{"C", "z"},
	)

	require.NoError(t, s.DeleteEntry(ctx, 1))

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, added[1].ID, entries[0].ID)
	assert.Equal(t, added[2].ID, entries[1].ID)
	assert.Equal(t, added[1].Date, entries[0].Date)
}

func TestDeleteEntryNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	addAll(t, s, titleContent{"A", "x"}, titleContent{"B", "y"})

	err := s.DeleteEntry(ctx, 9)
	require.ErrorIs(t, err, store.ErrNotFound)

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, numbersOf(entries))
}

func TestRenumberEntriesIsIdempotent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	addAll(t, s,
		titleContent{"A", "x"},
		titleContent{"B", "y"},
		titleContent{"C", "z"},
	)
	before, err := s.ListEntries(ctx)
	require.NoError(t, err)

	require.NoError(t, s.RenumberEntries(ctx))
	require.NoError(t, s.RenumberEntries(ctx))

	after, err := s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestEditEntryChangesOnlyTitleAndContent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	added := addAll(t, s,
		titleContent{"A", "x"},
		titleContent{"B", "y"},
	)

	edited, err := s.EditEntry(ctx, 2, "B2", "y2")
	require.NoError(t, err)
	assert.Equal(t, added[1].ID, edited.ID)
	assert.Equal(t, 2, edited.Number)
	assert.Equal(t, added[1].Date, edited.Date)
	assert.Equal(t, "B2", edited.Title)
	assert.Equal(t, "y2", edited.Content)

	first, err := s.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, added[0], first)
}

func TestEditEntryNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.EditEntry(context.Background(), 3, "t", "c")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetEntryNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.GetEntry(context.Background(), 1)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteAllThenAddStartsAtOne(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	addAll(t, s, titleContent{"A", "x"}, titleContent{"B", "y"})
	require.NoError(t, s.DeleteEntry(ctx, 2))
	require.NoError(t, s.DeleteEntry(ctx, 1))

	entry, err := s.AddEntry(ctx, "fresh", "start")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Number)
}

func TestAddDeleteAddScenario(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	addAll(t, s,
		titleContent{"A", "x"},
		titleContent{"B", "y"},
		titleContent{"C", "z"},
	)
	require.NoError(t, s.DeleteEntry(ctx, 2))

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, titleContent{"A", "x"}, titleContent{entries[0].Title, entries[0].Content})
	assert.Equal(t, titleContent{"C", "z"}, titleContent{entries[1].Title, entries[1].Content})

	d, err := s.AddEntry(ctx, "D", "w")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Number)

	entries, err = s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, numbersOf(entries))
	assert.Equal(t, []string{"A", "C", "D"}, titlesOf(entries))
}

func TestListEntriesAfterClose(t *testing.T) {
	s, err := store.NewSQLiteStore(store.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.ListEntries(context.Background())
	assert.Error(t, err)
}

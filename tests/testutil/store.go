package testutil

import (
	"testing"
	"time"

	"github.com/nhle/yournal/internal/store"
)

// FixedNow is the clock used by NewTestStore: 7 March 2024, local time.
var FixedNow = time.Date(2024, time.March, 7, 9, 30, 0, 0, time.Local)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied
// and a clock frozen at FixedNow.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(store.MemoryPath, store.WithClock(func() time.Time {
		return FixedNow
	}))
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

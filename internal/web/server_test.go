package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/yournal/internal/journal"
	"github.com/nhle/yournal/internal/store"
	"github.com/nhle/yournal/tests/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *store.SQLiteStore) {
	t.Helper()
	s := testutil.NewTestStore(t)
	logger := clog.New(io.Discard)
	srv, err := New(journal.New(s, logger), journal.NewGoals(s, logger), 50, logger)
	require.NoError(t, err)
	return srv, s
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler().ServeHTTP(w, req)
	return w
}

func postForm(srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler().ServeHTTP(w, req)
	return w
}

// flashOf extracts the flash message from a redirect Location.
func flashOf(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	return loc.Query().Get("flash"), loc.Query().Get("status")
}

func TestIndex(t *testing.T) {
	srv, _ := newTestServer(t)
	w := get(srv, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/journal"`)
	assert.Contains(t, w.Body.String(), `href="/self_goals"`)
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	w := get(srv, "/")
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	incoming := uuid.NewString()
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	srv.Handler().ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestAddEntryRedirectsWithFlash(t *testing.T) {
	srv, s := newTestServer(t)

	w := postForm(srv, "/journal", url.Values{"title": {"Day one"}, "content": {"It rained."}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	msg, status := flashOf(t, w)
	assert.Equal(t, "Entry #1 added successfully.", msg)
	assert.Equal(t, "ok", status)

	entries, err := s.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "07-03-2024", entries[0].Date)

	page := get(srv, w.Header().Get("Location"))
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Entry #1: Day one")
	assert.Contains(t, page.Body.String(), "Entry #1 added successfully.")
}

func TestAddEntryValidation(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{"missing content", url.Values{"title": {"t"}}, "Title and content cannot be empty."},
		{"blank title", url.Values{"title": {"  "}, "content": {"c"}}, "Title and content cannot be empty."},
		{"long title", url.Values{"title": {strings.Repeat("x", 51)}, "content": {"c"}}, "Title must be at most 50 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, s := newTestServer(t)
			w := postForm(srv, "/journal", tt.form)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)

			entries, err := s.ListEntries(context.Background())
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestEditEntry(t *testing.T) {
	srv, s := newTestServer(t)
	ctx := context.Background()
	_, err := s.AddEntry(ctx, "old", "old")
	require.NoError(t, err)

	w := postForm(srv, "/journal/1/edit", url.Values{"title": {"new"}, "content": {"body"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	msg, _ := flashOf(t, w)
	assert.Equal(t, "Entry #1 updated successfully.", msg)

	e, err := s.GetEntry(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "new", e.Title)

	w = postForm(srv, "/journal/7/edit", url.Values{"title": {"x"}, "content": {"y"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	msg, status := flashOf(t, w)
	assert.Equal(t, "Entry #7 not found.", msg)
	assert.Equal(t, "not found", status)

	w = postForm(srv, "/journal/abc/edit", url.Values{"title": {"x"}, "content": {"y"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid entry number.")
}

func TestDeleteEntryRenumbers(t *testing.T) {
	srv, s := newTestServer(t)
	ctx := context.Background()
	for _, title := range []string{"A", "B", "C", "D"} {
		_, err := s.AddEntry(ctx, title, "x")
		require.NoError(t, err)
	}

	w := postForm(srv, "/journal/2/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	msg, _ := flashOf(t, w)
	assert.Equal(t, "Entry #2 deleted successfully.", msg)

	entries, err := s.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, want := range []string{"A", "C", "D"} {
		assert.Equal(t, i+1, entries[i].Number)
		assert.Equal(t, want, entries[i].Title)
	}

	w = postForm(srv, "/journal/9/delete", nil)
	msg, _ = flashOf(t, w)
	assert.Equal(t, "Entry #9 not found.", msg)
}

func TestGoals(t *testing.T) {
	srv, s := newTestServer(t)

	w := postForm(srv, "/self_goals", url.Values{"description": {"Read a book"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	msg, _ := flashOf(t, w)
	assert.Equal(t, "Goal #1 added.", msg)

	w = postForm(srv, "/self_goals/1/complete", nil)
	msg, _ = flashOf(t, w)
	assert.Equal(t, "Goal #1 marked complete.", msg)

	tasks, err := s.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)

	page := get(srv, "/self_goals")
	assert.Contains(t, page.Body.String(), `class="done"`)

	w = postForm(srv, "/self_goals/5/complete", nil)
	msg, status := flashOf(t, w)
	assert.Equal(t, "Goal #5 not found.", msg)
	assert.Equal(t, "not found", status)
}

func TestGoalValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	w := postForm(srv, "/self_goals", url.Values{"description": {"   "}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Goal description cannot be empty.")

	w = postForm(srv, "/self_goals/zero/complete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid goal id.")
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, "127.0.0.1:0") }()
	cancel()

	assert.NoError(t, <-done)
}

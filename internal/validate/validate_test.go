package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestEntry(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		wantErr error
		tooLong bool
	}{
		{"valid", "Morning", "Walked the dog", nil, false},
		{"exactly max", strings.Repeat("a", 50), "x", nil, false},
		{"one over max", strings.Repeat("a", 51), "x", nil, true},
		{"multibyte at max", strings.Repeat("é", 50), "x", nil, false},
		{"blank title", "   ", "x", ErrEmptyEntry, false},
		{"blank content", "t", "\n\t", ErrEmptyEntry, false},
		{"too long wins over empty content", strings.Repeat("a", 60), "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Entry(tt.title, tt.content, 50)
			if tt.tooLong {
				var tl *TitleTooLongError
				if !errors.As(err, &tl) {
					t.Fatalf("Entry() = %v, want TitleTooLongError", err)
				}
				if tl.Error() != "title must be at most 50 characters" {
					t.Errorf("message = %q", tl.Error())
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Entry() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoal(t *testing.T) {
	if err := Goal("drink water"); err != nil {
		t.Errorf("Goal() = %v, want nil", err)
	}
	if err := Goal("  "); !errors.Is(err, ErrEmptyGoal) {
		t.Errorf("Goal() = %v, want ErrEmptyGoal", err)
	}
}

func TestRequired(t *testing.T) {
	check := Required("Title")
	if err := check(""); err == nil || err.Error() != "Title is required" {
		t.Errorf("Required(\"\") = %v", err)
	}
	if err := check("x"); err != nil {
		t.Errorf("Required(\"x\") = %v", err)
	}
}

// Package validate holds the input rules the presentation layers apply
// before calling into the journal. The store accepts anything.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyEntry = errors.New("title and content cannot be empty")
	ErrEmptyGoal  = errors.New("goal description cannot be empty")
)

// TitleTooLongError reports a title over the configured limit.
type TitleTooLongError struct {
	Max int
}

func (e *TitleTooLongError) Error() string {
	return fmt.Sprintf("title must be at most %d characters", e.Max)
}

// Title checks only the length cap, counted in characters.
func Title(title string, maxLen int) error {
	if utf8.RuneCountInString(title) > maxLen {
		return &TitleTooLongError{Max: maxLen}
	}
	return nil
}

// Entry applies the title cap first, then the non-empty rule to both fields.
func Entry(title, content string, maxLen int) error {
	if err := Title(title, maxLen); err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrEmptyEntry
	}
	return nil
}

// Goal requires a non-blank description.
func Goal(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyGoal
	}
	return nil
}

// Required returns a field validator in the shape huh inputs expect.
func Required(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// MaxLength returns a huh-compatible validator for the title cap.
func MaxLength(maxLen int) func(string) error {
	return func(s string) error {
		return Title(s, maxLen)
	}
}

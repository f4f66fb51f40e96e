package model

import "fmt"

// ListItem is the common interface for rows displayed in the list views.
// Both JournalEntry and Task implement it.
type ListItem interface {
	GetKey() int64
	GetLabel() string
	GetTitle() string
	GetDescription() string
	GetDate() string
	IsCompleted() bool
}

// JournalEntry implements ListItem. Its key is the entry number.

func (e JournalEntry) GetKey() int64          { return int64(e.Number) }
func (e JournalEntry) GetLabel() string       { return fmt.Sprintf("Entry #%d", e.Number) }
func (e JournalEntry) GetTitle() string       { return e.Title }
func (e JournalEntry) GetDescription() string { return e.Content }
func (e JournalEntry) GetDate() string        { return e.Date }
func (e JournalEntry) IsCompleted() bool      { return false }

// Task implements ListItem. Its key is the task ID.

func (t Task) GetKey() int64          { return t.ID }
func (t Task) GetLabel() string       { return fmt.Sprintf("Goal #%d", t.ID) }
func (t Task) GetTitle() string       { return t.Description }
func (t Task) GetDescription() string { return "" }
func (t Task) GetDate() string        { return "" }
func (t Task) IsCompleted() bool      { return t.Completed }

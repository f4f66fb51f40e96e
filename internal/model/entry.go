package model

import "time"

// DateLayout is the DD-MM-YYYY format journal entry dates are stored in.
const DateLayout = "02-01-2006"

// TitleMaxLength is the default cap on entry titles applied by the
// presentation layers. The store itself does not enforce it.
const TitleMaxLength = 50

// JournalEntry is a numbered journal record.
//
// Number is the entry's dense 1-based rank among all entries and changes
// when an entry with a lower number is deleted. ID never changes.
type JournalEntry struct {
	ID      int64  `json:"id" db:"id"`
	Number  int    `json:"number" db:"number"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	Date    string `json:"date" db:"date"`
}

// FormatEntryDate renders t in the journal's DD-MM-YYYY layout using
// the local calendar date.
func FormatEntryDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// ParsedDate returns the entry date as a local-time midnight value.
func (e JournalEntry) ParsedDate() (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, time.Local)
}

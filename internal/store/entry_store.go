package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/nhle/yournal/internal/model"
)

const entriesTable = "journal_entries"

var entryColumns = []string{"id", "number", "title", "content", "date"}

// AddEntry appends a new entry numbered one past the current maximum
// (or 1 when the journal is empty) and dated today.
// Title and content are stored as given.
func (s *SQLiteStore) AddEntry(
	ctx context.Context,
	title, content string,
) (model.JournalEntry, error) {
	entry := model.JournalEntry{
		Title:   title,
		Content: content,
		Date:    model.FormatEntryDate(s.now()),
	}

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		next, err := nextEntryNumber(ctx, tx)
		if err != nil {
			return err
		}
		entry.Number = next

		query, args, err := builder.Insert(entriesTable).
			Columns("number", "title", "content", "date").
			Values(entry.Number, entry.Title, entry.Content, entry.Date).
			ToSql()
		if err != nil {
			return fmt.Errorf("building entry insert: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("inserting entry #%d: %w", entry.Number, err)
		}

		entry.ID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading id of entry #%d: %w", entry.Number, err)
		}
		return nil
	})
	if err != nil {
		return model.JournalEntry{}, err
	}

	return entry, nil
}

// nextEntryNumber returns MAX(number)+1, treating an empty table as 0.
func nextEntryNumber(ctx context.Context, q sqlx.QueryerContext) (int, error) {
	query, args, err := builder.Select("COALESCE(MAX(number), 0)").
		From(entriesTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNextNumber, err)
	}

	var maxNumber int
	if err := sqlx.GetContext(ctx, q, &maxNumber, query, args...); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNextNumber, err)
	}
	return maxNumber + 1, nil
}

// ListEntries returns every entry ordered by number. An empty journal
// yields an empty, non-nil slice.
func (s *SQLiteStore) ListEntries(ctx context.Context) ([]model.JournalEntry, error) {
	query, args, err := builder.Select(entryColumns...).
		From(entriesTable).
		OrderBy("number ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building entry query: %w", err)
	}

	entries := []model.JournalEntry{}
	if err := s.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	return entries, nil
}

// GetEntry returns the entry currently holding number.
func (s *SQLiteStore) GetEntry(ctx context.Context, number int) (model.JournalEntry, error) {
	return getEntry(ctx, s.db, number)
}

func getEntry(ctx context.Context, q sqlx.QueryerContext, number int) (model.JournalEntry, error) {
	query, args, err := builder.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"number": number}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("building entry query: %w", err)
	}

	var entry model.JournalEntry
	if err := sqlx.GetContext(ctx, q, &entry, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.JournalEntry{}, fmt.Errorf("entry #%d: %w", number, ErrNotFound)
		}
		return model.JournalEntry{}, fmt.Errorf("getting entry #%d: %w", number, err)
	}
	return entry, nil
}

// EditEntry overwrites the title and content of the entry holding number.
// Number, ID and date are left untouched. ErrNotFound is returned when no
// entry holds that number.
func (s *SQLiteStore) EditEntry(
	ctx context.Context,
	number int,
	title, content string,
) (model.JournalEntry, error) {
	var entry model.JournalEntry

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := builder.Update(entriesTable).
			Set("title", title).
			Set("content", content).
			Where(sq.Eq{"number": number}).
			ToSql()
		if err != nil {
			return fmt.Errorf("building entry update: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("updating entry #%d: %w", number, err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("entry #%d: %w", number, ErrNotFound)
		}

		entry, err = getEntry(ctx, tx, number)
		return err
	})
	if err != nil {
		return model.JournalEntry{}, err
	}

	return entry, nil
}

// DeleteEntry removes the entry holding number and renumbers the rest in
// the same transaction. The renumbering runs even when nothing matched;
// in that case ErrNotFound is returned after it commits.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, number int) error {
	found := false

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		query, args, err := builder.Delete(entriesTable).
			Where(sq.Eq{"number": number}).
			ToSql()
		if err != nil {
			return fmt.Errorf("building entry delete: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("deleting entry #%d: %w", number, err)
		}
		rows, _ := result.RowsAffected()
		found = rows > 0

		return renumber(ctx, tx)
	})
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("entry #%d: %w", number, ErrNotFound)
	}
	return nil
}

// RenumberEntries reassigns numbers 1..N in current number order.
// Running it on an already contiguous journal changes nothing.
func (s *SQLiteStore) RenumberEntries(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		return renumber(ctx, tx)
	})
}

// renumber walks the entries in (number, id) order and gives each its
// 1-based rank, addressing rows by their immutable id. Rows that already
// hold their rank are skipped.
func renumber(ctx context.Context, tx *sqlx.Tx) error {
	query, args, err := builder.Select("id", "number").
		From(entriesTable).
		OrderBy("number ASC", "id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("building renumber query: %w", err)
	}

	var current []struct {
		ID     int64 `db:"id"`
		Number int   `db:"number"`
	}
	if err := tx.SelectContext(ctx, &current, query, args...); err != nil {
		return fmt.Errorf("reading entries for renumbering: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx,
		"UPDATE "+entriesTable+" SET number = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("preparing renumber statement: %w", err)
	}
	defer stmt.Close()

	for i, row := range current {
		rank := i + 1
		if row.Number == rank {
			continue
		}
		if _, err := stmt.ExecContext(ctx, rank, row.ID); err != nil {
			return fmt.Errorf("renumbering entry id %d to #%d: %w", row.ID, rank, err)
		}
	}

	return nil
}

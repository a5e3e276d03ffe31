package questiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizrun/internal/question"
)

// Source loads question pairs from a DuckDB table ordered by position.
type Source struct {
	Path  string
	Table string
}

// Load implements question.Source. The database is opened read-only.
func (s Source) Load(ctx context.Context) ([]question.Pair, error) {
	table, err := TableName(s.Table)
	if err != nil {
		return nil, err
	}
	db, err := OpenReadOnly(ctx, s.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Query(ctx, db, table)
}

// Query reads every pair from table in position order.
func Query(ctx context.Context, db *sql.DB, table string) ([]question.Pair, error) {
	name, err := TableName(table)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT question, answer FROM %s ORDER BY position", name))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	pairs := []question.Pair{}
	for rows.Next() {
		var pair question.Pair
		if err := rows.Scan(&pair.Question, &pair.Answer); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return pairs, nil
}

// Import replaces the contents of table with pairs, creating the table when
// needed. Positions follow slice order starting at 1.
func Import(ctx context.Context, path, table string, pairs []question.Pair) (err error) {
	name, err := TableName(table)
	if err != nil {
		return err
	}
	db, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()
	if err := EnsureSchema(ctx, db, name); err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", name)); err != nil {
		return fmt.Errorf("clear %s: %w", name, err)
	}
	insert := fmt.Sprintf("INSERT INTO %s (position, question, answer) VALUES (?, ?, ?)", name)
	for i, pair := range pairs {
		if _, err := tx.ExecContext(ctx, insert, i+1, pair.Question, pair.Answer); err != nil {
			return fmt.Errorf("insert question %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

package questiondb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DefaultTable is used when no table name is configured.
const DefaultTable = "questions"

// schemaTemplate holds the question table definition.
//
//go:embed schema.sql
var schemaTemplate string

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ErrInvalidTable reports a table name that is not a plain identifier.
var ErrInvalidTable = errors.New("questiondb: invalid table name")

// TableName returns the table to use, applying the default and rejecting
// anything that is not a bare SQL identifier.
func TableName(table string) (string, error) {
	if table == "" {
		return DefaultTable, nil
	}
	if !tableNamePattern.MatchString(table) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	return table, nil
}

// SchemaDDL returns the DDL creating the named question table.
func SchemaDDL(table string) (string, error) {
	name, err := TableName(table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(schemaTemplate, name), nil
}

// Open opens a DuckDB database file for writing, creating it when missing,
// and verifies it responds.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	return open(ctx, path, path)
}

// OpenReadOnly opens an existing DuckDB database file without write access.
// A missing file is reported as fs.ErrNotExist and is not created.
func OpenReadOnly(ctx context.Context, path string) (*sql.DB, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open duckdb: %w", err)
		}
	}
	return open(ctx, path, path+"?access_mode=READ_ONLY")
}

func open(ctx context.Context, path, dsn string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("questiondb: path is required")
	}
	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return conn, nil
}

// EnsureSchema creates the question table when it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	if db == nil {
		return errors.New("questiondb: db is nil")
	}
	ddl, err := SchemaDDL(table)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, ddl)
	return err
}

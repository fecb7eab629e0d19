// Package sqlite persists todos, work entries and categories in a SQLite
// database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	db   *sql.DB
	path string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		expected_minutes INTEGER NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT,
		end_time TEXT,
		actual_minutes INTEGER
	);`,
	`CREATE INDEX IF NOT EXISTS todos_date ON todos(date);`,
	`CREATE TABLE IF NOT EXISTS work_entries (
		id TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		actual_minutes INTEGER NOT NULL,
		expected_minutes INTEGER DEFAULT 0,
		notes TEXT,
		timestamp INTEGER DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS work_entries_date ON work_entries(date);`,
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE,
		description TEXT,
		color TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		work_entries_count INTEGER DEFAULT 0
	);`,
}

// Open connects to the database at path and creates any missing tables.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// a single connection avoids "database is locked" between writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}

	for _, query := range schema {
		if _, err := db.ExecContext(ctx, query); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &DB{db: db, path: path}, nil
}

func (d *DB) Close() error { return d.db.Close() }

func (d *DB) Todos() *TodoRepository { return &TodoRepository{db: d.db} }

func (d *DB) WorkEntries() *WorkRepository { return &WorkRepository{db: d.db} }

func (d *DB) Categories() *CategoryRepository { return &CategoryRepository{db: d.db} }

func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// mustAffect turns an update that matched no rows into notFound.
func mustAffect(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

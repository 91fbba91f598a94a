package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/avelorn/chronline/internal/domain"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		entry_date TEXT NOT NULL,
		app TEXT NOT NULL,
		minutes REAL NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		pickups INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(entry_date)`,
}

// SQLite is the EntryStore backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

var _ EntryStore = (*SQLite)(nil)

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" opens a private in-memory database; the connection pool
// is then capped at one so every query sees the same database.
func Open(path string) (*SQLite, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// WAL keeps readers unblocked during appends. A no-op for :memory:.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// OpenMemory opens a fresh in-memory store, used by tests and as the
// fallback when no database path is configured.
func OpenMemory() (*SQLite, error) {
	return Open(":memory:")
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Append(ctx context.Context, entries []domain.Entry) ([]domain.Entry, error) {
	stored := make([]domain.Entry, 0, len(entries))
	if len(entries) == 0 {
		return stored, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	const query = `INSERT INTO entries (id, entry_date, app, minutes, category, pickups, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	for _, e := range entries {
		e.ID = uuid.New().String()
		e.CreatedAt = now
		if _, err := tx.ExecContext(ctx, query,
			e.ID,
			e.DateKey(),
			e.App,
			e.Minutes,
			e.Category,
			e.Pickups,
			e.CreatedAt.Format(time.RFC3339),
		); err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("inserting entry: %w", err)
		}
		stored = append(stored, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}
	return stored, nil
}

func (s *SQLite) Snapshot(ctx context.Context) ([]domain.Entry, error) {
	const query = `SELECT id, entry_date, app, minutes, category, pickups, created_at
		FROM entries ORDER BY created_at, rowid`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		var dateStr, createdStr string
		if err := rows.Scan(&e.ID, &dateStr, &e.App, &e.Minutes, &e.Category, &e.Pickups, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if e.Date, err = domain.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("scanning entry date: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("scanning entry created_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing entries: %w", err)
	}
	return nil
}

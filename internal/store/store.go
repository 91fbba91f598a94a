package store

import (
	"context"

	"github.com/avelorn/chronline/internal/domain"
)

// EntryStore persists usage entries. The analytics pipeline never reads the
// database directly; it works off Snapshot, so any implementation that honors
// these semantics can back the service.
type EntryStore interface {
	// Append stores the batch atomically, assigning each entry an ID and
	// CreatedAt, and returns the stored entries in input order. On error
	// nothing is persisted.
	Append(ctx context.Context, entries []domain.Entry) ([]domain.Entry, error)

	// Snapshot returns all entries in insertion order. The returned slice is
	// owned by the caller.
	Snapshot(ctx context.Context) ([]domain.Entry, error)

	Count(ctx context.Context) (int, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

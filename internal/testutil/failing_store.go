package testutil

import (
	"context"

	"github.com/avelorn/chronline/internal/domain"
	"github.com/avelorn/chronline/internal/store"
)

// FailingStore wraps an EntryStore and injects errors per operation. This
// enables error-path tests in the service layer: a set error fires instead of
// the wrapped call, so the underlying store is left untouched.
type FailingStore struct {
	Inner       store.EntryStore
	AppendErr   error
	SnapshotErr error
	CountErr    error
	ClearErr    error
}

var _ store.EntryStore = (*FailingStore)(nil)

func (f *FailingStore) Append(ctx context.Context, entries []domain.Entry) ([]domain.Entry, error) {
	if f.AppendErr != nil {
		return nil, f.AppendErr
	}
	return f.Inner.Append(ctx, entries)
}

func (f *FailingStore) Snapshot(ctx context.Context) ([]domain.Entry, error) {
	if f.SnapshotErr != nil {
		return nil, f.SnapshotErr
	}
	return f.Inner.Snapshot(ctx)
}

func (f *FailingStore) Count(ctx context.Context) (int, error) {
	if f.CountErr != nil {
		return 0, f.CountErr
	}
	return f.Inner.Count(ctx)
}

func (f *FailingStore) Clear(ctx context.Context) error {
	if f.ClearErr != nil {
		return f.ClearErr
	}
	return f.Inner.Clear(ctx)
}

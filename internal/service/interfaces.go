package service

import (
	"context"

	"github.com/avelorn/chronline/internal/contract"
)

// ReportService is the single use-case boundary over the entry store and the
// analytics pipeline. Every caller (HTTP API, CLI, TUI) goes through it.
type ReportService interface {
	// Submit validates the batch as a whole, stores it, and returns the
	// refreshed report over all stored entries. Any violation rejects the
	// entire batch and leaves the store untouched.
	Submit(ctx context.Context, inputs []contract.EntryInput) (*contract.SubmitResult, error)

	// Analytics recomputes the report over the current snapshot.
	Analytics(ctx context.Context) (*contract.Report, error)

	// Entries lists all stored entries in insertion order.
	Entries(ctx context.Context) ([]contract.Entry, error)

	// Clear discards all stored entries.
	Clear(ctx context.Context) error
}

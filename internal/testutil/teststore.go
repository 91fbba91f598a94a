package testutil

import (
	"testing"

	"github.com/avelorn/chronline/internal/store"
)

// NewTestStore creates an in-memory entry store with the schema applied. The
// store is closed when the test completes.
func NewTestStore(t *testing.T) *store.SQLite {
	t.Helper()
	s, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelorn/chronline/internal/domain"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func entry(date time.Time, app string, minutes float64, pickups int) domain.Entry {
	return domain.Entry{Date: date, App: app, Minutes: minutes, Pickups: pickups}
}

func TestSQLite_AppendAndSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	stored, err := s.Append(ctx, []domain.Entry{
		entry(d, "Instagram", 120, 15),
		{Date: d, App: "Slack", Minutes: 60.5, Category: "Work", Pickups: 4},
	})
	require.NoError(t, err)
	require.Len(t, stored, 2)

	assert.NotEmpty(t, stored[0].ID)
	assert.NotEmpty(t, stored[1].ID)
	assert.NotEqual(t, stored[0].ID, stored[1].ID)
	assert.WithinDuration(t, time.Now(), stored[0].CreatedAt, 5*time.Second)

	got, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, stored[0].ID, got[0].ID)
	assert.Equal(t, "Instagram", got[0].App)
	assert.Equal(t, 120.0, got[0].Minutes)
	assert.Equal(t, 15, got[0].Pickups)
	assert.Equal(t, "", got[0].Category)
	assert.Equal(t, d, got[0].Date)
	assert.Equal(t, "Slack", got[1].App)
	assert.Equal(t, 60.5, got[1].Minutes)
	assert.Equal(t, "Work", got[1].Category)
}

func TestSQLite_SnapshotEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLite_AppendEmptyBatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stored, err := s.Append(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, stored)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSQLite_Count(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	_, err := s.Append(ctx, []domain.Entry{
		entry(d, "Instagram", 30, 2),
		entry(d, "TikTok", 45, 9),
		entry(d.AddDate(0, 0, 1), "Slack", 20, 1),
	})
	require.NoError(t, err)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSQLite_Clear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	_, err := s.Append(ctx, []domain.Entry{entry(d, "Instagram", 30, 2)})
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_SnapshotKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	_, err := s.Append(ctx, []domain.Entry{
		entry(d, "First", 10, 0),
		entry(d, "Second", 10, 0),
	})
	require.NoError(t, err)
	_, err = s.Append(ctx, []domain.Entry{entry(d, "Third", 10, 0)})
	require.NoError(t, err)

	got, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].App)
	assert.Equal(t, "Second", got[1].App)
	assert.Equal(t, "Third", got[2].App)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "chronline.db")
	ctx := context.Background()
	d := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Append(ctx, []domain.Entry{entry(d, "Instagram", 90, 12)})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Instagram", got[0].App)
	assert.Equal(t, 90.0, got[0].Minutes)
}

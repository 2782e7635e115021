package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan-coder0/Monitor-Mate/internal/core/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBlobRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	blob := map[string]any{"theme": "dark", "interval": float64(30)}
	require.NoError(t, store.PutBlob(ctx, "settings", blob))

	got, err := store.GetBlob(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestBlobUpsertOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutBlob(ctx, "settings", map[string]any{"v": "one"}))
	require.NoError(t, store.PutBlob(ctx, "settings", map[string]any{"v": "two"}))

	got, err := store.GetBlob(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, "two", got["v"])
}

func TestGetBlobMissingKeyDegradesToEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetBlob(context.Background(), "never_written")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetBlobCorruptPayloadDegradesToEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Write a row that is not valid JSON behind the adapter's back.
	row := BlobModel{Key: "scan_results", Payload: "{not json", UpdatedAt: time.Now()}
	require.NoError(t, store.db.Create(&row).Error)

	got, err := store.GetBlob(ctx, "scan_results")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReportHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	last, err := store.LastReport(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	older := domain.ReportRecord{
		ID:          "r1",
		GeneratedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Path:        "/tmp/r1.pdf",
		Pages:       4,
		TotalApps:   12,
	}
	newer := domain.ReportRecord{
		ID:          "r2",
		GeneratedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Path:        "/tmp/r2.pdf",
		Pages:       6,
		TotalApps:   14,
		HighRisk:    2,
	}
	require.NoError(t, store.RecordReport(ctx, older))
	require.NoError(t, store.RecordReport(ctx, newer))

	last, err = store.LastReport(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "r2", last.ID)
	assert.Equal(t, 6, last.Pages)
	assert.Equal(t, 2, last.HighRisk)
}

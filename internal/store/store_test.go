package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"slambook/internal/logging"
	"slambook/internal/models"
)

func setupDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func setupStore(t *testing.T, name string) *Store {
	t.Helper()
	return New(setupDB(t, name), logging.Discard())
}

func sampleEntry(id, name string) models.Entry {
	return models.Entry{
		ID:            id,
		Name:          name,
		Nickname:      "nick",
		Birthday:      "1990-05-01",
		ContactNumber: "+371 200-000",
		About:         "about " + name,
		Message:       "hello",
		Tags:          []string{"friend"},
	}
}

func TestEntries_EmptyDatabase(t *testing.T) {
	s := setupStore(t, "empty")
	ctx := context.Background()

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveEntry_CreateMintsLocalID(t *testing.T) {
	s := setupStore(t, "create")
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, sampleEntry("", "Alice"))
	require.NoError(t, err)

	assert.True(t, models.IsLocalID(saved.ID))
	assert.False(t, saved.IsFavorite)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Nil(t, saved.UpdatedAt)

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, saved.ID, entries[0].ID)
}

func TestSaveEntry_UpdatePreservesCreatedAt(t *testing.T) {
	s := setupStore(t, "update")
	ctx := context.Background()

	created := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)
	s.now = func() time.Time { return created }

	saved, err := s.SaveEntry(ctx, sampleEntry("", "Alice"))
	require.NoError(t, err)

	s.now = func() time.Time { return later }
	saved.Name = "Alice B"
	updated, err := s.SaveEntry(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, "Alice B", updated.Name)
	assert.True(t, updated.CreatedAt.Equal(created))
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.Equal(later))

	got, err := s.GetEntry(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
}

func TestGetEntry_NotFound(t *testing.T) {
	s := setupStore(t, "getmissing")

	_, err := s.GetEntry(context.Background(), "entry_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEntry(t *testing.T) {
	s := setupStore(t, "delete")
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, sampleEntry("", "Alice"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(ctx, saved.ID))

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// absent id is a silent no-op
	require.NoError(t, s.DeleteEntry(ctx, "entry_missing"))
}

func TestToggleFavorite(t *testing.T) {
	s := setupStore(t, "toggle")
	ctx := context.Background()

	saved, err := s.SaveEntry(ctx, sampleEntry("", "Alice"))
	require.NoError(t, err)

	toggled, err := s.ToggleFavorite(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.True(t, toggled.IsFavorite)
	assert.NotNil(t, toggled.UpdatedAt)

	toggled, err = s.ToggleFavorite(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, toggled)
	assert.False(t, toggled.IsFavorite)
}

func TestToggleFavorite_MissingIsNoOp(t *testing.T) {
	s := setupStore(t, "togglemissing")

	toggled, err := s.ToggleFavorite(context.Background(), "entry_missing")
	require.NoError(t, err)
	assert.Nil(t, toggled)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := setupStore(t, "exportsrc")
	dst := setupStore(t, "exportdst")
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := src.SaveEntry(ctx, sampleEntry("", name))
		require.NoError(t, err)
	}

	exported, err := src.Export(ctx)
	require.NoError(t, err)

	result, err := dst.Import(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Success)
	assert.Empty(t, result.Errors)

	stats, err := dst.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
}

func TestImport_PartialFailure(t *testing.T) {
	s := setupStore(t, "importpartial")
	ctx := context.Background()

	_, err := s.SaveEntry(ctx, models.Entry{ID: "1", Name: "Existing"})
	require.NoError(t, err)

	payload := `[
		{"id": "2", "name": "Good"},
		{"id": "", "name": "No ID"},
		{"id": "1", "name": "Duplicate"},
		"not an object"
	]`

	result, err := s.Import(ctx, payload)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "Entry 2: Missing required fields (id, name)", result.Errors[0])
	assert.Equal(t, "Entry 3: Entry with ID 1 already exists", result.Errors[1])
	assert.Equal(t, "Entry 4: Invalid entry format", result.Errors[2])

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestImport_DuplicateIDWithinBatch(t *testing.T) {
	s := setupStore(t, "importdupbatch")
	ctx := context.Background()

	payload := `[
		{"id": "7", "name": "First"},
		{"id": "7", "name": "Second"}
	]`

	result, err := s.Import(ctx, payload)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Entry 2: Entry with ID 7 already exists", result.Errors[0])

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "First", entries[0].Name)
}

func TestImport_InvalidDocument(t *testing.T) {
	s := setupStore(t, "importbad")

	_, err := s.Import(context.Background(), "{not json")
	assert.ErrorIs(t, err, ErrStorage)
}

func TestClearAll(t *testing.T) {
	s := setupStore(t, "clear")
	ctx := context.Background()

	_, err := s.SaveEntry(ctx, sampleEntry("", "Alice"))
	require.NoError(t, err)

	require.NoError(t, s.ClearAll(ctx))

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStatistics(t *testing.T) {
	s := setupStore(t, "stats")
	ctx := context.Background()

	a := sampleEntry("", "Alice")
	a.IsFavorite = true
	a.Tags = []string{"friend", "school"}
	_, err := s.SaveEntry(ctx, a)
	require.NoError(t, err)

	b := sampleEntry("", "Bob")
	b.Tags = []string{"friend"}
	_, err = s.SaveEntry(ctx, b)
	require.NoError(t, err)

	stats, err := s.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, map[string]int{"friend": 2, "school": 1}, stats.ByTag)
}

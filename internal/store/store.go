// Package store is the legacy local persistence facade. The whole entry
// collection lives under one fixed key in a SQLite key/value table and every
// mutation is a read-modify-write of that one value. It mirrors the remote
// facade's surface so callers can run fully offline.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"slambook/internal/logging"
	"slambook/internal/models"
	"slambook/internal/query"
)

// EntriesKey is the fixed key holding the serialized entry collection.
const EntriesKey = "slambook_entries"

// Store exposes CRUD, import/export, and statistics over the local
// collection.
type Store struct {
	kv  *KV
	log logging.Logger
	now func() time.Time
}

// New returns a Store over the given database handle.
func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{kv: NewKV(db), log: log, now: time.Now}
}

// Entries returns the full local collection. A missing or empty stored
// value reads as an empty collection.
func (s *Store) Entries(ctx context.Context) ([]models.Entry, error) {
	data, err := s.kv.Get(ctx, EntriesKey)
	if err != nil {
		s.log.Error(ctx, "reading local entries", "error", err)
		return nil, fmt.Errorf("%w: failed to read entries", ErrStorage)
	}
	if len(data) == 0 {
		return []models.Entry{}, nil
	}

	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Error(ctx, "decoding local entries", "error", err)
		return nil, fmt.Errorf("%w: failed to read entries", ErrStorage)
	}
	return entries, nil
}

// GetEntry returns one entry by id or ErrNotFound.
func (s *Store) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return models.Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Entry{}, ErrNotFound
}

// SaveEntry creates or updates by id. An existing entry is replaced in place
// with its original createdAt preserved and a fresh updatedAt; a new entry is
// appended with createdAt stamped if absent and no updatedAt. An entry with
// no id is given a local one.
func (s *Store) SaveEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return models.Entry{}, err
	}

	if entry.ID == "" {
		entry.ID = models.NewLocalID()
	}

	now := s.now()
	found := false
	for i := range entries {
		if entries[i].ID == entry.ID {
			entry.CreatedAt = entries[i].CreatedAt
			stamp := now
			entry.UpdatedAt = &stamp
			entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = now
		}
		entry.UpdatedAt = nil
		entries = append(entries, entry)
	}

	if err := s.writeEntries(ctx, entries); err != nil {
		return models.Entry{}, fmt.Errorf("%w: failed to save entry", ErrStorage)
	}
	return entry, nil
}

// DeleteEntry removes by id, silently no-oping when the id is absent.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if err := s.writeEntries(ctx, kept); err != nil {
		return fmt.Errorf("%w: failed to delete entry", ErrStorage)
	}
	return nil
}

// ToggleFavorite flips the flag and stamps updatedAt. A missing id is a
// no-op and returns a nil entry.
func (s *Store) ToggleFavorite(ctx context.Context, id string) (*models.Entry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	var toggled *models.Entry
	for i := range entries {
		if entries[i].ID == id {
			entries[i].IsFavorite = !entries[i].IsFavorite
			stamp := s.now()
			entries[i].UpdatedAt = &stamp
			toggled = &entries[i]
			break
		}
	}
	if toggled == nil {
		return nil, nil
	}

	if err := s.writeEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("%w: failed to toggle favorite", ErrStorage)
	}
	return toggled, nil
}

// Export serializes the collection as an indented JSON document suitable for
// a round trip through Import.
func (s *Store) Export(ctx context.Context) (string, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		s.log.Error(ctx, "encoding export", "error", err)
		return "", fmt.Errorf("%w: failed to export entries", ErrStorage)
	}
	return string(data), nil
}

// Import parses jsonText as an entry sequence and appends the acceptable
// items. An item is rejected with a per-item error when it cannot be decoded,
// is missing id or name, or its id already exists; one bad item never aborts
// the batch.
func (s *Store) Import(ctx context.Context, jsonText string) (models.ImportResult, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		s.log.Error(ctx, "decoding import payload", "error", err)
		return models.ImportResult{}, fmt.Errorf("%w: failed to import entries", ErrStorage)
	}

	existing, err := s.Entries(ctx)
	if err != nil {
		return models.ImportResult{}, err
	}
	existingIDs := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		existingIDs[e.ID] = struct{}{}
	}

	result := models.ImportResult{Errors: []string{}}
	for i, item := range raw {
		var entry models.Entry
		if err := json.Unmarshal(item, &entry); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: Invalid entry format", i+1))
			continue
		}
		if entry.ID == "" || entry.Name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: Missing required fields (id, name)", i+1))
			continue
		}
		if _, ok := existingIDs[entry.ID]; ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Entry %d: Entry with ID %s already exists", i+1, entry.ID))
			continue
		}
		existing = append(existing, entry)
		existingIDs[entry.ID] = struct{}{}
		result.Success++
	}

	if err := s.writeEntries(ctx, existing); err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: failed to import entries", ErrStorage)
	}
	return result, nil
}

// ClearAll drops the whole local collection.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.kv.Delete(ctx, EntriesKey); err != nil {
		s.log.Error(ctx, "clearing local entries", "error", err)
		return fmt.Errorf("%w: failed to clear entries", ErrStorage)
	}
	return nil
}

// Statistics computes the aggregate client-side by scanning the collection.
func (s *Store) Statistics(ctx context.Context) (models.EntryStatistics, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return models.EntryStatistics{}, err
	}
	return query.Statistics(entries), nil
}

func (s *Store) writeEntries(ctx context.Context, entries []models.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		s.log.Error(ctx, "encoding local entries", "error", err)
		return err
	}
	if err := s.kv.Set(ctx, EntriesKey, data); err != nil {
		s.log.Error(ctx, "writing local entries", "error", err)
		return err
	}
	return nil
}

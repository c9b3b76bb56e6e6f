package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"slambook/internal/api"
	"slambook/internal/logging"
	"slambook/internal/models"
)

// EntryService exposes the remote entry operations behind a cached list.
// The cache is replaced wholesale after every mutation (invalidate then
// refetch) rather than patched in place.
type EntryService interface {
	// List returns the cached collection, refetching when invalid.
	List(ctx context.Context) ([]models.Entry, error)

	// Get fetches one entry by id.
	Get(ctx context.Context, id string) (models.Entry, error)

	// Save validates the draft and creates or updates depending on its
	// identity. The returned bool reports whether an update happened.
	Save(ctx context.Context, draft models.EntryDraft) (models.Entry, bool, error)

	Delete(ctx context.Context, id string) error

	// ToggleFavorite flips the flag server-side; callers use the returned
	// entry's IsFavorite to pick the success message.
	ToggleFavorite(ctx context.Context, id string) (models.Entry, error)

	// Statistics returns the server-computed aggregate.
	Statistics(ctx context.Context) (models.EntryStatistics, error)

	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, jsonText string) (models.ImportResult, error)
}

type entryService struct {
	client api.Client
	log    logging.Logger

	mu    sync.Mutex
	cache []models.Entry
	valid bool
	gen   uint64
}

// NewEntryService wraps the given API client.
func NewEntryService(client api.Client, log logging.Logger) EntryService {
	return &entryService{client: client, log: log}
}

func (s *entryService) List(ctx context.Context) ([]models.Entry, error) {
	s.mu.Lock()
	if s.valid {
		cached := append([]models.Entry(nil), s.cache...)
		s.mu.Unlock()
		return cached, nil
	}
	gen := s.gen
	s.mu.Unlock()

	entries, err := s.client.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	// A fetch started before a later invalidation must not overwrite
	// fresher data; the generation fence discards it.
	s.mu.Lock()
	if gen == s.gen {
		s.cache = entries
		s.valid = true
	}
	s.mu.Unlock()
	return entries, nil
}

func (s *entryService) invalidate() {
	s.mu.Lock()
	s.gen++
	s.valid = false
	s.cache = nil
	s.mu.Unlock()
}

func (s *entryService) Get(ctx context.Context, id string) (models.Entry, error) {
	entry, err := s.client.GetEntry(ctx, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("retrieving entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) Save(ctx context.Context, draft models.EntryDraft) (models.Entry, bool, error) {
	if err := draft.Validate(); err != nil {
		return models.Entry{}, false, err
	}
	draft.Tags = models.NormalizeTags(draft.Tags)

	// A legacy local id is meaningless to the server; the record is
	// promoted by creating it fresh.
	isUpdate := !draft.IsNew() && !models.IsLocalID(draft.ID)

	var entry models.Entry
	var err error
	if isUpdate {
		entry, err = s.client.UpdateEntry(ctx, draft.ID, draft)
	} else {
		entry, err = s.client.CreateEntry(ctx, draft)
	}
	if err != nil {
		return models.Entry{}, isUpdate, fmt.Errorf("saving entry: %w", err)
	}

	s.invalidate()
	return entry, isUpdate, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *entryService) ToggleFavorite(ctx context.Context, id string) (models.Entry, error) {
	entry, err := s.client.ToggleFavorite(ctx, id)
	if err != nil {
		return models.Entry{}, fmt.Errorf("toggling favorite: %w", err)
	}
	s.invalidate()
	return entry, nil
}

func (s *entryService) Statistics(ctx context.Context) (models.EntryStatistics, error) {
	stats, err := s.client.Statistics(ctx)
	if err != nil {
		return models.EntryStatistics{}, fmt.Errorf("fetching statistics: %w", err)
	}
	return stats, nil
}

func (s *entryService) Export(ctx context.Context) (string, error) {
	doc, err := s.client.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("exporting entries: %w", err)
	}
	return doc, nil
}

func (s *entryService) Import(ctx context.Context, jsonText string) (models.ImportResult, error) {
	var entries []models.Entry
	if err := json.Unmarshal([]byte(jsonText), &entries); err != nil {
		return models.ImportResult{}, fmt.Errorf("invalid format: expected an entry array: %w", err)
	}

	result, err := s.client.Import(ctx, entries)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("importing entries: %w", err)
	}
	s.invalidate()
	return result, nil
}

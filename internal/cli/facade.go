package cli

import (
	"context"

	"slambook/internal/models"
	"slambook/internal/services"
	"slambook/internal/store"
)

// dataFacade is the uniform CRUD surface the REPL drives, implemented by
// the remote API path and the legacy local path.
type dataFacade interface {
	List(ctx context.Context) ([]models.Entry, error)
	Get(ctx context.Context, id string) (models.Entry, error)
	Save(ctx context.Context, draft models.EntryDraft) (models.Entry, bool, error)
	Delete(ctx context.Context, id string) error
	// ToggleFavorite returns nil when the id was absent (local no-op).
	ToggleFavorite(ctx context.Context, id string) (*models.Entry, error)
	Statistics(ctx context.Context) (models.EntryStatistics, error)
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, jsonText string) (models.ImportResult, error)
}

type remoteFacade struct {
	svc services.EntryService
}

func (r *remoteFacade) List(ctx context.Context) ([]models.Entry, error) {
	return r.svc.List(ctx)
}

func (r *remoteFacade) Get(ctx context.Context, id string) (models.Entry, error) {
	return r.svc.Get(ctx, id)
}

func (r *remoteFacade) Save(ctx context.Context, draft models.EntryDraft) (models.Entry, bool, error) {
	return r.svc.Save(ctx, draft)
}

func (r *remoteFacade) Delete(ctx context.Context, id string) error {
	return r.svc.Delete(ctx, id)
}

func (r *remoteFacade) ToggleFavorite(ctx context.Context, id string) (*models.Entry, error) {
	entry, err := r.svc.ToggleFavorite(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *remoteFacade) Statistics(ctx context.Context) (models.EntryStatistics, error) {
	return r.svc.Statistics(ctx)
}

func (r *remoteFacade) Export(ctx context.Context) (string, error) {
	return r.svc.Export(ctx)
}

func (r *remoteFacade) Import(ctx context.Context, jsonText string) (models.ImportResult, error) {
	return r.svc.Import(ctx, jsonText)
}

type localFacade struct {
	store *store.Store
}

func (l *localFacade) List(ctx context.Context) ([]models.Entry, error) {
	return l.store.Entries(ctx)
}

func (l *localFacade) Get(ctx context.Context, id string) (models.Entry, error) {
	return l.store.GetEntry(ctx, id)
}

func (l *localFacade) Save(ctx context.Context, draft models.EntryDraft) (models.Entry, bool, error) {
	if err := draft.Validate(); err != nil {
		return models.Entry{}, false, err
	}
	draft.Tags = models.NormalizeTags(draft.Tags)
	entry, err := l.store.SaveEntry(ctx, draft.Entry())
	return entry, !draft.IsNew(), err
}

func (l *localFacade) Delete(ctx context.Context, id string) error {
	return l.store.DeleteEntry(ctx, id)
}

func (l *localFacade) ToggleFavorite(ctx context.Context, id string) (*models.Entry, error) {
	return l.store.ToggleFavorite(ctx, id)
}

func (l *localFacade) Statistics(ctx context.Context) (models.EntryStatistics, error) {
	return l.store.Statistics(ctx)
}

func (l *localFacade) Export(ctx context.Context) (string, error) {
	return l.store.Export(ctx)
}

func (l *localFacade) Import(ctx context.Context, jsonText string) (models.ImportResult, error) {
	return l.store.Import(ctx, jsonText)
}

// Package api is the remote data facade: it speaks the backend's REST
// contract, translates the snake-case wire schema to the internal model,
// and normalizes transport faults to the client error taxonomy.
package api

import (
	"context"

	"slambook/internal/models"
)

// Client is the remote facade surface consumed by the application services.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Signup registers an account and returns the issued bearer token.
	Signup(ctx context.Context, name, email, password string) (string, error)

	// Me fetches the identity behind the current token.
	Me(ctx context.Context) (models.User, error)

	// ListEntries fetches every entry for the authenticated identity, in
	// server order.
	ListEntries(ctx context.Context) ([]models.Entry, error)

	// GetEntry fetches one entry or fails with ErrNotFound.
	GetEntry(ctx context.Context, id string) (models.Entry, error)

	// CreateEntry submits a draft and returns the server-assigned entry.
	CreateEntry(ctx context.Context, draft models.EntryDraft) (models.Entry, error)

	// UpdateEntry submits a draft against an existing id.
	UpdateEntry(ctx context.Context, id string, draft models.EntryDraft) (models.Entry, error)

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, id string) error

	// ToggleFavorite flips the favorite flag server-side and returns the
	// updated entry. Callers read the returned flag rather than guessing.
	ToggleFavorite(ctx context.Context, id string) (models.Entry, error)

	// Statistics fetches the server-computed aggregate.
	Statistics(ctx context.Context) (models.EntryStatistics, error)

	// Export fetches all entries and serializes them as an indented JSON
	// document in the internal-model shape.
	Export(ctx context.Context) (string, error)

	// Import creates each entry individually, continuing past per-item
	// failures.
	Import(ctx context.Context, entries []models.Entry) (models.ImportResult, error)
}

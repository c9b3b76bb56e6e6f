// Package models defines the slam-book entry record, its derived statistics,
// and the authenticated user identity.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalIDPrefix marks identifiers minted by the local (legacy) store.
// Server-issued identifiers never carry it.
const LocalIDPrefix = "entry_"

// Entry is a single slam-book profile record. JSON tags use the internal
// camel-case naming; the api package owns the translation to the snake-case
// wire schema.
type Entry struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Nickname      string     `json:"nickname"`
	Birthday      string     `json:"birthday"`
	ContactNumber string     `json:"contactNumber"`
	Likes         string     `json:"likes"`
	Dislikes      string     `json:"dislikes"`
	FavoriteMovie string     `json:"favoriteMovie"`
	FavoriteFood  string     `json:"favoriteFood"`
	About         string     `json:"about"`
	Message       string     `json:"message"`
	Tags          []string   `json:"tags,omitempty"`
	IsFavorite    bool       `json:"isFavorite"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// EntryDraft carries the user-editable fields of an entry on their way to a
// backing store. Identity is explicit: an empty ID means a new entry, a
// non-empty ID an existing one. Timestamps are never part of a draft; the
// owning store stamps them.
type EntryDraft struct {
	ID            string
	Name          string
	Nickname      string
	Birthday      string
	ContactNumber string
	Likes         string
	Dislikes      string
	FavoriteMovie string
	FavoriteFood  string
	About         string
	Message       string
	Tags          []string
	IsFavorite    bool
}

// IsNew reports whether the draft describes an entry that does not exist in
// any backing store yet.
func (d EntryDraft) IsNew() bool {
	return d.ID == ""
}

// Draft returns an EntryDraft pre-filled from an existing entry, for editing.
func (e Entry) Draft() EntryDraft {
	return EntryDraft{
		ID:            e.ID,
		Name:          e.Name,
		Nickname:      e.Nickname,
		Birthday:      e.Birthday,
		ContactNumber: e.ContactNumber,
		Likes:         e.Likes,
		Dislikes:      e.Dislikes,
		FavoriteMovie: e.FavoriteMovie,
		FavoriteFood:  e.FavoriteFood,
		About:         e.About,
		Message:       e.Message,
		Tags:          append([]string(nil), e.Tags...),
		IsFavorite:    e.IsFavorite,
	}
}

// Entry materializes the draft into an Entry record. Timestamps are left
// zero; the backing store stamps them on save.
func (d EntryDraft) Entry() Entry {
	return Entry{
		ID:            d.ID,
		Name:          d.Name,
		Nickname:      d.Nickname,
		Birthday:      d.Birthday,
		ContactNumber: d.ContactNumber,
		Likes:         d.Likes,
		Dislikes:      d.Dislikes,
		FavoriteMovie: d.FavoriteMovie,
		FavoriteFood:  d.FavoriteFood,
		About:         d.About,
		Message:       d.Message,
		Tags:          append([]string(nil), d.Tags...),
		IsFavorite:    d.IsFavorite,
	}
}

// NewLocalID mints an identifier for an entry created in the local store.
func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

// IsLocalID reports whether id was minted by the local store.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// NormalizeTags trims whitespace, drops empties, and suppresses duplicates
// while preserving first-seen order. Applied at the edit surface; the model
// itself does not enforce tag uniqueness.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

// EntryStatistics is the derived aggregate over an entry collection. It is
// recomputed on demand and never stored.
type EntryStatistics struct {
	Total     int            `json:"total"`
	Favorites int            `json:"favorites"`
	ByTag     map[string]int `json:"byTag"`
}

// ImportResult is the outcome of a batch import: per-item failures are
// collected, never fatal to the batch.
type ImportResult struct {
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}

// User is the authenticated identity as served by the backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

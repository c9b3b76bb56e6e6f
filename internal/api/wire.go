package api

import (
	"time"

	"slambook/internal/models"
)

// wireEntry is the snake-case shape served by the backend. Optional fields
// arrive as null; timestamps arrive as ISO strings that may lack a timezone,
// so they are kept as strings and parsed leniently.
type wireEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Nickname      string   `json:"nickname"`
	Birthday      string   `json:"birthday"`
	ContactNumber string   `json:"contact_number"`
	Likes         *string  `json:"likes"`
	Dislikes      *string  `json:"dislikes"`
	FavoriteMovie *string  `json:"favorite_movie"`
	FavoriteFood  *string  `json:"favorite_food"`
	About         string   `json:"about"`
	Message       string   `json:"message"`
	Tags          []string `json:"tags"`
	IsFavorite    *bool    `json:"is_favorite"`
	CreatedAt     *string  `json:"created_at"`
	UpdatedAt     *string  `json:"updated_at"`
}

// wireEntryPayload is the outbound shape for creates and updates. Identity
// and timestamps are never sent; the server treats absent optionals as null,
// so empty ones go out as null.
type wireEntryPayload struct {
	Name          string   `json:"name"`
	Nickname      string   `json:"nickname"`
	Birthday      string   `json:"birthday"`
	ContactNumber string   `json:"contact_number"`
	Likes         *string  `json:"likes"`
	Dislikes      *string  `json:"dislikes"`
	FavoriteMovie *string  `json:"favorite_movie"`
	FavoriteFood  *string  `json:"favorite_food"`
	About         string   `json:"about"`
	Message       string   `json:"message"`
	Tags          []string `json:"tags"`
	IsFavorite    bool     `json:"is_favorite"`
}

type wireStatistics struct {
	Total     int            `json:"total"`
	Favorites int            `json:"favorites"`
	ByTag     map[string]int `json:"by_tag"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseWireTime(s string) time.Time {
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (w wireEntry) toModel() models.Entry {
	e := models.Entry{
		ID:            w.ID,
		Name:          w.Name,
		Nickname:      w.Nickname,
		Birthday:      w.Birthday,
		ContactNumber: w.ContactNumber,
		About:         w.About,
		Message:       w.Message,
		Tags:          w.Tags,
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if w.Likes != nil {
		e.Likes = *w.Likes
	}
	if w.Dislikes != nil {
		e.Dislikes = *w.Dislikes
	}
	if w.FavoriteMovie != nil {
		e.FavoriteMovie = *w.FavoriteMovie
	}
	if w.FavoriteFood != nil {
		e.FavoriteFood = *w.FavoriteFood
	}
	if w.IsFavorite != nil {
		e.IsFavorite = *w.IsFavorite
	}
	if w.CreatedAt != nil {
		e.CreatedAt = parseWireTime(*w.CreatedAt)
	}
	if w.UpdatedAt != nil {
		if t := parseWireTime(*w.UpdatedAt); !t.IsZero() {
			e.UpdatedAt = &t
		}
	}
	return e
}

func payloadFromDraft(d models.EntryDraft) wireEntryPayload {
	return wireEntryPayload{
		Name:          d.Name,
		Nickname:      d.Nickname,
		Birthday:      d.Birthday,
		ContactNumber: d.ContactNumber,
		Likes:         optional(d.Likes),
		Dislikes:      optional(d.Dislikes),
		FavoriteMovie: optional(d.FavoriteMovie),
		FavoriteFood:  optional(d.FavoriteFood),
		About:         d.About,
		Message:       d.Message,
		Tags:          d.Tags,
		IsFavorite:    d.IsFavorite,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Package query implements the in-memory filtering, sorting, and statistics
// over entry collections. Everything here is a pure function of its inputs
// and safe to recompute on every change.
package query

import (
	"sort"
	"strings"

	"slambook/internal/models"
)

// SortMode selects the ordering applied after filtering.
type SortMode string

const (
	SortNameAsc   SortMode = "asc"
	SortNameDesc  SortMode = "desc"
	SortNewest    SortMode = "new"
	SortOldest    SortMode = "old"
	SortFavorites SortMode = "favorites"
)

// TagFilterAll is the sentinel tag filter meaning "no tag restriction".
const TagFilterAll = "all"

// Params describes one listing view: a search term, a tag restriction,
// a favorites-only flag, and a sort mode.
type Params struct {
	Search        string
	Tag           string
	FavoritesOnly bool
	Sort          SortMode
}

// Apply returns the filtered, ordered subsequence of entries described by p.
// The input slice is not modified.
func Apply(entries []models.Entry, p Params) []models.Entry {
	filtered := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if matches(e, p) {
			filtered = append(filtered, e)
		}
	}
	sortEntries(filtered, p.Sort)
	return filtered
}

func matches(e models.Entry, p Params) bool {
	if !matchesSearch(e, p.Search) {
		return false
	}
	if p.Tag != "" && p.Tag != TagFilterAll && !containsTag(e.Tags, p.Tag) {
		return false
	}
	if p.FavoritesOnly && !e.IsFavorite {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against every text
// field and every tag. An empty term matches everything.
func matchesSearch(e models.Entry, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	fields := []string{
		e.Name, e.Nickname, e.About, e.Message,
		e.Likes, e.Dislikes, e.FavoriteMovie, e.FavoriteFood,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// sortEntries orders in place. The sort is stable so entries with equal keys
// keep their prior relative order.
func sortEntries(entries []models.Entry, mode SortMode) {
	switch mode {
	case SortNameAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[j].Name < entries[i].Name
		})
	case SortOldest:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		})
	case SortFavorites:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].IsFavorite != entries[j].IsFavorite {
				return entries[i].IsFavorite
			}
			return entries[j].CreatedAt.Before(entries[i].CreatedAt)
		})
	default: // SortNewest
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[j].CreatedAt.Before(entries[i].CreatedAt)
		})
	}
}

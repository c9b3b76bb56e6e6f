package query

import (
	"sort"

	"slambook/internal/models"
)

// Statistics reduces a collection to its aggregate: total count, favorite
// count, and a per-tag histogram. An entry with N tags contributes to N
// counters.
func Statistics(entries []models.Entry) models.EntryStatistics {
	stats := models.EntryStatistics{ByTag: make(map[string]int)}
	for _, e := range entries {
		stats.Total++
		if e.IsFavorite {
			stats.Favorites++
		}
		for _, tag := range e.Tags {
			stats.ByTag[tag]++
		}
	}
	return stats
}

// AllTags returns the sorted set of distinct tags across the collection.
func AllTags(entries []models.Entry) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, tag := range e.Tags {
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

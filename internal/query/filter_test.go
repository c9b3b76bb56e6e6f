package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slambook/internal/models"
)

func testEntries() []models.Entry {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Entry{
		{
			ID: "1", Name: "Ann Lee", Nickname: "Annie",
			About: "Loves long walks on the beach", Message: "Stay awesome!",
			Tags: []string{"friends", "school"}, IsFavorite: true,
			CreatedAt: base,
		},
		{
			ID: "2", Name: "Bob Reyes", Nickname: "Bobby",
			About: "Mountain bike enthusiast", Message: "Keep pedaling",
			Likes: "trail rides", Tags: []string{"sports"},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "3", Name: "Cara Diaz", Nickname: "CC",
			About: "Movie trivia champion", Message: "See you around",
			FavoriteMovie: "Spirited Away", Tags: []string{"friends"},
			IsFavorite: true, CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "4", Name: "dan cho", Nickname: "Danny",
			About: "Collects vintage stamps", Message: "Write me sometime",
			CreatedAt: base.Add(72 * time.Hour),
		},
	}
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestApply_EmptySearchMatchesEverything(t *testing.T) {
	got := Apply(testEntries(), Params{Sort: SortNameAsc})
	assert.Len(t, got, 4)
}

func TestApply_SearchFields(t *testing.T) {
	entries := testEntries()
	tests := []struct {
		term string
		want []string
	}{
		{"ann", []string{"1", "4"}},   // name, substring, case-insensitive
		{"bobby", []string{"2"}},      // nickname
		{"beach", []string{"1"}},      // about
		{"pedaling", []string{"2"}},   // message
		{"trail", []string{"2"}},      // likes
		{"spirited", []string{"3"}},   // favorite movie
		{"sport", []string{"2"}},      // tag substring
		{"nothing here", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.term, func(t *testing.T) {
			got := Apply(entries, Params{Search: tc.term, Sort: SortNameAsc})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestApply_SearchIsSupersetRelaxation(t *testing.T) {
	entries := testEntries()
	all := Apply(entries, Params{Sort: SortNameAsc})
	narrowed := Apply(entries, Params{Search: "friends", Sort: SortNameAsc})

	for _, e := range narrowed {
		assert.Contains(t, ids(all), e.ID)
	}
}

func TestApply_TagFilter(t *testing.T) {
	entries := testEntries()

	got := Apply(entries, Params{Tag: "friends", Sort: SortNameAsc})
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = Apply(entries, Params{Tag: TagFilterAll, Sort: SortNameAsc})
	assert.Len(t, got, 4, "the sentinel applies no restriction")

	// exact membership, not substring
	got = Apply(entries, Params{Tag: "friend", Sort: SortNameAsc})
	assert.Empty(t, got)
}

func TestApply_FavoritesOnly(t *testing.T) {
	got := Apply(testEntries(), Params{FavoritesOnly: true, Sort: SortNameAsc})
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestApply_AllPredicatesMustHold(t *testing.T) {
	got := Apply(testEntries(), Params{Search: "ann", Tag: "friends", FavoritesOnly: true})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestApply_SortModes(t *testing.T) {
	entries := testEntries()
	tests := []struct {
		mode SortMode
		want []string
	}{
		{SortNameAsc, []string{"1", "2", "3", "4"}},
		{SortNameDesc, []string{"4", "3", "2", "1"}},
		{SortNewest, []string{"4", "3", "2", "1"}},
		{SortOldest, []string{"1", "2", "3", "4"}},
		{SortFavorites, []string{"3", "1", "4", "2"}},
	}
	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			got := Apply(entries, Params{Sort: tc.mode})
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestApply_NewestOrderingInvariant(t *testing.T) {
	got := Apply(testEntries(), Params{Sort: SortNewest})
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].CreatedAt.Before(got[i].CreatedAt))
	}
}

func TestApply_FavoritesFirstInvariant(t *testing.T) {
	got := Apply(testEntries(), Params{Sort: SortFavorites})
	seenNonFavorite := false
	for _, e := range got {
		if !e.IsFavorite {
			seenNonFavorite = true
		} else {
			assert.False(t, seenNonFavorite, "no favorite may follow a non-favorite")
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	entries := testEntries()
	p := Params{Search: "o", Sort: SortFavorites}

	first := Apply(entries, p)
	second := Apply(entries, p)
	assert.Equal(t, ids(first), ids(second))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	entries := testEntries()
	before := ids(entries)
	_ = Apply(entries, Params{Sort: SortNameDesc})
	require.Equal(t, before, ids(entries))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalID(t *testing.T) {
	id := NewLocalID()
	assert.True(t, IsLocalID(id))

	other := NewLocalID()
	assert.NotEqual(t, id, other)
}

func TestIsLocalID(t *testing.T) {
	assert.True(t, IsLocalID("entry_abc"))
	assert.False(t, IsLocalID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, IsLocalID(""))
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"dedup keeps first", []string{"friends", "school", "friends"}, []string{"friends", "school"}},
		{"trims and drops empties", []string{" friends ", "", "  "}, []string{"friends"}},
		{"order preserved", []string{"b", "a", "c", "a"}, []string{"b", "a", "c"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeTags(tc.in))
		})
	}
}

func TestDraftRoundTrip(t *testing.T) {
	e := Entry{
		ID:            "abc",
		Name:          "Ann Lee",
		Nickname:      "Annie",
		Birthday:      "2000-01-01",
		ContactNumber: "555-1234",
		Likes:         "sunsets",
		About:         "Loves long walks on the beach",
		Message:       "Stay awesome!",
		Tags:          []string{"friends"},
		IsFavorite:    true,
	}

	d := e.Draft()
	require.False(t, d.IsNew())

	back := d.Entry()
	assert.Equal(t, e.ID, back.ID)
	assert.Equal(t, e.Name, back.Name)
	assert.Equal(t, e.Tags, back.Tags)
	assert.Equal(t, e.IsFavorite, back.IsFavorite)
	assert.True(t, back.CreatedAt.IsZero(), "drafts never carry timestamps")
	assert.Nil(t, back.UpdatedAt)

	// tag slices must not alias
	d.Tags[0] = "changed"
	assert.Equal(t, "friends", e.Tags[0])
}

func TestDraftIsNew(t *testing.T) {
	assert.True(t, EntryDraft{}.IsNew())
	assert.False(t, EntryDraft{ID: "x"}.IsNew())
}

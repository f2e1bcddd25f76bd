package events

import (
	"strings"
	"testing"

	"eventpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	slug, err := ValidateSlug("  Go-Meetup ")
	require.NoError(t, err)
	assert.Equal(t, "go-meetup", slug)

	_, err = ValidateSlug("   ")
	assert.ErrorIs(t, err, ErrInvalid, "empty after trim")

	_, err = ValidateSlug(strings.Repeat("a", 201))
	assert.ErrorIs(t, err, ErrInvalid, "over 200 characters")

	slug, err = ValidateSlug(strings.Repeat("a", 200))
	require.NoError(t, err)
	assert.Len(t, slug, 200)
}

func TestApplyPatch(t *testing.T) {
	ev := &models.Event{
		Title: "Old Title",
		Slug:  "old-title",
		Date:  "2026-01-01",
		Time:  "10:00",
		Tags:  []string{"old"},
	}

	changed := applyPatch(ev, map[string]any{
		"title": "New Title",
		"tags":  []any{"go", "web"},
		"bogus": "ignored",
	})

	assert.Equal(t, "New Title", ev.Title)
	assert.Equal(t, []string{"go", "web"}, ev.Tags)
	assert.Equal(t, map[string]bool{"title": true, "tags": true}, changed)
	assert.Equal(t, "2026-01-01", ev.Date, "untouched fields keep their values")
}

func TestApplyPatchIgnoresWrongTypes(t *testing.T) {
	ev := &models.Event{Title: "Keep", Agenda: []string{"a"}}

	changed := applyPatch(ev, map[string]any{
		"title":  42,
		"agenda": "not-a-list",
	})

	assert.Empty(t, changed)
	assert.Equal(t, "Keep", ev.Title)
	assert.Equal(t, []string{"a"}, ev.Agenda)
}

func TestApplyPatchThenNormalize(t *testing.T) {
	ev := &models.Event{
		Title: "Old Title",
		Slug:  "old-title",
		Date:  "2026-01-01",
	}

	changed := applyPatch(ev, map[string]any{
		"title": "Brand New!",
		"date":  "March 5, 2026",
	})
	ev.Normalize(changed)

	assert.Equal(t, "brand-new", ev.Slug, "slug follows a title change")
	assert.Equal(t, "2026-03-05", ev.Date)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *Event {
	return &Event{
		Title:       "Go Meetup",
		Description: "An evening of talks.",
		Overview:    "Talks and networking.",
		Image:       "/static/eventpic/abc.jpg",
		Venue:       "Main Hall",
		Location:    "Berlin",
		Date:        "2026-03-05",
		Time:        "18:30",
		Mode:        "offline",
		Audience:    "Developers",
		Organizer:   "GoBerlin",
		Agenda:      []string{"Doors open", "Talks"},
		Tags:        []string{"go", "meetup"},
	}
}

func TestEventValidate(t *testing.T) {
	require.NoError(t, validEvent().Validate())

	cases := []struct {
		name   string
		mutate func(*Event)
	}{
		{"short title", func(e *Event) { e.Title = "Go" }},
		{"missing description", func(e *Event) { e.Description = "  " }},
		{"missing overview", func(e *Event) { e.Overview = "" }},
		{"missing image", func(e *Event) { e.Image = "" }},
		{"missing venue", func(e *Event) { e.Venue = "" }},
		{"missing location", func(e *Event) { e.Location = "" }},
		{"missing date", func(e *Event) { e.Date = "" }},
		{"missing time", func(e *Event) { e.Time = "" }},
		{"bad mode", func(e *Event) { e.Mode = "virtual" }},
		{"missing audience", func(e *Event) { e.Audience = "" }},
		{"missing organizer", func(e *Event) { e.Organizer = "" }},
		{"empty agenda", func(e *Event) { e.Agenda = nil }},
		{"empty tags", func(e *Event) { e.Tags = []string{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := validEvent()
			tc.mutate(ev)
			assert.Error(t, ev.Validate())
		})
	}
}

func TestEventValidateTrimsFields(t *testing.T) {
	ev := validEvent()
	ev.Title = "  Go Meetup  "
	ev.Venue = " Main Hall "
	require.NoError(t, ev.Validate())
	assert.Equal(t, "Go Meetup", ev.Title)
	assert.Equal(t, "Main Hall", ev.Venue)
}

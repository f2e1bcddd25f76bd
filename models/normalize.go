package models

import (
	"regexp"
	"strings"
	"time"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_]+`)
	slugTrimRe     = regexp.MustCompile(`^-+|-+$`)

	hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Layouts tried in order when normalizing a raw date string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04 pm",
	"3:04pm",
}

// Slugify derives a URL-safe slug from a title: lowercase, trim, strip
// everything that is not a word character, whitespace, or hyphen, collapse
// whitespace/underscore runs into single hyphens, trim leading/trailing
// hyphens. Deterministic; the same title always yields the same slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	s = slugTrimRe.ReplaceAllString(s, "")
	return s
}

// NormalizeDate rewrites a parseable date string to YYYY-MM-DD. An
// unparseable value is returned verbatim; rejecting it is not this
// layer's job.
func NormalizeDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// NormalizeTime rewrites a parseable time-of-day string to 24-hour HH:MM.
// A value already in that form is returned unchanged; an unparseable one
// is returned verbatim.
func NormalizeTime(raw string) string {
	if hhmmRe.MatchString(raw) {
		return raw
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04")
		}
	}
	return raw
}

// Normalize applies slug/date/time derivation to the fields named in
// changed. The slug is regenerated only when the title changed or no slug
// exists yet; date and time are touched only when they changed in the
// triggering write. Pure field rewriting, no I/O.
func (e *Event) Normalize(changed map[string]bool) {
	if changed["title"] || e.Slug == "" {
		e.Slug = Slugify(e.Title)
	}
	if changed["date"] {
		e.Date = NormalizeDate(e.Date)
	}
	if changed["time"] {
		e.Time = NormalizeTime(e.Time)
	}
}

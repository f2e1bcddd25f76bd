package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var eventModes = map[string]bool{
	"online":  true,
	"offline": true,
	"hybrid":  true,
}

type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description" bson:"description"`
	Overview    string             `json:"overview" bson:"overview"`
	Image       string             `json:"image" bson:"image"`
	Venue       string             `json:"venue" bson:"venue"`
	Location    string             `json:"location" bson:"location"`
	Date        string             `json:"date" bson:"date"`
	Time        string             `json:"time" bson:"time"`
	Mode        string             `json:"mode" bson:"mode"`
	Audience    string             `json:"audience" bson:"audience"`
	Organizer   string             `json:"organizer" bson:"organizer"`
	Agenda      []string           `json:"agenda" bson:"agenda"`
	Tags        []string           `json:"tags" bson:"tags"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate checks required fields before a write. Field trimming happens
// here so stored values never carry stray whitespace.
func (e *Event) Validate() error {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Overview = strings.TrimSpace(e.Overview)
	e.Venue = strings.TrimSpace(e.Venue)
	e.Location = strings.TrimSpace(e.Location)
	e.Audience = strings.TrimSpace(e.Audience)
	e.Organizer = strings.TrimSpace(e.Organizer)

	if len(e.Title) < 3 {
		return fmt.Errorf("title must be at least 3 characters")
	}
	if e.Description == "" {
		return fmt.Errorf("description is required")
	}
	if e.Overview == "" {
		return fmt.Errorf("overview is required")
	}
	if e.Image == "" {
		return fmt.Errorf("image URL is required")
	}
	if e.Venue == "" {
		return fmt.Errorf("venue is required")
	}
	if e.Location == "" {
		return fmt.Errorf("location is required")
	}
	if e.Date == "" {
		return fmt.Errorf("date is required")
	}
	if e.Time == "" {
		return fmt.Errorf("time is required")
	}
	if !eventModes[e.Mode] {
		return fmt.Errorf("mode must be online, offline, or hybrid")
	}
	if e.Audience == "" {
		return fmt.Errorf("audience is required")
	}
	if e.Organizer == "" {
		return fmt.Errorf("organizer is required")
	}
	if len(e.Agenda) == 0 {
		return fmt.Errorf("agenda must have at least one item")
	}
	if len(e.Tags) == 0 {
		return fmt.Errorf("at least one tag is required")
	}
	return nil
}

package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Simplified RFC 5322 shape; full address grammar is overkill here.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Booking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventID   primitive.ObjectID `json:"eventId" bson:"eventId"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate normalizes the email (trim, lowercase) and checks required
// fields. The referenced event's existence is checked separately, against
// the store, before the write.
func (b *Booking) Validate() error {
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))

	if b.EventID.IsZero() {
		return fmt.Errorf("event ID is required")
	}
	if b.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRe.MatchString(b.Email) {
		return fmt.Errorf("please provide a valid email address")
	}
	return nil
}

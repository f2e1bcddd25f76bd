package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventpulse/db"
	"eventpulse/events"
	"eventpulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("booking not found")
	ErrInvalid  = errors.New("invalid booking")
)

// Insert validates the booking, confirms the referenced event exists, and
// persists it. The existence check runs against the store via the lookup;
// on failure no record is written.
func Insert(ctx context.Context, b *models.Booking, lookup EventLookup) error {
	coll, err := db.Bookings()
	if err != nil {
		return err
	}

	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := EnsureEventExists(ctx, b.EventID, lookup); err != nil {
		return err
	}

	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	res, err := coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

// Update rewrites a booking's email and/or event reference. The
// referential check runs only when eventId actually changes.
func Update(ctx context.Context, id primitive.ObjectID, patch *models.Booking, lookup EventLookup) (*models.Booking, error) {
	coll, err := db.Bookings()
	if err != nil {
		return nil, err
	}

	existing, err := Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if applyBookingPatch(existing, patch) {
		if err := EnsureEventExists(ctx, existing.EventID, lookup); err != nil {
			return nil, err
		}
	}

	if err := existing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	existing.UpdatedAt = time.Now().UTC()

	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, existing); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return existing, nil
}

// applyBookingPatch copies the patch's set fields onto the existing
// booking and reports whether the event reference changed. A re-save that
// keeps the same eventId must not trigger another existence lookup.
func applyBookingPatch(existing, patch *models.Booking) (eventChanged bool) {
	if !patch.EventID.IsZero() && patch.EventID != existing.EventID {
		existing.EventID = patch.EventID
		eventChanged = true
	}
	if patch.Email != "" {
		existing.Email = patch.Email
	}
	return eventChanged
}

// Get fetches a single booking by id.
func Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	coll, err := db.Bookings()
	if err != nil {
		return nil, err
	}

	var b models.Booking
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: id %s", ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &b, nil
}

// LookupEvent is the production EventLookup, backed by the events store.
func LookupEvent(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return events.Exists(ctx, id)
}

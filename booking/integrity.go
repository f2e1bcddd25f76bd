package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEventMissing marks a booking write that references a non-existent
// event. The enclosing write fails atomically; nothing is persisted.
var ErrEventMissing = errors.New("referenced event does not exist")

// EventLookup reports whether an event id exists in the store.
type EventLookup func(ctx context.Context, id primitive.ObjectID) (bool, error)

// EnsureEventExists runs the referential check before a booking insert,
// and before any update that changes the event reference. It is skipped
// for re-saves that leave eventId untouched.
func EnsureEventExists(ctx context.Context, id primitive.ObjectID, lookup EventLookup) error {
	ok, err := lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("event existence check failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: event with ID %s does not exist, cannot create booking for non-existent event", ErrEventMissing, id.Hex())
	}
	return nil
}

package booking

import (
	"testing"

	"eventpulse/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApplyBookingPatchEventChange(t *testing.T) {
	oldID := primitive.NewObjectID()
	newID := primitive.NewObjectID()

	existing := &models.Booking{EventID: oldID, Email: "a@b.co"}
	changed := applyBookingPatch(existing, &models.Booking{EventID: newID})

	assert.True(t, changed, "a new event reference requires the existence re-check")
	assert.Equal(t, newID, existing.EventID)
	assert.Equal(t, "a@b.co", existing.Email)
}

func TestApplyBookingPatchSameEvent(t *testing.T) {
	id := primitive.NewObjectID()

	existing := &models.Booking{EventID: id, Email: "a@b.co"}
	changed := applyBookingPatch(existing, &models.Booking{EventID: id, Email: "new@b.co"})

	assert.False(t, changed, "re-saving the same eventId must not trigger another lookup")
	assert.Equal(t, "new@b.co", existing.Email)
}

func TestApplyBookingPatchEmailOnly(t *testing.T) {
	id := primitive.NewObjectID()

	existing := &models.Booking{EventID: id, Email: "a@b.co"}
	changed := applyBookingPatch(existing, &models.Booking{Email: "new@b.co"})

	assert.False(t, changed)
	assert.Equal(t, id, existing.EventID)
	assert.Equal(t, "new@b.co", existing.Email)
}

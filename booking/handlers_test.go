package booking

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateBookingRejectsMalformedID(t *testing.T) {
	r := httptest.NewRequest("PUT", "/api/bookings/nope", strings.NewReader(`{}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	UpdateBooking(w, r, httprouter.Params{{Key: "id", Value: "nope"}})

	assert.Equal(t, 400, w.Code)
}

func TestUpdateBookingRejectsNonJSONBody(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	r := httptest.NewRequest("PUT", "/api/bookings/"+id, strings.NewReader("email=x"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	UpdateBooking(w, r, httprouter.Params{{Key: "id", Value: id}})

	assert.Equal(t, 400, w.Code)
}

func TestUpdateBookingRejectsMalformedEventID(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	r := httptest.NewRequest("PUT", "/api/bookings/"+id,
		strings.NewReader(`{"eventId":"not-hex"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	UpdateBooking(w, r, httprouter.Params{{Key: "id", Value: id}})

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "eventId")
}

func TestCreateBookingRejectsUnsupportedMediaType(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/bookings", strings.NewReader("x"))
	r.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	CreateBooking(w, r, nil)

	assert.Equal(t, 400, w.Code)
}

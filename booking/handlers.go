package booking

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"eventpulse/ingest"
	"eventpulse/models"
	"eventpulse/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const handlerTimeout = 5 * time.Second

// CreateBooking handles POST /api/bookings. Accepts JSON or form bodies
// with eventId and email fields.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	b, err := ingest.BookingFromRequest(r)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	if err := Insert(ctx, b, LookupEvent); err != nil {
		writeBookingError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Booking created successfully",
		"booking": b,
	})
}

// UpdateBooking handles PUT /api/bookings/:id with a partial JSON body.
// The referential check reruns only when the event reference changes.
func UpdateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed booking id")
		return
	}

	if ingest.Classify(r.Header.Get("Content-Type")) != ingest.EncodingJSON {
		writeBookingError(w, ingest.ErrUnsupportedMediaType)
		return
	}

	var body struct {
		EventID string `json:"eventId"`
		Email   string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	patch := &models.Booking{Email: body.Email}
	if body.EventID != "" {
		eventID, err := primitive.ObjectIDFromHex(body.EventID)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Malformed eventId")
			return
		}
		patch.EventID = eventID
	}

	b, err := Update(ctx, id, patch, LookupEvent)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Booking updated successfully",
		"booking": b,
	})
}

// GetBooking handles GET /api/bookings/:id.
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed booking id")
		return
	}

	b, err := Get(ctx, id)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": b})
}

// writeBookingError maps booking errors onto HTTP status codes. A missing
// referenced event is a constraint violation and reads as a caller
// mistake, not a 404.
func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalid),
		errors.Is(err, ErrEventMissing),
		errors.Is(err, ingest.ErrInvalidInput),
		errors.Is(err, ingest.ErrUnsupportedMediaType):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("booking handler error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"eventpulse/filemgr"
	"eventpulse/ingest"
	"eventpulse/utils"

	"github.com/julienschmidt/httprouter"
)

// Uploads receives event images from form-encoded creations.
var Uploads ingest.Uploader = filemgr.NewLocalStore("./static", "/static")

const handlerTimeout = 5 * time.Second

// CreateEvent handles POST /api/events. Accepts a JSON body (image as a
// URL string) or a multipart/urlencoded form (image as a required file).
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	ev, err := ingest.EventFromRequest(r, Uploads)
	if err != nil {
		writeEventError(w, err)
		return
	}

	if err := Insert(ctx, ev); err != nil {
		writeEventError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Event created successfully",
		"event":   ev,
	})
}

// EditEvent handles PUT /api/events/:slug with a partial JSON body.
func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	slug, err := ValidateSlug(ps.ByName("slug"))
	if err != nil {
		writeEventError(w, err)
		return
	}

	if ingest.Classify(r.Header.Get("Content-Type")) != ingest.EncodingJSON {
		writeEventError(w, ingest.ErrUnsupportedMediaType)
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	ev, err := Update(ctx, slug, patch)
	if err != nil {
		writeEventError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Event updated successfully",
		"event":   ev,
	})
}

// GetEvents handles GET /api/events. Without query params every event is
// returned, newest first; explicit page/limit params paginate.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 10, 100)

	evs, total, err := List(ctx, skip, limit)
	if err != nil {
		writeEventError(w, err)
		return
	}

	resp := utils.M{
		"events":     evs,
		"eventCount": total,
	}
	if limit > 0 {
		resp["page"] = skip/limit + 1
		resp["limit"] = limit
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetEventsCount handles GET /api/events-count.
func GetEventsCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	_, total, err := List(ctx, 0, 1)
	if err != nil {
		writeEventError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"eventCount": total})
}

// GetEventBySlug handles GET /api/events/:slug.
func GetEventBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	slug, err := ValidateSlug(ps.ByName("slug"))
	if err != nil {
		writeEventError(w, err)
		return
	}

	ev, err := GetBySlug(ctx, slug)
	if err != nil {
		writeEventError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"event": ev})
}

// writeEventError maps store/ingestion errors onto HTTP status codes.
// Duplicate slugs surface as validation errors, per the write contract.
func writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalid),
		errors.Is(err, ErrDuplicateSlug),
		errors.Is(err, ingest.ErrInvalidInput),
		errors.Is(err, ingest.ErrUnsupportedMediaType),
		errors.Is(err, ingest.ErrMissingImage):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("event handler error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

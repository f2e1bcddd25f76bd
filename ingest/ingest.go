package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"eventpulse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxFormMemory = 10 << 20 // 10MB

// Uploader accepts raw image bytes and returns a durable URL. At most one
// upload happens per ingestion; a failure aborts the whole request.
type Uploader interface {
	Upload(ctx context.Context, data []byte, category string) (string, error)
}

// eventBody mirrors the JSON event-creation payload. Form-encoded
// requests are folded into the same shape before conversion.
type eventBody struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Organizer   string   `json:"organizer"`
	Agenda      []string `json:"agenda"`
	Tags        []string `json:"tags"`
}

// EventFromRequest turns a raw event-creation request into a model ready
// for the store. JSON bodies supply the image as a URL string; form bodies
// must carry an image file, whose bytes are handed to the uploader and
// replaced by the returned URL.
func EventFromRequest(r *http.Request, up Uploader) (*models.Event, error) {
	switch Classify(r.Header.Get("Content-Type")) {
	case EncodingJSON:
		return eventFromJSON(r)
	case EncodingForm:
		return eventFromForm(r, up)
	default:
		return nil, ErrUnsupportedMediaType
	}
}

func eventFromJSON(r *http.Request) (*models.Event, error) {
	var body eventBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON body", ErrInvalidInput)
	}
	if body.Agenda == nil {
		body.Agenda = []string{}
	}
	if body.Tags == nil {
		body.Tags = []string{}
	}
	return body.toEvent(), nil
}

func eventFromForm(r *http.Request, up Uploader) (*models.Event, error) {
	if err := parseForm(r); err != nil {
		return nil, err
	}

	body := eventBody{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Overview:    r.FormValue("overview"),
		Venue:       r.FormValue("venue"),
		Location:    r.FormValue("location"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Mode:        r.FormValue("mode"),
		Audience:    r.FormValue("audience"),
		Organizer:   r.FormValue("organizer"),
		// Form encoding flattens arrays to strings; recover them from
		// embedded JSON, tolerating garbage.
		Agenda: parseJSONList(r.FormValue("agenda")),
		Tags:   parseJSONList(r.FormValue("tags")),
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, ErrMissingImage
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading image file: %v", ErrUploadFailed, err)
	}

	url, err := up.Upload(r.Context(), data, "eventpic")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	body.Image = url

	return body.toEvent(), nil
}

func (b *eventBody) toEvent() *models.Event {
	return &models.Event{
		Title:       b.Title,
		Description: b.Description,
		Overview:    b.Overview,
		Image:       b.Image,
		Venue:       b.Venue,
		Location:    b.Location,
		Date:        b.Date,
		Time:        b.Time,
		Mode:        b.Mode,
		Audience:    b.Audience,
		Organizer:   b.Organizer,
		Agenda:      b.Agenda,
		Tags:        b.Tags,
	}
}

type bookingBody struct {
	EventID string `json:"eventId"`
	Email   string `json:"email"`
}

// BookingFromRequest extracts a booking payload from a JSON or form body.
func BookingFromRequest(r *http.Request) (*models.Booking, error) {
	var body bookingBody

	switch Classify(r.Header.Get("Content-Type")) {
	case EncodingJSON:
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: malformed JSON body", ErrInvalidInput)
		}
	case EncodingForm:
		if err := parseForm(r); err != nil {
			return nil, err
		}
		body.EventID = r.FormValue("eventId")
		body.Email = r.FormValue("email")
	default:
		return nil, ErrUnsupportedMediaType
	}

	if body.EventID == "" {
		return nil, fmt.Errorf("%w: eventId is required", ErrInvalidInput)
	}
	eventID, err := primitive.ObjectIDFromHex(body.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed eventId %q", ErrInvalidInput, body.EventID)
	}

	return &models.Booking{EventID: eventID, Email: body.Email}, nil
}

func parseForm(r *http.Request) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && err != http.ErrNotMultipart {
		return fmt.Errorf("%w: unable to parse form", ErrInvalidInput)
	}
	return nil
}

// parseJSONList decodes a JSON-encoded string list from a flattened form
// field. Malformed input yields an empty list rather than an error; this
// leniency is deliberate and scoped to these fields only.
func parseJSONList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventpulse/db"
	"eventpulse/models"
	"eventpulse/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound      = errors.New("event not found")
	ErrDuplicateSlug = errors.New("an event with this slug already exists")
	ErrInvalid       = errors.New("invalid event")
)

// Insert normalizes, validates, and inserts a new event. Every
// normalizable field counts as changed on create. A slug collision is
// surfaced as ErrDuplicateSlug; there is no de-duplication suffix scheme.
func Insert(ctx context.Context, ev *models.Event) error {
	coll, err := db.Events()
	if err != nil {
		return err
	}

	ev.Normalize(map[string]bool{"title": true, "date": true, "time": true})
	if err := ev.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	now := time.Now().UTC()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	res, err := coll.InsertOne(ctx, ev)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, ev.Slug)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ev.ID = oid
	}

	rdx.InvalidateEvent(ctx, ev.Slug)
	return nil
}

// Update applies a partial update to the event identified by slug. Only
// the fields present in the patch count as changed, so slug/date/time
// derivation runs exactly on what this write touches.
func Update(ctx context.Context, slug string, patch map[string]any) (*models.Event, error) {
	coll, err := db.Events()
	if err != nil {
		return nil, err
	}

	var ev models.Event
	if err := coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: slug %q", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	oldSlug := ev.Slug

	changed := applyPatch(&ev, patch)
	ev.Normalize(changed)
	if err := ev.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	ev.UpdatedAt = time.Now().UTC()

	_, err = coll.ReplaceOne(ctx, bson.M{"_id": ev.ID}, &ev)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, ev.Slug)
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	rdx.InvalidateEvent(ctx, oldSlug)
	rdx.InvalidateEvent(ctx, ev.Slug)
	return &ev, nil
}

// applyPatch copies recognized fields from a decoded JSON object onto the
// event and reports which ones changed. Unknown keys are ignored.
func applyPatch(ev *models.Event, patch map[string]any) map[string]bool {
	changed := make(map[string]bool)

	setString := func(key string, dst *string) {
		if v, ok := patch[key].(string); ok {
			*dst = v
			changed[key] = true
		}
	}
	setList := func(key string, dst *[]string) {
		raw, ok := patch[key].([]any)
		if !ok {
			return
		}
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		*dst = out
		changed[key] = true
	}

	setString("title", &ev.Title)
	setString("description", &ev.Description)
	setString("overview", &ev.Overview)
	setString("image", &ev.Image)
	setString("venue", &ev.Venue)
	setString("location", &ev.Location)
	setString("date", &ev.Date)
	setString("time", &ev.Time)
	setString("mode", &ev.Mode)
	setString("audience", &ev.Audience)
	setString("organizer", &ev.Organizer)
	setList("agenda", &ev.Agenda)
	setList("tags", &ev.Tags)

	return changed
}

// GetBySlug fetches a single event, trying the cache first.
func GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	if ev, ok := rdx.CachedEvent(ctx, slug); ok {
		return ev, nil
	}

	coll, err := db.Events()
	if err != nil {
		return nil, err
	}

	var ev models.Event
	if err := coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: slug %q", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	rdx.CacheEvent(ctx, &ev)
	return &ev, nil
}

// GetByID fetches a single event by its object id.
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	coll, err := db.Events()
	if err != nil {
		return nil, err
	}

	var ev models.Event
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: id %s", ErrNotFound, id.Hex())
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &ev, nil
}

// Exists reports whether an event with the given id is in the store.
// Projection keeps the lookup to the _id field only.
func Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	coll, err := db.Events()
	if err != nil {
		return false, err
	}

	err = coll.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check event existence: %w", err)
	}
	return true, nil
}

// List returns events ordered by creation time, most recent first, plus
// the total count. A limit of 0 returns every event.
func List(ctx context.Context, skip, limit int64) ([]models.Event, int64, error) {
	coll, err := db.Events()
	if err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer cursor.Close(ctx)

	evs := []models.Event{}
	if err := cursor.All(ctx, &evs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode events: %w", err)
	}
	return evs, total, nil
}

// ValidateSlug trims and lowercases a slug path parameter, rejecting the
// empty and the absurdly long.
func ValidateSlug(raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))
	if slug == "" {
		return "", fmt.Errorf("%w: slug cannot be empty", ErrInvalid)
	}
	if len(slug) > 200 {
		return "", fmt.Errorf("%w: slug exceeds maximum length", ErrInvalid)
	}
	return slug, nil
}

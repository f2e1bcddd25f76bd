package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"eventpulse/models"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client. Nil when Redis is not configured; every
// helper degrades to a no-op so reads fall through to MongoDB.
var Conn *redis.Client

const eventCacheTTL = 10 * time.Minute

// Setup initializes the shared client from REDIS_ADDR. Safe to skip;
// caching is an optimization, not a dependency.
func Setup() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func eventKey(slug string) string {
	return "event:slug:" + slug
}

// CachedEvent returns the cached event for a slug, if any.
func CachedEvent(ctx context.Context, slug string) (*models.Event, bool) {
	if Conn == nil {
		return nil, false
	}
	raw, err := Conn.Get(ctx, eventKey(slug)).Result()
	if err != nil {
		return nil, false
	}
	var ev models.Event
	if err := json.Unmarshal([]byte(raw), &ev); err != nil {
		log.Printf("cache decode error for slug %s: %v", slug, err)
		return nil, false
	}
	return &ev, true
}

// CacheEvent stores an event under its slug. Errors are logged, never
// surfaced.
func CacheEvent(ctx context.Context, ev *models.Event) {
	if Conn == nil || ev.Slug == "" {
		return
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := Conn.Set(ctx, eventKey(ev.Slug), raw, eventCacheTTL).Err(); err != nil {
		log.Printf("cache set error for slug %s: %v", ev.Slug, err)
	}
}

// InvalidateEvent drops the cached entry for a slug after a write.
func InvalidateEvent(ctx context.Context, slug string) {
	if Conn == nil || slug == "" {
		return
	}
	if err := Conn.Del(ctx, eventKey(slug)).Err(); err != nil {
		log.Printf("cache invalidation failed for slug %s: %v", slug, err)
	}
}

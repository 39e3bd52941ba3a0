package tracking

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vishalchandrakumar07/dummy-Mailer/internal/pkg/logger"
)

// Deduper marks the first open seen per contact via Redis SETNX, so the
// forwarded event can carry a unique-open flag. Only the first-seen marker
// is stored; the events themselves are never persisted locally.
type Deduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeduper creates a Redis-backed open deduper. ttl bounds how long the
// first-seen marker lives; zero means no expiry.
func NewDeduper(client *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{client: client, ttl: ttl}
}

// FirstOpen reports whether this is the first open observed for the email.
// Redis being unavailable must not block the beacon: the error is logged and
// the open is reported as not-unique.
func (d *Deduper) FirstOpen(ctx context.Context, email string) bool {
	ok, err := d.client.SetNX(ctx, "open:"+email, 1, d.ttl).Result()
	if err != nil {
		logger.Warn("open dedup unavailable", "email", email, "error", err)
		return false
	}
	return ok
}

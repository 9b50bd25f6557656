// Package cache keeps small pieces of record-store metadata (such as the
// title property of a database) between requests.
package cache

import (
	"context"
	"time"
)

// SchemaCache is a string key/value cache with per-entry expiry. A failed
// lookup is always reported as a miss.
type SchemaCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

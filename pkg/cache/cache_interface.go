package cache

import (
	"context"
	"time"
)

// Cache is the small key/value contract the services depend on.
// Entity records never go through it; it only holds short-lived counters.
type Cache interface {
	// Get unmarshals the value at key into dest.
	// found is false on a miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error

	// IncrementWindow atomically adds one to key, creating it at 1, and
	// gives it a TTL of window whenever it has none. The count and its
	// expiry are set in the same step, so a counter can never outlive the
	// window.
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

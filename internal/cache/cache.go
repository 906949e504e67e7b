// Package cache provides the get-or-populate cache used for list endpoints.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache stores JSON-encoded values. Remember decodes a cached value into dest,
// or calls producer, stores its result for ttl and decodes that into dest.
// Forget must be visible to every Remember that starts after it returns.
type Cache interface {
	Remember(ctx context.Context, key string, ttl time.Duration, dest interface{}, producer func() (interface{}, error)) error
	Forget(ctx context.Context, key string) error
}

func populate(dest interface{}, producer func() (interface{}, error)) ([]byte, error) {
	value, err := producer()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return nil, err
	}
	return raw, nil
}

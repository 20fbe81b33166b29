package repo

import (
	"context"
	"encoding/json"
	"time"
)

type WeatherCacheRepository interface {
	// Get returns (nil, nil) on a miss; absence or expiry is never an error.
	Get(ctx context.Context, restaurantID string) (json.RawMessage, error)
	Set(ctx context.Context, restaurantID string, payload json.RawMessage, ttl time.Duration) error
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type WeatherCacheRepository struct {
	client *redis.Client
}

func NewWeatherCacheRepository(client *redis.Client) *WeatherCacheRepository {
	return &WeatherCacheRepository{
		client: client,
	}
}

func (r *WeatherCacheRepository) Get(ctx context.Context, restaurantID string) (json.RawMessage, error) {
	payload, err := r.client.Get(ctx, weatherKeyByID(restaurantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached weather: %w", err)
	}

	return payload, nil
}

func (r *WeatherCacheRepository) Set(ctx context.Context, restaurantID string, payload json.RawMessage, ttl time.Duration) error {
	err := r.client.Set(ctx, weatherKeyByID(restaurantID), []byte(payload), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache weather: %w", err)
	}

	return nil
}

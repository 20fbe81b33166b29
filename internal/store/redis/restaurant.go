package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RestaurantRepository struct {
	client *redis.Client
}

func NewRestaurantRepository(client *redis.Client) *RestaurantRepository {
	return &RestaurantRepository{
		client: client,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	err := r.client.HSet(ctx, restaurantKeyByID(restaurant.ID),
		"id", restaurant.ID,
		"name", restaurant.Name,
		"location", restaurant.Location,
		"viewCount", restaurant.ViewCount,
		"totalStars", restaurant.TotalStars,
		"avgStars", restaurant.AvgStars,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	res := r.client.HGetAll(ctx, restaurantKeyByID(id))
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	// HGETALL on a missing key returns an empty map, not an error.
	if len(res.Val()) == 0 {
		return nil, domain.ErrRestaurantNotFound
	}

	var restaurant domain.Restaurant
	if err := res.Scan(&restaurant); err != nil {
		return nil, fmt.Errorf("failed to scan restaurant: %w", err)
	}

	return &restaurant, nil
}

func (r *RestaurantRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, restaurantKeyByID(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check restaurant existence: %w", err)
	}

	return n > 0, nil
}

func (r *RestaurantRepository) IncrementViewCount(ctx context.Context, id string) (int64, error) {
	count, err := r.client.HIncrBy(ctx, restaurantKeyByID(id), "viewCount", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}

	return count, nil
}

func (r *RestaurantRepository) AddStars(ctx context.Context, id string, stars float64) (float64, error) {
	total, err := r.client.HIncrByFloat(ctx, restaurantKeyByID(id), "totalStars", stars).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to add stars: %w", err)
	}

	return total, nil
}

func (r *RestaurantRepository) SetAvgStars(ctx context.Context, id string, avg float64) error {
	if err := r.client.HSet(ctx, restaurantKeyByID(id), "avgStars", avg).Err(); err != nil {
		return fmt.Errorf("failed to set average stars: %w", err)
	}

	return nil
}

func (r *RestaurantRepository) GetName(ctx context.Context, id string) (string, error) {
	name, err := r.client.HGet(ctx, restaurantKeyByID(id), "name").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrRestaurantNotFound
		}
		return "", fmt.Errorf("failed to get restaurant name: %w", err)
	}

	return name, nil
}

func (r *RestaurantRepository) GetLocation(ctx context.Context, id string) (string, error) {
	location, err := r.client.HGet(ctx, restaurantKeyByID(id), "location").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrLocationNotFound
		}
		return "", fmt.Errorf("failed to get restaurant location: %w", err)
	}

	if location == "" {
		return "", domain.ErrLocationNotFound
	}

	return location, nil
}

func (r *RestaurantRepository) SetDetails(ctx context.Context, id string, details json.RawMessage) error {
	err := r.client.JSONSet(ctx, restaurantDetailsKeyByID(id), ".", details).Err()
	if err != nil {
		return fmt.Errorf("failed to set restaurant details: %w", err)
	}

	return nil
}

func (r *RestaurantRepository) GetDetails(ctx context.Context, id string) (json.RawMessage, error) {
	res, err := r.client.JSONGet(ctx, restaurantDetailsKeyByID(id), ".").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restaurant details: %w", err)
	}

	return json.RawMessage(res), nil
}

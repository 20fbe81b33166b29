package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type CuisineRepository struct {
	client *redis.Client
}

func NewCuisineRepository(client *redis.Client) *CuisineRepository {
	return &CuisineRepository{
		client: client,
	}
}

func (r *CuisineRepository) Register(ctx context.Context, name string) error {
	if err := r.client.SAdd(ctx, cuisinesKey, name).Err(); err != nil {
		return fmt.Errorf("failed to register cuisine: %w", err)
	}

	return nil
}

func (r *CuisineRepository) AddRestaurant(ctx context.Context, cuisine, restaurantID string) error {
	if err := r.client.SAdd(ctx, cuisineKey(cuisine), restaurantID).Err(); err != nil {
		return fmt.Errorf("failed to add restaurant to cuisine: %w", err)
	}

	return nil
}

func (r *CuisineRepository) TagRestaurant(ctx context.Context, restaurantID, cuisine string) error {
	if err := r.client.SAdd(ctx, restaurantCuisinesKeyByID(restaurantID), cuisine).Err(); err != nil {
		return fmt.Errorf("failed to tag restaurant with cuisine: %w", err)
	}

	return nil
}

func (r *CuisineRepository) Names(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, cuisinesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cuisines: %w", err)
	}

	return names, nil
}

func (r *CuisineRepository) Members(ctx context.Context, cuisine string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, cuisineKey(cuisine)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cuisine members: %w", err)
	}

	return ids, nil
}

func (r *CuisineRepository) ForRestaurant(ctx context.Context, restaurantID string) ([]string, error) {
	names, err := r.client.SMembers(ctx, restaurantCuisinesKeyByID(restaurantID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurant cuisines: %w", err)
	}

	return names, nil
}

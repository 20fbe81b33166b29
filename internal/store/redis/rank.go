package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RankIndexRepository struct {
	client *redis.Client
}

func NewRankIndexRepository(client *redis.Client) *RankIndexRepository {
	return &RankIndexRepository{
		client: client,
	}
}

// SetScore upserts the restaurant's single entry; the member is the bare id on
// every write path so a restaurant never ranks twice.
func (r *RankIndexRepository) SetScore(ctx context.Context, restaurantID string, score float64) error {
	err := r.client.ZAdd(ctx, restaurantsByRatingKey, redis.Z{
		Score:  score,
		Member: restaurantID,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to set rank score: %w", err)
	}

	return nil
}

func (r *RankIndexRepository) Range(ctx context.Context, start, stop int64) ([]string, error) {
	ids, err := r.client.ZRange(ctx, restaurantsByRatingKey, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to range rank index: %w", err)
	}

	return ids, nil
}

package redis

import (
	"context"
	"fmt"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/redis/go-redis/v9"
)

type ReviewRepository struct {
	client *redis.Client
}

func NewReviewRepository(client *redis.Client) *ReviewRepository {
	return &ReviewRepository{
		client: client,
	}
}

func (r *ReviewRepository) PushID(ctx context.Context, restaurantID, reviewID string) (int64, error) {
	length, err := r.client.LPush(ctx, reviewLogKeyByID(restaurantID), reviewID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to push review id: %w", err)
	}

	return length, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	err := r.client.HSet(ctx, reviewDetailKeyByID(review.ID),
		"id", review.ID,
		"restaurantId", review.RestaurantID,
		"rating", review.Rating,
		"comment", review.Comment,
		"timestamp", review.Timestamp,
	).Err()
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListIDs(ctx context.Context, restaurantID string, start, stop int64) ([]string, error) {
	ids, err := r.client.LRange(ctx, reviewLogKeyByID(restaurantID), start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list review ids: %w", err)
	}

	return ids, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	res := r.client.HGetAll(ctx, reviewDetailKeyByID(reviewID))
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if len(res.Val()) == 0 {
		return nil, domain.ErrReviewNotFound
	}

	var review domain.Review
	if err := res.Scan(&review); err != nil {
		return nil, fmt.Errorf("failed to scan review: %w", err)
	}

	return &review, nil
}

func (r *ReviewRepository) RemoveID(ctx context.Context, restaurantID, reviewID string) (int64, error) {
	removed, err := r.client.LRem(ctx, reviewLogKeyByID(restaurantID), 0, reviewID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to remove review id: %w", err)
	}

	return removed, nil
}

func (r *ReviewRepository) DeleteDetail(ctx context.Context, reviewID string) (int64, error) {
	deleted, err := r.client.Del(ctx, reviewDetailKeyByID(reviewID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to delete review detail: %w", err)
	}

	return deleted, nil
}

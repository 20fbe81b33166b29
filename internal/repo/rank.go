package repo

import "context"

// RankIndexRepository is the rating-ordered index over restaurant ids. A
// restaurant has exactly one entry; SetScore inserts or replaces it.
type RankIndexRepository interface {
	SetScore(ctx context.Context, restaurantID string, score float64) error
	// Range returns ids for the inclusive [start, stop] slice in ascending
	// score order.
	Range(ctx context.Context, start, stop int64) ([]string, error)
}

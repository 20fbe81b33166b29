package repo

import (
	"context"

	"github.com/Beka01247/bites/internal/domain"
)

type ReviewRepository interface {
	// PushID prepends the review id onto the restaurant's log and returns the
	// new log length.
	PushID(ctx context.Context, restaurantID, reviewID string) (int64, error)
	Create(ctx context.Context, review *domain.Review) error
	ListIDs(ctx context.Context, restaurantID string, start, stop int64) ([]string, error)
	GetByID(ctx context.Context, reviewID string) (*domain.Review, error)
	// RemoveID removes every occurrence of the id from the log and returns how
	// many were removed.
	RemoveID(ctx context.Context, restaurantID, reviewID string) (int64, error)
	// DeleteDetail returns how many detail records were deleted (0 or 1).
	DeleteDetail(ctx context.Context, reviewID string) (int64, error)
}

package repo

import (
	"context"
	"encoding/json"

	"github.com/Beka01247/bites/internal/domain"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Exists(ctx context.Context, id string) (bool, error)
	IncrementViewCount(ctx context.Context, id string) (int64, error)
	AddStars(ctx context.Context, id string, stars float64) (float64, error)
	SetAvgStars(ctx context.Context, id string, avg float64) error
	GetName(ctx context.Context, id string) (string, error)
	GetLocation(ctx context.Context, id string) (string, error)
	SetDetails(ctx context.Context, id string, details json.RawMessage) error
	GetDetails(ctx context.Context, id string) (json.RawMessage, error)
}

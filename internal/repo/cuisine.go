package repo

import "context"

// CuisineRepository maintains the global cuisine registry plus both sides of
// the cuisine<->restaurant membership. Register, AddRestaurant and
// TagRestaurant are always issued together so the two membership sets never
// diverge.
type CuisineRepository interface {
	Register(ctx context.Context, name string) error
	AddRestaurant(ctx context.Context, cuisine, restaurantID string) error
	TagRestaurant(ctx context.Context, restaurantID, cuisine string) error
	Names(ctx context.Context) ([]string, error)
	Members(ctx context.Context, cuisine string) ([]string, error)
	ForRestaurant(ctx context.Context, restaurantID string) ([]string, error)
}

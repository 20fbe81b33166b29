package service_test

import (
	"testing"

	"github.com/Beka01247/bites/internal/repo"
	"github.com/Beka01247/bites/internal/service"
	store "github.com/Beka01247/bites/internal/store/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// rankKey mirrors the rank index key so tests can assert raw scores.
const rankKey = "bites:restaurants_by_rating"

type testEnv struct {
	mr     *miniredis.Miniredis
	client *redis.Client

	restaurantRepo repo.RestaurantRepository
	reviewRepo     repo.ReviewRepository
	cuisineRepo    repo.CuisineRepository
	rankRepo       repo.RankIndexRepository

	restaurants *service.RestaurantService
	reviews     *service.ReviewService
	cuisines    *service.CuisineService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop().Sugar()

	restaurantRepo := store.NewRestaurantRepository(client)
	reviewRepo := store.NewReviewRepository(client)
	cuisineRepo := store.NewCuisineRepository(client)
	rankRepo := store.NewRankIndexRepository(client)

	return &testEnv{
		mr:             mr,
		client:         client,
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
		cuisineRepo:    cuisineRepo,
		rankRepo:       rankRepo,
		restaurants:    service.NewRestaurantService(restaurantRepo, cuisineRepo, rankRepo, logger),
		reviews:        service.NewReviewService(reviewRepo, restaurantRepo, rankRepo, logger),
		cuisines:       service.NewCuisineService(cuisineRepo, restaurantRepo, logger),
	}
}

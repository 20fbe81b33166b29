package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/Beka01247/bites/internal/repo"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RestaurantService struct {
	restaurantRepo repo.RestaurantRepository
	cuisineRepo    repo.CuisineRepository
	rankRepo       repo.RankIndexRepository
	logger         *zap.SugaredLogger
}

func NewRestaurantService(
	restaurantRepo repo.RestaurantRepository,
	cuisineRepo repo.CuisineRepository,
	rankRepo repo.RankIndexRepository,
	logger *zap.SugaredLogger,
) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		cuisineRepo:    cuisineRepo,
		rankRepo:       rankRepo,
		logger:         logger,
	}
}

// Create writes the base record, every cuisine linkage and the initial rank
// entry as one best-effort fan-out. A partial failure is not rolled back; the
// store has no cross-key transaction to lean on.
func (s *RestaurantService) Create(ctx context.Context, name, location string, cuisines []string) (*domain.Restaurant, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate restaurant id: %w", err)
	}

	restaurant := &domain.Restaurant{
		ID:       id,
		Name:     name,
		Location: location,
		Cuisines: cuisines,
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, cuisine := range cuisines {
		cuisine := cuisine
		// registry, membership and reverse membership are written together so
		// the two sets never diverge
		g.Go(func() error { return s.cuisineRepo.Register(gctx, cuisine) })
		g.Go(func() error { return s.cuisineRepo.AddRestaurant(gctx, cuisine, id) })
		g.Go(func() error { return s.cuisineRepo.TagRestaurant(gctx, id, cuisine) })
	}
	g.Go(func() error { return s.restaurantRepo.Create(gctx, restaurant) })
	g.Go(func() error { return s.rankRepo.SetScore(gctx, id, 0) })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	s.logger.Infow("restaurant created", "id", id, "name", name)

	return restaurant, nil
}

// Get bumps the view counter and hydrates the record plus its cuisine set in
// one fan-out. The returned viewCount may or may not include this read; the
// counter is eventually consistent with concurrent writes.
func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	var (
		restaurant *domain.Restaurant
		cuisines   []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.restaurantRepo.IncrementViewCount(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		restaurant, err = s.restaurantRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		cuisines, err = s.cuisineRepo.ForRestaurant(gctx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	restaurant.Cuisines = cuisines

	return restaurant, nil
}

// ListPage returns one page of restaurants in rank-index order (ascending
// score). Page is 1-based; ids are hydrated concurrently but the output order
// always matches the index slice.
func (s *RestaurantService) ListPage(ctx context.Context, page, limit int64) ([]*domain.Restaurant, error) {
	start := (page - 1) * limit
	stop := start + limit - 1

	ids, err := s.rankRepo.Range(ctx, start, stop)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	restaurants := make([]*domain.Restaurant, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			restaurant, err := s.restaurantRepo.GetByID(gctx, id)
			if err != nil {
				return err
			}
			restaurants[i] = restaurant
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to hydrate restaurants: %w", err)
	}

	return restaurants, nil
}

func (s *RestaurantService) Exists(ctx context.Context, id string) (bool, error) {
	return s.restaurantRepo.Exists(ctx, id)
}

func (s *RestaurantService) SetDetails(ctx context.Context, id string, details json.RawMessage) error {
	if err := s.restaurantRepo.SetDetails(ctx, id, details); err != nil {
		return err
	}

	s.logger.Infow("restaurant details set", "id", id)

	return nil
}

func (s *RestaurantService) GetDetails(ctx context.Context, id string) (json.RawMessage, error) {
	return s.restaurantRepo.GetDetails(ctx, id)
}

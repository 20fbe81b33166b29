package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/Beka01247/bites/internal/repo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CuisineService struct {
	cuisineRepo    repo.CuisineRepository
	restaurantRepo repo.RestaurantRepository
	logger         *zap.SugaredLogger
}

func NewCuisineService(
	cuisineRepo repo.CuisineRepository,
	restaurantRepo repo.RestaurantRepository,
	logger *zap.SugaredLogger,
) *CuisineService {
	return &CuisineService{
		cuisineRepo:    cuisineRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

func (s *CuisineService) List(ctx context.Context) ([]string, error) {
	return s.cuisineRepo.Names(ctx)
}

// Restaurants resolves a cuisine's member ids to restaurant names. Members
// whose record no longer exists are skipped, not an error.
func (s *CuisineService) Restaurants(ctx context.Context, cuisine string) ([]string, error) {
	ids, err := s.cuisineRepo.Members(ctx, cuisine)
	if err != nil {
		return nil, fmt.Errorf("failed to list cuisine members: %w", err)
	}

	resolved := make([]string, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			name, err := s.restaurantRepo.GetName(gctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrRestaurantNotFound) {
					return nil
				}
				return err
			}
			resolved[i] = name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve restaurant names: %w", err)
	}

	names := make([]string, 0, len(resolved))
	for _, name := range resolved {
		if name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}

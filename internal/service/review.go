package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/Beka01247/bites/internal/repo"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ReviewService struct {
	reviewRepo     repo.ReviewRepository
	restaurantRepo repo.RestaurantRepository
	rankRepo       repo.RankIndexRepository
	logger         *zap.SugaredLogger
}

func NewReviewService(
	reviewRepo repo.ReviewRepository,
	restaurantRepo repo.RestaurantRepository,
	rankRepo repo.RankIndexRepository,
	logger *zap.SugaredLogger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		rankRepo:       rankRepo,
		logger:         logger,
	}
}

// Add appends the review and recomputes the restaurant's average from the
// values the log push and the star increment return, so the count always
// includes the review just pushed.
//
// The pipeline is not one atomic unit: two overlapping Adds on the same
// restaurant can interleave and store an average computed from a stale
// count/total pair. That is eventual, not linearizable, consistency; the
// stored average converges on the next rating write.
func (s *ReviewService) Add(ctx context.Context, restaurantID string, rating float64, comment string) (*domain.Review, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate review id: %w", err)
	}

	review := &domain.Review{
		ID:           id,
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      comment,
		Timestamp:    time.Now().UnixMilli(),
	}

	var (
		reviewCount int64
		totalStars  float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviewCount, err = s.reviewRepo.PushID(gctx, restaurantID, id)
		return err
	})
	g.Go(func() error {
		return s.reviewRepo.Create(gctx, review)
	})
	g.Go(func() error {
		var err error
		totalStars, err = s.restaurantRepo.AddStars(gctx, restaurantID, rating)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	avgStars := roundToTenth(totalStars / float64(reviewCount))

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.restaurantRepo.SetAvgStars(gctx, restaurantID, avgStars)
	})
	g.Go(func() error {
		return s.rankRepo.SetScore(gctx, restaurantID, avgStars)
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	s.logger.Infow("review added",
		"restaurant_id", restaurantID,
		"review_id", id,
		"avg_stars", avgStars,
	)

	return review, nil
}

// List returns one page of reviews, most recent first. Ids whose detail record
// is gone (a torn delete) are skipped rather than surfaced.
func (s *ReviewService) List(ctx context.Context, restaurantID string, page, limit int64) ([]*domain.Review, error) {
	start := (page - 1) * limit
	stop := start + limit - 1

	ids, err := s.reviewRepo.ListIDs(ctx, restaurantID, start, stop)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	hydrated := make([]*domain.Review, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			review, err := s.reviewRepo.GetByID(gctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrReviewNotFound) {
					return nil
				}
				return err
			}
			hydrated[i] = review
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to hydrate reviews: %w", err)
	}

	reviews := make([]*domain.Review, 0, len(hydrated))
	for _, review := range hydrated {
		if review != nil {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

// Delete removes the id from the log and deletes the detail record together.
// Only when both removals touch nothing is the review considered missing; a
// torn record counts as deleted since the net state is "review absent".
//
// totalStars/avgStars are deliberately left alone: ratings stay sticky after
// deletion.
func (s *ReviewService) Delete(ctx context.Context, restaurantID, reviewID string) error {
	var (
		removed int64
		deleted int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		removed, err = s.reviewRepo.RemoveID(gctx, restaurantID, reviewID)
		return err
	})
	g.Go(func() error {
		var err error
		deleted, err = s.reviewRepo.DeleteDetail(gctx, reviewID)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if removed == 0 && deleted == 0 {
		return domain.ErrReviewNotFound
	}

	s.logger.Infow("review deleted",
		"restaurant_id", restaurantID,
		"review_id", reviewID,
		"log_removed", removed,
		"detail_deleted", deleted,
	)

	return nil
}

// roundToTenth rounds half-up to one decimal place.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

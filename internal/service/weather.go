package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/Beka01247/bites/internal/repo"
	"github.com/Beka01247/bites/internal/weather"
	"go.uber.org/zap"
)

// WeatherTTL bounds how long an upstream payload is served from the cache.
const WeatherTTL = time.Hour

type WeatherService struct {
	cacheRepo      repo.WeatherCacheRepository
	restaurantRepo repo.RestaurantRepository
	fetcher        weather.Fetcher
	logger         *zap.SugaredLogger
}

func NewWeatherService(
	cacheRepo repo.WeatherCacheRepository,
	restaurantRepo repo.RestaurantRepository,
	fetcher weather.Fetcher,
	logger *zap.SugaredLogger,
) *WeatherService {
	return &WeatherService{
		cacheRepo:      cacheRepo,
		restaurantRepo: restaurantRepo,
		fetcher:        fetcher,
		logger:         logger,
	}
}

// Get serves the cached payload when present; otherwise it resolves the
// restaurant's "lon,lat" location, fetches upstream and caches the verbatim
// body for WeatherTTL. Upstream failures are returned uncached.
func (s *WeatherService) Get(ctx context.Context, restaurantID string) (json.RawMessage, error) {
	cached, err := s.cacheRepo.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		s.logger.Debugw("weather cache hit", "restaurant_id", restaurantID)
		return cached, nil
	}

	location, err := s.restaurantRepo.GetLocation(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	lon, lat, ok := strings.Cut(location, ",")
	if !ok {
		return nil, domain.ErrLocationNotFound
	}

	payload, err := s.fetcher.Current(ctx, lon, lat)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Set(ctx, restaurantID, payload, WeatherTTL); err != nil {
		return nil, err
	}

	s.logger.Infow("weather fetched", "restaurant_id", restaurantID)

	return payload, nil
}

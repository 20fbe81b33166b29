package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/Beka01247/bites/internal/service"
	store "github.com/Beka01247/bites/internal/store/redis"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	calls   int
	lastLon string
	lastLat string
	payload json.RawMessage
	err     error
}

func (f *fakeFetcher) Current(ctx context.Context, lon, lat string) (json.RawMessage, error) {
	f.calls++
	f.lastLon = lon
	f.lastLat = lat
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newWeatherEnv(t *testing.T) (*testEnv, *fakeFetcher, *service.WeatherService) {
	t.Helper()

	env := newTestEnv(t)
	fetcher := &fakeFetcher{payload: json.RawMessage(`{"main":{"temp":71.2}}`)}
	cacheRepo := store.NewWeatherCacheRepository(env.client)
	weatherService := service.NewWeatherService(cacheRepo, env.restaurantRepo, fetcher, zap.NewNop().Sugar())

	return env, fetcher, weatherService
}

func TestWeatherService(t *testing.T) {
	ctx := context.Background()

	t.Run("second call within the ttl hits the cache", func(t *testing.T) {
		env, fetcher, weatherService := newWeatherEnv(t)

		restaurant, err := env.restaurants.Create(ctx, "Pier", "12.3,45.6", []string{"seafood"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		first, err := weatherService.Get(ctx, restaurant.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		second, err := weatherService.Get(ctx, restaurant.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}

		if fetcher.calls != 1 {
			t.Errorf("Expected exactly one upstream call, got %d", fetcher.calls)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("Expected byte-identical payloads, got %s and %s", first, second)
		}
	})

	t.Run("expired entry triggers exactly one refetch", func(t *testing.T) {
		env, fetcher, weatherService := newWeatherEnv(t)

		restaurant, err := env.restaurants.Create(ctx, "Pier", "12.3,45.6", []string{"seafood"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if _, err := weatherService.Get(ctx, restaurant.ID); err != nil {
			t.Fatalf("Get failed: %v", err)
		}

		env.mr.FastForward(service.WeatherTTL + time.Second)

		if _, err := weatherService.Get(ctx, restaurant.ID); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if fetcher.calls != 2 {
			t.Errorf("Expected two upstream calls across the expiry, got %d", fetcher.calls)
		}
	})

	t.Run("coordinates are split lon then lat", func(t *testing.T) {
		env, fetcher, weatherService := newWeatherEnv(t)

		restaurant, err := env.restaurants.Create(ctx, "Pier", "12.3,45.6", []string{"seafood"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if _, err := weatherService.Get(ctx, restaurant.ID); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if fetcher.lastLon != "12.3" || fetcher.lastLat != "45.6" {
			t.Errorf("Expected lon=12.3 lat=45.6, got lon=%s lat=%s", fetcher.lastLon, fetcher.lastLat)
		}
	})

	t.Run("missing location fails before any upstream call", func(t *testing.T) {
		_, fetcher, weatherService := newWeatherEnv(t)

		_, err := weatherService.Get(ctx, "unknown-id")
		if !errors.Is(err, domain.ErrLocationNotFound) {
			t.Errorf("Expected ErrLocationNotFound, got %v", err)
		}
		if fetcher.calls != 0 {
			t.Errorf("Expected no upstream calls, got %d", fetcher.calls)
		}
	})

	t.Run("upstream failure is returned and never cached", func(t *testing.T) {
		env, fetcher, weatherService := newWeatherEnv(t)

		restaurant, err := env.restaurants.Create(ctx, "Pier", "12.3,45.6", []string{"seafood"})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		fetcher.err = domain.ErrUpstream
		if _, err := weatherService.Get(ctx, restaurant.ID); !errors.Is(err, domain.ErrUpstream) {
			t.Fatalf("Expected ErrUpstream, got %v", err)
		}

		// the failure must not have been cached
		fetcher.err = nil
		if _, err := weatherService.Get(ctx, restaurant.ID); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if fetcher.calls != 2 {
			t.Errorf("Expected a fresh upstream call after the failure, got %d", fetcher.calls)
		}
	})
}

package main

import (
	"time"

	"github.com/Beka01247/bites/internal/env"
	"github.com/Beka01247/bites/internal/ratelimiter"
	"github.com/Beka01247/bites/internal/service"
	"github.com/Beka01247/bites/internal/store/redis"
	"github.com/Beka01247/bites/internal/weather"
	"github.com/Beka01247/bites/internal/worker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "0.0.0"

//	@title			Bites
//	@description	Restaurant directory API over Redis

// @BasePath	/api/v1
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":3000"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:3000"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		redis: redisConfig{
			Addr:     env.GetString("REDIS_ADDR", "localhost:6379"),
			Password: env.GetString("REDIS_PASSWORD", ""),
			DB:       env.GetInt("REDIS_DB", 0),
			Timeout:  time.Second * 5,
		},
		weather: weatherConfig{
			APIKey:  env.GetString("WEATHER_API_KEY", ""),
			Timeout: time.Second * 10,
		},
		reindexInterval: time.Duration(env.GetInt("REINDEX_INTERVAL_MINUTES", 15)) * time.Minute,
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage
	storage, err := redis.New(redis.Config{
		Addr:     cfg.redis.Addr,
		Password: cfg.redis.Password,
		DB:       cfg.redis.DB,
		Timeout:  cfg.redis.Timeout,
	})
	if err != nil {
		logger.Fatalw("failed to connect to redis", "error", err)
	}

	logger.Info("connected to redis")

	// repos
	restaurantRepo := redis.NewRestaurantRepository(storage.Client())
	reviewRepo := redis.NewReviewRepository(storage.Client())
	cuisineRepo := redis.NewCuisineRepository(storage.Client())
	rankRepo := redis.NewRankIndexRepository(storage.Client())
	weatherCacheRepo := redis.NewWeatherCacheRepository(storage.Client())
	searchRepo := redis.NewSearchIndexRepository(storage.Client())

	// weather upstream
	weatherClient := weather.New(weather.Config{
		APIKey:  cfg.weather.APIKey,
		Timeout: cfg.weather.Timeout,
	})

	// services
	restaurantService := service.NewRestaurantService(restaurantRepo, cuisineRepo, rankRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, restaurantRepo, rankRepo, logger)
	cuisineService := service.NewCuisineService(cuisineRepo, restaurantRepo, logger)
	weatherService := service.NewWeatherService(weatherCacheRepo, restaurantRepo, weatherClient, logger)
	searchService := service.NewSearchService(searchRepo, logger)

	reindexWorker := worker.NewReindexWorker(searchService, cfg.reindexInterval, logger)

	app := &application{
		config:            cfg,
		logger:            logger,
		rateLimiter:       rateLimiter,
		storage:           storage,
		restaurantService: restaurantService,
		reviewService:     reviewService,
		cuisineService:    cuisineService,
		weatherService:    weatherService,
		searchService:     searchService,
		reindexWorker:     reindexWorker,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

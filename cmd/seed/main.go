package main

import (
	"context"
	"time"

	"github.com/Beka01247/bites/internal/env"
	"github.com/Beka01247/bites/internal/service"
	"github.com/Beka01247/bites/internal/store/redis"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// One-shot rebuild of the restaurant search index. Safe to re-run; the
// periodic reindex worker in the API does the same reconciliation.
func main() {
	_ = godotenv.Load()

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	storage, err := redis.New(redis.Config{
		Addr:     env.GetString("REDIS_ADDR", "localhost:6379"),
		Password: env.GetString("REDIS_PASSWORD", ""),
		DB:       env.GetInt("REDIS_DB", 0),
		Timeout:  time.Second * 5,
	})
	if err != nil {
		logger.Fatalw("failed to connect to redis", "error", err)
	}
	defer storage.Close()

	searchRepo := redis.NewSearchIndexRepository(storage.Client())
	searchService := service.NewSearchService(searchRepo, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := searchService.Rebuild(ctx); err != nil {
		logger.Fatalw("failed to rebuild search index", "error", err)
	}
}

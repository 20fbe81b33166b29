package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/bites/internal/ratelimiter"
	"github.com/Beka01247/bites/internal/service"
	"github.com/Beka01247/bites/internal/store/redis"
	"github.com/Beka01247/bites/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config            config
	logger            *zap.SugaredLogger
	rateLimiter       ratelimiter.Limiter
	storage           *redis.Storage
	restaurantService *service.RestaurantService
	reviewService     *service.ReviewService
	cuisineService    *service.CuisineService
	weatherService    *service.WeatherService
	searchService     *service.SearchService
	reindexWorker     *worker.ReindexWorker
}

type config struct {
	addr            string
	env             string
	apiURL          string
	rateLimiter     ratelimiter.Config
	redis           redisConfig
	weather         weatherConfig
	reindexInterval time.Duration
}

type redisConfig struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

type weatherConfig struct {
	APIKey  string
	Timeout time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", app.listRestaurantsHandler)
			r.Post("/", app.createRestaurantHandler)
			r.Get("/search", app.searchRestaurantsHandler)

			r.Route("/{restaurantID}", func(r chi.Router) {
				r.Use(app.checkRestaurantExists)

				r.Get("/", app.getRestaurantHandler)
				r.Post("/details", app.setRestaurantDetailsHandler)
				r.Get("/details", app.getRestaurantDetailsHandler)
				r.Get("/weather", app.getWeatherHandler)
				r.Post("/reviews", app.createReviewHandler)
				r.Get("/reviews", app.listReviewsHandler)
				r.Delete("/reviews/{reviewID}", app.deleteReviewHandler)
			})
		})

		r.Route("/cuisines", func(r chi.Router) {
			r.Get("/", app.listCuisinesHandler)
			r.Get("/{cuisine}", app.getCuisineHandler)
		})

		docsURL := fmt.Sprintf("http://%s/swagger/doc.json", app.config.apiURL)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	if app.reindexWorker != nil {
		if err := app.reindexWorker.Start(); err != nil {
			return fmt.Errorf("failed to start reindex worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.reindexWorker != nil {
			app.reindexWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(); err != nil {
				app.logger.Errorw("error closing redis", "error", err)
			} else {
				app.logger.Info("redis connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

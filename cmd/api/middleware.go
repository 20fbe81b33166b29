package main

import (
	"net/http"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/go-chi/chi"
)

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// checkRestaurantExists guards the {restaurantID} subtree: unknown ids get a
// 404 before any handler mutates derived state.
func (app *application) checkRestaurantExists(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		restaurantID := chi.URLParam(r, "restaurantID")

		exists, err := app.restaurantService.Exists(r.Context(), restaurantID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}

		if !exists {
			app.notFoundError(w, r, domain.ErrRestaurantNotFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

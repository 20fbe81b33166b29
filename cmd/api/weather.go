package main

import (
	"errors"
	"net/http"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/go-chi/chi"
)

// getWeatherHandler godoc
//
//	@Summary		Get weather at a restaurant
//	@Description	Returns current weather for the restaurant's coordinates, cached for an hour
//	@Tags			restaurants
//	@Produce		json
//	@Param			restaurantID	path		string	true	"Restaurant ID"
//	@Success		200				{object}	envelope
//	@Failure		404				{object}	envelope
//	@Failure		500				{object}	envelope
//	@Router			/restaurants/{restaurantID}/weather [get]
func (app *application) getWeatherHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")

	payload, err := app.weatherService.Get(r.Context(), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLocationNotFound):
			app.notFoundError(w, r, err)
		case errors.Is(err, domain.ErrUpstream):
			app.upstreamError(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.successResponse(w, http.StatusOK, payload, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

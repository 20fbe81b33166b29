package main

import (
	"net/http"

	"github.com/go-chi/chi"
)

// listCuisinesHandler godoc
//
//	@Summary		List cuisines
//	@Description	Returns every cuisine name in use
//	@Tags			cuisines
//	@Produce		json
//	@Success		200	{object}	envelope
//	@Failure		500	{object}	envelope
//	@Router			/cuisines [get]
func (app *application) listCuisinesHandler(w http.ResponseWriter, r *http.Request) {
	cuisines, err := app.cuisineService.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, cuisines, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCuisineHandler godoc
//
//	@Summary		List restaurants for a cuisine
//	@Description	Resolves the cuisine's members to restaurant names
//	@Tags			cuisines
//	@Produce		json
//	@Param			cuisine	path		string	true	"Cuisine name"
//	@Success		200		{object}	envelope
//	@Failure		500		{object}	envelope
//	@Router			/cuisines/{cuisine} [get]
func (app *application) getCuisineHandler(w http.ResponseWriter, r *http.Request) {
	cuisine := chi.URLParam(r, "cuisine")

	restaurants, err := app.cuisineService.Restaurants(r.Context(), cuisine)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, restaurants, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

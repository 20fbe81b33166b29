package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
)

type CreateRestaurantRequest struct {
	Name     string   `json:"name" validate:"required"`
	Location string   `json:"location" validate:"required"`
	Cuisines []string `json:"cuisines" validate:"required,min=1,dive,required"`
}

// listRestaurantsHandler godoc
//
//	@Summary		List restaurants by rating
//	@Description	Returns one page of restaurants in rating-rank order
//	@Tags			restaurants
//	@Produce		json
//	@Param			page	query		int	false	"Page (1-based)"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	envelope
//	@Failure		500		{object}	envelope
//	@Router			/restaurants [get]
func (app *application) listRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationParams(r)

	restaurants, err := app.restaurantService.ListPage(r.Context(), page, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, restaurants, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createRestaurantHandler godoc
//
//	@Summary		Create restaurant
//	@Description	Creates a restaurant with its cuisines and rank entry
//	@Tags			restaurants
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRestaurantRequest	true	"Restaurant"
//	@Success		201		{object}	envelope
//	@Failure		400		{object}	envelope
//	@Failure		500		{object}	envelope
//	@Router			/restaurants [post]
func (app *application) createRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateRestaurantRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	restaurant, err := app.restaurantService.Create(r.Context(), req.Name, req.Location, req.Cuisines)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusCreated, restaurant, "Added new restaurant."); err != nil {
		app.internalServerError(w, r, err)
	}
}

// searchRestaurantsHandler godoc
//
//	@Summary		Search restaurants
//	@Description	Full-text search on restaurant names
//	@Tags			restaurants
//	@Produce		json
//	@Param			q	query		string	true	"Query"
//	@Success		200	{object}	envelope
//	@Failure		400	{object}	envelope
//	@Failure		500	{object}	envelope
//	@Router			/restaurants/search [get]
func (app *application) searchRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		app.badRequestResponse(w, r, errors.New("query parameter q is required"))
		return
	}

	result, err := app.searchService.Query(r.Context(), q)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, result, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getRestaurantHandler godoc
//
//	@Summary		Get restaurant
//	@Description	Returns the restaurant record and bumps its view counter
//	@Tags			restaurants
//	@Produce		json
//	@Param			restaurantID	path		string	true	"Restaurant ID"
//	@Success		200				{object}	envelope
//	@Failure		404				{object}	envelope
//	@Failure		500				{object}	envelope
//	@Router			/restaurants/{restaurantID} [get]
func (app *application) getRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")

	restaurant, err := app.restaurantService.Get(r.Context(), restaurantID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, restaurant, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setRestaurantDetailsHandler godoc
//
//	@Summary		Set restaurant details
//	@Description	Attaches a free-form JSON details document to the restaurant
//	@Tags			restaurants
//	@Accept			json
//	@Produce		json
//	@Param			restaurantID	path		string	true	"Restaurant ID"
//	@Success		200				{object}	envelope
//	@Failure		400				{object}	envelope
//	@Failure		404				{object}	envelope
//	@Failure		500				{object}	envelope
//	@Router			/restaurants/{restaurantID}/details [post]
func (app *application) setRestaurantDetailsHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")

	var details json.RawMessage
	if err := readJson(w, r, &details); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.restaurantService.SetDetails(r.Context(), restaurantID, details); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, struct{}{}, "Restaurant details added."); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getRestaurantDetailsHandler godoc
//
//	@Summary		Get restaurant details
//	@Description	Returns the restaurant's JSON details document
//	@Tags			restaurants
//	@Produce		json
//	@Param			restaurantID	path		string	true	"Restaurant ID"
//	@Success		200				{object}	envelope
//	@Failure		404				{object}	envelope
//	@Failure		500				{object}	envelope
//	@Router			/restaurants/{restaurantID}/details [get]
func (app *application) getRestaurantDetailsHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")

	details, err := app.restaurantService.GetDetails(r.Context(), restaurantID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, details, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

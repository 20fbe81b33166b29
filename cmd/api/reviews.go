package main

import (
	"errors"
	"net/http"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/go-chi/chi"
)

type CreateReviewRequest struct {
	Rating  float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment"`
}

// createReviewHandler godoc
//
//	@Summary		Add review
//	@Description	Appends a review and recomputes the restaurant's average rating
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			restaurantID	path		string				true	"Restaurant ID"
//	@Param			request			body		CreateReviewRequest	true	"Review"
//	@Success		201				{object}	envelope
//	@Failure		400				{object}	envelope
//	@Failure		404				{object}	envelope
//	@Failure		500				{object}	envelope
//	@Router			/restaurants/{restaurantID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")

	var req CreateReviewRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.reviewService.Add(r.Context(), restaurantID, req.Rating, req.Comment)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusCreated, review, "Review added."); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Returns one page of the restaurant's reviews, most recent first
//	@Tags			reviews
//	@Produce		json
//	@Param			restaurantID	path		string	true	"Restaurant ID"
//	@Param			page			query		int		false	"Page (1-based)"
//	@Param			limit			query		int		false	"Page size"
//	@Success		200				{object}	envelope
//	@Failure		404				{object}	envelope
//	@Failure		500				{object}	envelope
//	@Router			/restaurants/{restaurantID}/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")
	page, limit := paginationParams(r)

	reviews, err := app.reviewService.List(r.Context(), restaurantID, page, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, reviews, ""); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteReviewHandler godoc
//
//	@Summary		Delete review
//	@Description	Removes a review from the log and detail store
//	@Tags			reviews
//	@Produce		json
//	@Param			restaurantID	path		string	true	"Restaurant ID"
//	@Param			reviewID		path		string	true	"Review ID"
//	@Success		200				{object}	envelope
//	@Failure		404				{object}	envelope
//	@Failure		500				{object}	envelope
//	@Router			/restaurants/{restaurantID}/reviews/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")
	reviewID := chi.URLParam(r, "reviewID")

	if err := app.reviewService.Delete(r.Context(), restaurantID, reviewID); err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, reviewID, "Review deleted."); err != nil {
		app.internalServerError(w, r, err)
	}
}

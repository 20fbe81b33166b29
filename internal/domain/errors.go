package domain

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrUpstream           = errors.New("upstream weather request failed")
)

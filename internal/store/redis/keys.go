package redis

import "strings"

// Every physical key lives under the "bites:" prefix and is built here; no
// repository spells out a raw key.
const keyPrefix = "bites"

func getKeyName(parts ...string) string {
	return keyPrefix + ":" + strings.Join(parts, ":")
}

var (
	cuisinesKey            = getKeyName("cuisines")
	restaurantsByRatingKey = getKeyName("restaurants_by_rating")
	searchIndexKey         = getKeyName("idx", "restaurants")
	// restaurantKeyPrefix is what the search index scans; it must match the
	// keys restaurantKeyByID produces.
	restaurantKeyPrefix = getKeyName("restaurants")
)

func restaurantKeyByID(id string) string {
	return getKeyName("restaurants", id)
}

func reviewLogKeyByID(restaurantID string) string {
	return getKeyName("reviews", restaurantID)
}

func reviewDetailKeyByID(reviewID string) string {
	return getKeyName("review_details", reviewID)
}

func cuisineKey(name string) string {
	return getKeyName("cuisine", name)
}

func restaurantCuisinesKeyByID(id string) string {
	return getKeyName("restaurant_cuisines", id)
}

func weatherKeyByID(id string) string {
	return getKeyName("weather", id)
}

func restaurantDetailsKeyByID(id string) string {
	return getKeyName("restaurant_details", id)
}

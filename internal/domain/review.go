package domain

// Review is immutable once written, except for deletion. Timestamp is unix
// milliseconds at creation.
type Review struct {
	ID           string  `redis:"id" json:"id"`
	RestaurantID string  `redis:"restaurantId" json:"restaurantId"`
	Rating       float64 `redis:"rating" json:"rating"`
	Comment      string  `redis:"comment" json:"comment"`
	Timestamp    int64   `redis:"timestamp" json:"timestamp"`
}

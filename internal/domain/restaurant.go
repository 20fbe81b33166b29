package domain

// Restaurant is stored as a flat hash; Cuisines lives in its own set and is
// attached on hydration.
type Restaurant struct {
	ID         string   `redis:"id" json:"id"`
	Name       string   `redis:"name" json:"name"`
	Location   string   `redis:"location" json:"location"`
	ViewCount  int64    `redis:"viewCount" json:"viewCount"`
	TotalStars float64  `redis:"totalStars" json:"totalStars"`
	AvgStars   float64  `redis:"avgStars" json:"avgStars"`
	Cuisines   []string `redis:"-" json:"cuisines,omitempty"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationEvent is the payload pushed to the webhook queue after a location
// was recorded for a user.
type LocationEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	LocationID uuid.UUID `json:"location_id"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	CreatedAt  time.Time `json:"created_at"`
}

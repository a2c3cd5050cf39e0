package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is an immutable reported position. Id and CreatedAt are assigned
// at construction time, never by the caller; two locations with identical
// coordinates are still distinct entities.
type Location struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
}

func NewLocation(longitude, latitude float64) *Location {
	return &Location{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Longitude: longitude,
		Latitude:  latitude,
	}
}

// UserLocation pairs a stored location with the owning user's id. It is a
// read-side view, built per query and never stored.
type UserLocation struct {
	UserID    uuid.UUID `json:"userId"`
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
}

func NewUserLocation(userID uuid.UUID, location Location) UserLocation {
	return UserLocation{
		UserID:    userID,
		ID:        location.ID,
		CreatedAt: location.CreatedAt,
		Longitude: location.Longitude,
		Latitude:  location.Latitude,
	}
}

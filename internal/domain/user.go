package domain

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
}

// NewUser creates a user with a freshly assigned id.
func NewUser(userName string) *User {
	return &User{
		ID:       uuid.New(),
		UserName: userName,
	}
}

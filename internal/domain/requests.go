package domain

type CreateUserRequest struct {
	UserName string `json:"userName" validate:"required"`
}

type AddLocationRequest struct {
	Longitude float64 `json:"longitude" validate:"lng"`
	Latitude  float64 `json:"latitude" validate:"lat"`
}

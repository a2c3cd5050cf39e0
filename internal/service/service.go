package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/AttemptedCollective/Airbox/internal/domain"
	"github.com/AttemptedCollective/Airbox/internal/pagination"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// UserStorage is the registration half of the storage.
type UserStorage interface {
	ContainsUser(ctx context.Context, userID uuid.UUID) bool
	AddUser(ctx context.Context, user *domain.User) error
}

// LocationStorage is the location history half of the storage. Reads report
// absence through the bool return, never through an error.
type LocationStorage interface {
	AddUserLocation(ctx context.Context, userID uuid.UUID, location *domain.Location) error
	GetUserLocations(ctx context.Context, userID uuid.UUID) ([]domain.UserLocation, bool)
	GetPagedUserLocations(ctx context.Context, userID uuid.UUID, params *pagination.PageParameters) (*pagination.PagedList[domain.UserLocation], bool)
	GetLatestUserLocation(ctx context.Context, userID uuid.UUID) (*domain.UserLocation, bool)
	GetLatestLocationsForAllUsers(ctx context.Context) []domain.UserLocation
	GetPagedLatestLocationsForAllUsers(ctx context.Context, params *pagination.PageParameters) *pagination.PagedList[domain.UserLocation]
}

// LocationEventQueue receives an event for every recorded location.
type LocationEventQueue interface {
	Enqueue(ctx context.Context, event domain.LocationEvent) error
}

type UserService interface {
	Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	ContainsUser(ctx context.Context, userID uuid.UUID) bool
}

type LocationService interface {
	AddLocation(ctx context.Context, userID uuid.UUID, req domain.AddLocationRequest) (*domain.Location, error)
	ListLocations(ctx context.Context, userID uuid.UUID) ([]domain.UserLocation, error)
	PagedLocations(ctx context.Context, userID uuid.UUID, params *pagination.PageParameters) (*pagination.PagedList[domain.UserLocation], error)
	LatestLocation(ctx context.Context, userID uuid.UUID) (*domain.UserLocation, error)
	LatestForAllUsers(ctx context.Context) []domain.UserLocation
	PagedLatestForAllUsers(ctx context.Context, params *pagination.PageParameters) *pagination.PagedList[domain.UserLocation]
}

type Service struct {
	Users     UserService
	Locations LocationService
}

func NewService(users UserService, locations LocationService) *Service {
	return &Service{
		Users:     users,
		Locations: locations,
	}
}

package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AttemptedCollective/Airbox/internal/domain"
	"github.com/AttemptedCollective/Airbox/internal/pagination"
	"github.com/AttemptedCollective/Airbox/pkg/e"
)

type locationService struct {
	users   UserStorage
	storage LocationStorage
	events  LocationEventQueue
	logger  *slog.Logger
}

// NewLocationService builds the location use-cases. events may be nil when
// webhook notifications are disabled.
func NewLocationService(users UserStorage, storage LocationStorage, events LocationEventQueue, logger *slog.Logger) LocationService {
	return &locationService{
		users:   users,
		storage: storage,
		events:  events,
		logger:  logger,
	}
}

func (s *locationService) AddLocation(ctx context.Context, userID uuid.UUID, req domain.AddLocationRequest) (*domain.Location, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		s.logger.Warn("invalid coordinates",
			slog.String("user_id", userID.String()),
			slog.Float64("lat", req.Latitude),
			slog.Float64("lng", req.Longitude),
		)
		return nil, e.ErrInvalidCoordinates
	}

	// The storage silently ignores locations for unregistered users; the
	// pre-check here is what turns that path into a caller-visible 404.
	if !s.users.ContainsUser(ctx, userID) {
		return nil, e.Wrap("add location", e.ErrNotFound)
	}

	location := domain.NewLocation(req.Longitude, req.Latitude)
	if err := s.storage.AddUserLocation(ctx, userID, location); err != nil {
		return nil, err
	}

	s.logger.Info("location recorded",
		slog.String("user_id", userID.String()),
		slog.String("location_id", location.ID.String()),
		slog.Float64("lat", location.Latitude),
		slog.Float64("lng", location.Longitude),
	)

	if s.events != nil {
		event := domain.LocationEvent{
			UserID:     userID,
			LocationID: location.ID,
			Latitude:   location.Latitude,
			Longitude:  location.Longitude,
			CreatedAt:  location.CreatedAt,
		}
		// Delivery is best-effort, a queue failure never fails the request.
		if err := s.events.Enqueue(ctx, event); err != nil {
			s.logger.Error("enqueue location event failed", slog.Any("error", err))
		}
	}

	return location, nil
}

func (s *locationService) ListLocations(ctx context.Context, userID uuid.UUID) ([]domain.UserLocation, error) {
	locations, ok := s.storage.GetUserLocations(ctx, userID)
	if !ok {
		return nil, e.Wrap("list locations", e.ErrNotFound)
	}
	return locations, nil
}

func (s *locationService) PagedLocations(ctx context.Context, userID uuid.UUID, params *pagination.PageParameters) (*pagination.PagedList[domain.UserLocation], error) {
	page, ok := s.storage.GetPagedUserLocations(ctx, userID, params)
	if !ok {
		return nil, e.Wrap("paged locations", e.ErrNotFound)
	}
	return page, nil
}

func (s *locationService) LatestLocation(ctx context.Context, userID uuid.UUID) (*domain.UserLocation, error) {
	latest, ok := s.storage.GetLatestUserLocation(ctx, userID)
	if !ok {
		return nil, e.Wrap("latest location", e.ErrNotFound)
	}
	return latest, nil
}

func (s *locationService) LatestForAllUsers(ctx context.Context) []domain.UserLocation {
	return s.storage.GetLatestLocationsForAllUsers(ctx)
}

func (s *locationService) PagedLatestForAllUsers(ctx context.Context, params *pagination.PageParameters) *pagination.PagedList[domain.UserLocation] {
	return s.storage.GetPagedLatestLocationsForAllUsers(ctx, params)
}

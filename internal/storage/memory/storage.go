// Package memory implements the in-memory user location storage backing the
// API. Users and locations are never mutated or deleted once stored; per-user
// location history only grows.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/AttemptedCollective/Airbox/internal/domain"
	"github.com/AttemptedCollective/Airbox/internal/pagination"
	"github.com/AttemptedCollective/Airbox/pkg/e"
)

// history is one user's append-only location sequence. It carries its own
// lock so appends for distinct users never contend; entries are stored
// oldest-first and read out newest-first.
type history struct {
	mu        sync.RWMutex
	locations []domain.Location
}

func (h *history) append(loc domain.Location) {
	h.mu.Lock()
	h.locations = append(h.locations, loc)
	h.mu.Unlock()
}

// snapshot returns the history as newest-first UserLocation views.
func (h *history) snapshot(userID uuid.UUID) []domain.UserLocation {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.UserLocation, 0, len(h.locations))
	for i := len(h.locations) - 1; i >= 0; i-- {
		out = append(out, domain.NewUserLocation(userID, h.locations[i]))
	}
	return out
}

func (h *history) latest(userID uuid.UUID) (domain.UserLocation, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.locations) == 0 {
		return domain.UserLocation{}, false
	}
	return domain.NewUserLocation(userID, h.locations[len(h.locations)-1]), true
}

// Storage holds all registered users and their location histories. The
// storage-level lock guards map membership only; once a history exists its
// own lock serializes appends, so a write for one user never blocks another.
type Storage struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]domain.User
	histories map[uuid.UUID]*history
}

func NewStorage() *Storage {
	return &Storage{
		users:     make(map[uuid.UUID]domain.User),
		histories: make(map[uuid.UUID]*history),
	}
}

// ContainsUser reports whether a user with the given id was registered.
func (s *Storage) ContainsUser(ctx context.Context, userID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok
}

// AddUser registers a user and creates its empty location history in the same
// critical section: no reader can ever observe a registered user without a
// history. Re-adding an existing id is a no-op, the stored user and its
// history are kept.
func (s *Storage) AddUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return e.Wrap("add user", e.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return nil
	}
	s.users[user.ID] = *user
	s.histories[user.ID] = &history{}
	return nil
}

// AddUserLocation appends a location to the user's history. Unregistered
// user ids are a silent no-op: history entries are only ever created by
// AddUser, and the HTTP layer runs a ContainsUser pre-check before reaching
// this path.
func (s *Storage) AddUserLocation(ctx context.Context, userID uuid.UUID, location *domain.Location) error {
	if location == nil {
		return e.Wrap("add user location", e.ErrInvalidInput)
	}

	s.mu.RLock()
	h, ok := s.histories[userID]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	h.append(*location)
	return nil
}

// GetUserLocations returns the user's full history, newest first. The second
// return value is false when the user id is unknown.
func (s *Storage) GetUserLocations(ctx context.Context, userID uuid.UUID) ([]domain.UserLocation, bool) {
	s.mu.RLock()
	h, ok := s.histories[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return h.snapshot(userID), true
}

// GetPagedUserLocations windows the newest-first history through params.
func (s *Storage) GetPagedUserLocations(ctx context.Context, userID uuid.UUID, params *pagination.PageParameters) (*pagination.PagedList[domain.UserLocation], bool) {
	locations, ok := s.GetUserLocations(ctx, userID)
	if !ok {
		return nil, false
	}
	return pagination.ToPagedList(locations, params), true
}

// GetLatestUserLocation returns the single most recently appended location.
// False when the user is unknown or has no locations yet.
func (s *Storage) GetLatestUserLocation(ctx context.Context, userID uuid.UUID) (*domain.UserLocation, bool) {
	s.mu.RLock()
	h, ok := s.histories[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	latest, ok := h.latest(userID)
	if !ok {
		return nil, false
	}
	return &latest, true
}

// GetLatestLocationsForAllUsers returns one entry per registered user that
// has at least one location. Users without locations are skipped. Ordering
// follows map iteration and carries no meaning.
func (s *Storage) GetLatestLocationsForAllUsers(ctx context.Context) []domain.UserLocation {
	s.mu.RLock()
	histories := make(map[uuid.UUID]*history, len(s.histories))
	for id, h := range s.histories {
		histories[id] = h
	}
	s.mu.RUnlock()

	out := make([]domain.UserLocation, 0, len(histories))
	for id, h := range histories {
		if latest, ok := h.latest(id); ok {
			out = append(out, latest)
		}
	}
	return out
}

// GetPagedLatestLocationsForAllUsers windows the all-users latest view.
func (s *Storage) GetPagedLatestLocationsForAllUsers(ctx context.Context, params *pagination.PageParameters) *pagination.PagedList[domain.UserLocation] {
	return pagination.ToPagedList(s.GetLatestLocationsForAllUsers(ctx), params)
}

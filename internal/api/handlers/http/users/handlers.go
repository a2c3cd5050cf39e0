package users

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/AttemptedCollective/Airbox/internal/domain"
	"github.com/AttemptedCollective/Airbox/internal/pagination"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type UserRegistrar interface {
	Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
}

type LocationProvider interface {
	AddLocation(ctx context.Context, userID uuid.UUID, req domain.AddLocationRequest) (*domain.Location, error)
	ListLocations(ctx context.Context, userID uuid.UUID) ([]domain.UserLocation, error)
	PagedLocations(ctx context.Context, userID uuid.UUID, params *pagination.PageParameters) (*pagination.PagedList[domain.UserLocation], error)
	LatestLocation(ctx context.Context, userID uuid.UUID) (*domain.UserLocation, error)
	LatestForAllUsers(ctx context.Context) []domain.UserLocation
	PagedLatestForAllUsers(ctx context.Context, params *pagination.PageParameters) *pagination.PagedList[domain.UserLocation]
}

type Handler struct {
	logger    *slog.Logger
	Users     UserRegistrar
	Locations LocationProvider
}

func NewHandler(logger *slog.Logger, users UserRegistrar, locations LocationProvider) *Handler {
	return &Handler{
		logger:    logger,
		Users:     users,
		Locations: locations,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CreateUser", slog.String("remote", r.RemoteAddr))

	var req domain.CreateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.Users.Register(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user created", slog.String("id", user.ID.String()))
	h.writeJSON(w, http.StatusCreated, user)
}

// AddLocation handles POST /users/{userId}/locations.
func (h *Handler) AddLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AddLocation", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req domain.AddLocationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	location, err := h.Locations.AddLocation(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("location created",
		slog.String("user_id", userID.String()),
		slog.String("id", location.ID.String()),
	)
	h.writeJSON(w, http.StatusCreated, location)
}

// AllLocations handles GET /users/{userId}/locations/all.
func (h *Handler) AllLocations(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AllLocations", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	locations, err := h.Locations.ListLocations(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, locations)
}

// PagedLocations handles GET /users/{userId}/locations.
func (h *Handler) PagedLocations(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PagedLocations", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	params := pagination.FromQuery(r.URL.Query())
	page, err := h.Locations.PagedLocations(r.Context(), userID, params)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writePagedJSON(w, r, page)
}

// LatestLocation handles GET /users/{userId}/locations/latest.
func (h *Handler) LatestLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("LatestLocation", slog.String("remote", r.RemoteAddr))

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	latest, err := h.Locations.LatestLocation(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, latest)
}

// LatestForAllUsers handles GET /users/locations/all/latest.
func (h *Handler) LatestForAllUsers(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("LatestForAllUsers", slog.String("remote", r.RemoteAddr))

	latest := h.Locations.LatestForAllUsers(r.Context())
	h.writeJSON(w, http.StatusOK, latest)
}

// PagedLatestForAllUsers handles GET /users/locations/latest.
func (h *Handler) PagedLatestForAllUsers(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PagedLatestForAllUsers", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	params := pagination.FromQuery(r.URL.Query())
	page := h.Locations.PagedLatestForAllUsers(r.Context(), params)

	h.writePagedJSON(w, r, page)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "userId")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid user id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return uuid.Nil, false
	}
	return id, true
}

package users_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/AttemptedCollective/Airbox/internal/api/handlers/http/users"
	mock_users "github.com/AttemptedCollective/Airbox/internal/api/handlers/http/users/mocks"
	"github.com/AttemptedCollective/Airbox/internal/domain"
	"github.com/AttemptedCollective/Airbox/internal/pagination"
	"github.com/AttemptedCollective/Airbox/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestRouter(h *users.Handler) http.Handler {
	r := chi.NewRouter()
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/locations/all/latest", h.LatestForAllUsers)
		r.Get("/locations/latest", h.PagedLatestForAllUsers)
		r.Route("/{userId}", func(r chi.Router) {
			r.Post("/locations", h.AddLocation)
			r.Get("/locations", h.PagedLocations)
			r.Get("/locations/all", h.AllLocations)
			r.Get("/locations/latest", h.LatestLocation)
		})
	})
	return r
}

func decodeJSON[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestCreateUser_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	want := domain.NewUser("TestUser")
	registrar.EXPECT().
		Register(gomock.Any(), domain.CreateUserRequest{UserName: "TestUser"}).
		Return(want, nil).
		Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"userName":"TestUser"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	got := decodeJSON[domain.User](t, rec.Body)
	if got.ID != want.ID || got.UserName != "TestUser" {
		t.Fatalf("body = %+v, want %+v", got, want)
	}
}

func TestCreateUser_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"userName":`},
		{"unknown field", `{"userName":"TestUser","role":"admin"}`},
		{"trailing data", `{"userName":"TestUser"}{"userName":"Second"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateUser_MissingUserName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	got := decodeJSON[map[string]string](t, rec.Body)
	if got["error"] != "invalid input" {
		t.Fatalf("error = %q, want %q", got["error"], "invalid input")
	}
}

func TestAddLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	userID := uuid.New()
	want := domain.NewLocation(37.61, 55.75)
	provider.EXPECT().
		AddLocation(gomock.Any(), userID, domain.AddLocationRequest{Longitude: 37.61, Latitude: 55.75}).
		Return(want, nil).
		Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/locations",
		strings.NewReader(`{"longitude":37.61,"latitude":55.75}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	got := decodeJSON[domain.Location](t, rec.Body)
	if got.ID != want.ID || got.Longitude != 37.61 || got.Latitude != 55.75 {
		t.Fatalf("body = %+v, want %+v", got, want)
	}
}

func TestAddLocation_InvalidUserID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/users/not-a-uuid/locations",
		strings.NewReader(`{"longitude":1,"latitude":2}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	got := decodeJSON[map[string]string](t, rec.Body)
	if got["error"] != "invalid user id" {
		t.Fatalf("error = %q, want %q", got["error"], "invalid user id")
	}
}

func TestAddLocation_UnknownUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	userID := uuid.New()
	provider.EXPECT().
		AddLocation(gomock.Any(), userID, gomock.Any()).
		Return(nil, e.Wrap("add location", e.ErrNotFound)).
		Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/users/"+userID.String()+"/locations",
		strings.NewReader(`{"longitude":1,"latitude":2}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAddLocation_CoordinatesOutOfRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)
	// Validation rejects the payload before the service is consulted.

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/users/"+uuid.NewString()+"/locations",
		strings.NewReader(`{"longitude":200,"latitude":95}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	got := decodeJSON[map[string]string](t, rec.Body)
	if got["error"] != "invalid input" {
		t.Fatalf("error = %q, want %q", got["error"], "invalid input")
	}
}

func TestAllLocations_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	userID := uuid.New()
	want := []domain.UserLocation{
		{UserID: userID, ID: uuid.New(), CreatedAt: time.Now().UTC(), Longitude: 3, Latitude: 4},
		{UserID: userID, ID: uuid.New(), CreatedAt: time.Now().UTC(), Longitude: 1, Latitude: 2},
	}
	provider.EXPECT().ListLocations(gomock.Any(), userID).Return(want, nil).Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/locations/all", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	got := decodeJSON[[]domain.UserLocation](t, rec.Body)
	if len(got) != 2 || got[0].ID != want[0].ID || got[1].ID != want[1].ID {
		t.Fatalf("body = %+v, want %+v", got, want)
	}
}

func TestAllLocations_UnknownUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	userID := uuid.New()
	provider.EXPECT().
		ListLocations(gomock.Any(), userID).
		Return(nil, e.Wrap("list locations", e.ErrNotFound)).
		Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/locations/all", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	got := decodeJSON[map[string]string](t, rec.Body)
	if got["error"] != "not found" {
		t.Fatalf("error = %q, want %q", got["error"], "not found")
	}
}

func TestPagedLocations_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	userID := uuid.New()
	source := []domain.UserLocation{
		{UserID: userID, ID: uuid.New(), Longitude: 5, Latitude: 6},
		{UserID: userID, ID: uuid.New(), Longitude: 3, Latitude: 4},
		{UserID: userID, ID: uuid.New(), Longitude: 1, Latitude: 2},
	}
	page := pagination.NewPagedList(source, 2, 2)

	provider.EXPECT().
		PagedLocations(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params *pagination.PageParameters) (*pagination.PagedList[domain.UserLocation], error) {
			if params.PageNumber() != 2 || params.PageSize() != 2 {
				t.Fatalf("params = (%d, %d), want (2, 2)", params.PageNumber(), params.PageSize())
			}
			return page, nil
		}).
		Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/locations?pageNumber=2&pageSize=2", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var header pagination.Header
	if err := json.Unmarshal([]byte(rec.Header().Get(pagination.HeaderName)), &header); err != nil {
		t.Fatalf("decode %s header: %v", pagination.HeaderName, err)
	}
	if header.PageNumber != 2 || header.PageSize != 2 || header.TotalCount != 3 || header.TotalPages != 2 {
		t.Fatalf("header = %+v", header)
	}

	got := decodeJSON[[]domain.UserLocation](t, rec.Body)
	if len(got) != 1 || got[0].ID != source[2].ID {
		t.Fatalf("body = %+v, want the last source item", got)
	}
}

func TestLatestLocation_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	userID := uuid.New()
	want := &domain.UserLocation{UserID: userID, ID: uuid.New(), Longitude: 3, Latitude: 4}
	provider.EXPECT().LatestLocation(gomock.Any(), userID).Return(want, nil).Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/locations/latest", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	got := decodeJSON[domain.UserLocation](t, rec.Body)
	if got.ID != want.ID || got.Longitude != 3 || got.Latitude != 4 {
		t.Fatalf("body = %+v, want %+v", got, want)
	}
}

func TestLatestLocation_UnknownUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	userID := uuid.New()
	provider.EXPECT().
		LatestLocation(gomock.Any(), userID).
		Return(nil, e.Wrap("latest location", e.ErrNotFound)).
		Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/locations/latest", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestLatestForAllUsers_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	provider.EXPECT().LatestForAllUsers(gomock.Any()).Return([]domain.UserLocation{}).Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/users/locations/all/latest", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	got := decodeJSON[[]domain.UserLocation](t, rec.Body)
	if len(got) != 0 {
		t.Fatalf("body = %+v, want empty", got)
	}
}

func TestPagedLatestForAllUsers_ClampsQuery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registrar := mock_users.NewMockUserRegistrar(ctrl)
	provider := mock_users.NewMockLocationProvider(ctrl)

	page := pagination.NewPagedList([]domain.UserLocation{}, 50, 1)
	provider.EXPECT().
		PagedLatestForAllUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *pagination.PageParameters) *pagination.PagedList[domain.UserLocation] {
			if params.PageNumber() != 1 || params.PageSize() != 50 {
				t.Fatalf("params = (%d, %d), want (1, 50)", params.PageNumber(), params.PageSize())
			}
			return page
		}).
		Times(1)

	h := users.NewHandler(newTestLogger(), registrar, provider)
	srv := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/users/locations/latest?pageNumber=0&pageSize=500", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get(pagination.HeaderName) == "" {
		t.Fatalf("expected a %s header", pagination.HeaderName)
	}
}

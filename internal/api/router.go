package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/AttemptedCollective/Airbox/internal/api/handlers/http/system"
	"github.com/AttemptedCollective/Airbox/internal/api/handlers/http/users"
	"github.com/AttemptedCollective/Airbox/internal/config"
	"github.com/AttemptedCollective/Airbox/internal/middleware"
	"github.com/AttemptedCollective/Airbox/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	usersHandler := users.NewHandler(logger, svc.Users, svc.Locations)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(usersHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(usersHandler *users.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/users", func(ur chi.Router) {
			ur.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			ur.Post("/", usersHandler.CreateUser)

			// Cross-user views. Registered before the {userId} subtree so the
			// static "locations" segment wins over the id parameter.
			ur.Get("/locations/all/latest", usersHandler.LatestForAllUsers)
			ur.Get("/locations/latest", usersHandler.PagedLatestForAllUsers)

			ur.Route("/{userId}", func(rr chi.Router) {
				rr.Post("/locations", usersHandler.AddLocation)
				rr.Get("/locations", usersHandler.PagedLocations)
				rr.Get("/locations/all", usersHandler.AllLocations)
				rr.Get("/locations/latest", usersHandler.LatestLocation)
			})
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}

package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AttemptedCollective/Airbox/internal/domain"
)

type userService struct {
	storage UserStorage
	logger  *slog.Logger
}

func NewUserService(storage UserStorage, logger *slog.Logger) UserService {
	return &userService{
		storage: storage,
		logger:  logger,
	}
}

func (s *userService) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	user := domain.NewUser(req.UserName)

	if err := s.storage.AddUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("user_name", user.UserName),
	)
	return user, nil
}

func (s *userService) ContainsUser(ctx context.Context, userID uuid.UUID) bool {
	return s.storage.ContainsUser(ctx, userID)
}

package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/AttemptedCollective/Airbox/internal/api"
	"github.com/AttemptedCollective/Airbox/internal/config"
	"github.com/AttemptedCollective/Airbox/internal/redis"
	"github.com/AttemptedCollective/Airbox/internal/service"
	"github.com/AttemptedCollective/Airbox/internal/storage/memory"
	"github.com/AttemptedCollective/Airbox/pkg/logger"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Storage       *memory.Storage
	Redis         *redis.Redis
	WebhookSender *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing storage")
	storage := memory.NewStorage()

	var (
		redisClient *redis.Redis
		sender      *service.WebhookSender
		events      service.LocationEventQueue
	)
	if !cfg.Webhook.Disabled {
		logger.Info("Initializing Redis")
		rc, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		redisClient = rc

		queue := redis.NewLocationQueue(rc.Client, "locations:events")
		events = queue
		sender = service.NewWebhookSender(logger, cfg.Webhook, queue)
	}

	userSvc := service.NewUserService(storage, logger)
	locationSvc := service.NewLocationService(storage, storage, events, logger)
	svc := service.NewService(userSvc, locationSvc)

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	return &Components{
		logger:        logger,
		HttpServer:    httpServer,
		Storage:       storage,
		Redis:         redisClient,
		WebhookSender: sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

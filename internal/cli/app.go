package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"board-service/internal/application/interfaces"
	"board-service/internal/application/services"
	"board-service/internal/config"
	"board-service/internal/delivery/rest"
	"board-service/internal/domain/quota"
	"board-service/internal/domain/repositories"
	"board-service/internal/infrastructure"
	"board-service/internal/infrastructure/db/postgres"
	"board-service/internal/infrastructure/messaging"
)

// app holds the wired services and the clients that must be closed.
type app struct {
	services rest.Services
	closers  []func() error
}

func newApp(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *log.Logger) (*app, error) {
	a := &app{}

	tx := postgres.NewTxManager(db)
	userRepo := postgres.NewUserRepository(db)
	boardRepo := postgres.NewBoardRepository(db)
	columnRepo := postgres.NewColumnRepository(db)
	cardRepo := postgres.NewCardRepository(db)

	blacklist := a.tokenBlacklist(ctx, cfg, db, logger)
	publisher := a.eventPublisher(cfg, logger)
	policy := quota.NewPolicy(cfg.FreeBoardLimit)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	a.services = rest.Services{
		Users:   services.NewUserService(userRepo, blacklist, jwtService, logger),
		Boards:  services.NewBoardService(tx, userRepo, boardRepo, policy, publisher, logger),
		Columns: services.NewColumnService(tx, userRepo, boardRepo, columnRepo, policy, publisher, logger),
		Cards:   services.NewCardService(tx, columnRepo, cardRepo, publisher, logger),
	}
	return a, nil
}

// tokenBlacklist prefers redis and falls back to the database table when
// redis is not configured or does not answer.
func (a *app) tokenBlacklist(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *log.Logger) repositories.TokenBlacklist {
	opts := infrastructure.RedisOptions{
		URL:      cfg.RedisURL,
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	if !opts.Enabled() {
		logger.Debug("redis not configured, token blacklist stored in database")
		return postgres.NewTokenRepository(db)
	}

	redisService, err := infrastructure.NewRedisService(ctx, opts)
	if err != nil {
		logger.Warn("redis unavailable, token blacklist stored in database", "err", err)
		return postgres.NewTokenRepository(db)
	}
	a.closers = append(a.closers, redisService.Close)
	logger.Info("token blacklist stored in redis")
	return redisService
}

func (a *app) eventPublisher(cfg *config.Config, logger *log.Logger) interfaces.EventPublisher {
	if cfg.NatsURL == "" {
		logger.Debug("nats not configured, events are dropped")
		return messaging.NopPublisher{}
	}

	publisher, err := messaging.ConnectNats(cfg.NatsURL, logger)
	if err != nil {
		logger.Warn("nats unavailable, events are dropped", "err", err)
		return messaging.NopPublisher{}
	}
	a.closers = append(a.closers, publisher.Close)
	return publisher
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warn("close", "err", err)
		}
	}
}

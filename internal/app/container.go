package app

import (
	"context"
	"log/slog"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	ucaccount "jobboard/internal/usecase/account"
	ucapplication "jobboard/internal/usecase/application"
	ucjob "jobboard/internal/usecase/job"
	"jobboard/internal/ws"
)

// Container owns the long-lived dependencies of the server process.
type Container struct {
	Config config.Config
	Logger *slog.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Accounts     *ucaccount.Service
	Jobs         *ucjob.Service
	Applications *ucapplication.Service
	Auth         usecase.AuthUsecase
	JWT          jwt.Service
}

func NewContainer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Container, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(connectCtx, cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn),
	}

	accountRepo := repository.NewPostgresAccountRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	c.Accounts = ucaccount.NewService(accountRepo, logger)
	c.Jobs = ucjob.NewService(ucjob.Options{
		Jobs:     jobRepo,
		Accounts: accountRepo,
		Cache:    c.Cache,
		Events:   ws.NewNotifier(c.Hub),
		Logger:   logger,
		CacheTTL: cfg.Redis.TTL,
	})
	c.Accounts.WithListingInvalidator(c.Jobs)
	c.Applications = ucapplication.NewService(applicationRepo, jobRepo, accountRepo, logger)
	c.Auth = usecase.NewAuthUsecase(c.Accounts, c.JWT)

	return c, nil
}

// Handlers builds the /api/v1 handler set.
func (c *Container) Handlers() v1.Handlers {
	return v1.Handlers{
		Auth:         handler.NewAuthHandler(c.Auth),
		Users:        handler.NewUserHandler(c.Accounts),
		Jobs:         handler.NewJobHandler(c.Jobs),
		Applications: handler.NewApplicationHandler(c.Applications),
		JobEvents:    ws.NewHandler(c.Hub, c.Logger),
		RequireAuth:  middleware.NewAuthMiddleware(c.JWT).Middleware(),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

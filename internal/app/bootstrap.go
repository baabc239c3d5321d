package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/database/migration"
	"jobboard/internal/database/seeder"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/routes"
	"jobboard/internal/delivery/http/server"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap connects dependencies, applies migrations and optional demo data,
// and mounts every route. The returned cleanup closes the container.
func Bootstrap(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("container: %w", err)
	}

	if cfg.App.MigrateOnStart {
		if err := migration.Default(logger).Run(ctx, c.DB.SQLDB()); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}
	if cfg.App.SeedDemoData {
		r := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
		if err := r.Run(ctx, c.DB); err != nil {
			_ = c.Close()
			return nil, nil, err
		}
	}

	f := server.New(cfg.App.AppName, logger)
	routes.NewRegistry(handler.NewHealthHandler(c.DB), c.Handlers()).Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"jobboard/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner applies seeders in order and stops at the first failure. Seeders
// are idempotent, so a restart with SEED_DEMO_DATA=true is harmless.
type Runner struct {
	Seeders []Seeder
	Logger  *slog.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.InfoContext(ctx, "seeder applied", "seeder", s.Name())
		}
	}
	return nil
}

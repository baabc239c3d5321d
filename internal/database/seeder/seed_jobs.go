package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobsSeeder posts sample jobs for the recruiter with RecruiterEmail. It does
// nothing when that recruiter already owns jobs.
type JobsSeeder struct {
	RecruiterEmail string
	Now            func() time.Time
}

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, db database.DB) error {
	var recruiterID uuid.UUID
	err := db.QueryRow(ctx,
		`SELECT id FROM accounts WHERE email = $1 AND role = 'recruiter'`,
		s.RecruiterEmail,
	).Scan(&recruiterID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("recruiter %s not seeded", s.RecruiterEmail)
	}
	if err != nil {
		return err
	}

	var existing int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`, recruiterID).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	deadline := now().UTC().AddDate(0, 2, 0).Truncate(24 * time.Hour)

	items := []job.Job{
		{
			Title:        "Backend Engineer (Go)",
			Description:  "Build and maintain Go services backed by PostgreSQL.",
			Location:     "New York, NY",
			Skills:       []string{"go", "postgresql", "redis"},
			SalaryRange:  "110000 - 140000",
			LocationType: job.LocationHybrid,
			Status:       job.StatusActive,
		},
		{
			Title:        "Frontend Engineer",
			Description:  "Own the alumni portal UI and its design system.",
			Location:     "Remote",
			Skills:       []string{"typescript", "react"},
			SalaryRange:  "90000 - 120000",
			LocationType: job.LocationRemote,
			Status:       job.StatusActive,
		},
		{
			Title:        "Data Analyst Intern",
			Description:  "Support the placement team with reporting.",
			Location:     "Boston, MA",
			Skills:       []string{"sql"},
			SalaryRange:  "Competitive",
			LocationType: job.LocationOnsite,
			Status:       job.StatusClosed,
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, j := range items {
		j.SetSalaryRange(j.SalaryRange)
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, recruiter_id, title, description, location, skills,
				salary_range, salary_min, salary_max, deadline, job_location_type, status)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			recruiterID, j.Title, j.Description, j.Location, j.Skills,
			j.SalaryRange, j.SalaryMin, j.SalaryMax, deadline, string(j.LocationType), string(j.Status),
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

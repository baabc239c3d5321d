package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

const applicationColumns = `id, job_id, candidate_id, resume_url, cover_letter, status, created_at, updated_at`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = application.StatusApplied
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, resume_url, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+applicationColumns,
		a.ID, a.JobID, a.CandidateID, a.ResumeURL, a.CoverLetter, string(a.Status),
	)
	created, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err, "applications_job_candidate_key") {
			return application.Application{}, application.ErrDuplicate
		}
		return application.Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at, id`, jobID)
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 ORDER BY created_at, id`, candidateID)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+applicationColumns,
		id, string(status),
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, q string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	if err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.ResumeURL, &a.CoverLetter, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}

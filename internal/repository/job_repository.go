package repository

import (
	"context"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

const jobColumns = `j.id, j.recruiter_id, j.title, j.description, j.location, j.skills,
	j.salary_range, j.salary_min, j.salary_max, j.deadline, j.job_location_type, j.status,
	j.created_at, j.updated_at`

// Company and recruiter names are resolved from the owning account on every read.
const listingSelect = `SELECT ` + jobColumns + `,
	COALESCE(a.company_name, ''), COALESCE(a.name, '')
	FROM jobs j
	LEFT JOIN accounts a ON a.id = j.recruiter_id`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs AS j (id, recruiter_id, title, description, location, skills,
			salary_range, salary_min, salary_max, deadline, job_location_type, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+jobColumns,
		j.ID, j.RecruiterID, j.Title, j.Description, j.Location, j.Skills,
		j.SalaryRange, j.SalaryMin, j.SalaryMax, j.Deadline, string(j.LocationType), string(j.Status),
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	row := r.db.QueryRow(ctx, listingSelect+` WHERE j.id = $1`, id)
	return scanListing(row)
}

func (r *PostgresJobRepository) List(ctx context.Context, f job.ListFilter) ([]job.Listing, error) {
	var (
		where []string
		args  []any
	)
	if f.RecruiterID != nil {
		args = append(args, *f.RecruiterID)
		where = append(where, "j.recruiter_id = $1")
	}

	q := listingSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY j.created_at, j.id"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every mutable column; the owner is never changed.
func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	if j.Skills == nil {
		j.Skills = []string{}
	}
	row := r.db.QueryRow(ctx,
		`UPDATE jobs AS j
		 SET title = $2, description = $3, location = $4, skills = $5,
			salary_range = $6, salary_min = $7, salary_max = $8, deadline = $9,
			job_location_type = $10, status = $11, updated_at = now()
		 WHERE j.id = $1
		 RETURNING `+jobColumns,
		j.ID, j.Title, j.Description, j.Location, j.Skills,
		j.SalaryRange, j.SalaryMin, j.SalaryMax, j.Deadline,
		string(j.LocationType), string(j.Status),
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) SetStatus(ctx context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs AS j SET status = $2, updated_at = now()
		 WHERE j.id = $1
		 RETURNING `+jobColumns,
		id, string(status),
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func jobDest(j *job.Job, locationType, status *string) []any {
	return []any{
		&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Location, &j.Skills,
		&j.SalaryRange, &j.SalaryMin, &j.SalaryMax, &j.Deadline, locationType, status,
		&j.CreatedAt, &j.UpdatedAt,
	}
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j                    job.Job
		locationType, status string
	)
	if err := row.Scan(jobDest(&j, &locationType, &status)...); err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.LocationType = job.LocationType(locationType)
	j.Status = job.Status(status)
	return j, nil
}

func scanListing(row database.Row) (job.Listing, error) {
	var (
		l                    job.Listing
		locationType, status string
	)
	dest := append(jobDest(&l.Job, &locationType, &status), &l.CompanyName, &l.RecruiterName)
	if err := row.Scan(dest...); err != nil {
		if isNoRows(err) {
			return job.Listing{}, job.ErrNotFound
		}
		return job.Listing{}, err
	}
	l.LocationType = job.LocationType(locationType)
	l.Status = job.Status(status)
	return l, nil
}

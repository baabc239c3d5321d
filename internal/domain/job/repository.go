package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

const (
	EventCreated = "job_created"
	EventUpdated = "job_updated"
	EventClosed  = "job_closed"
	EventDeleted = "job_deleted"
)

type ListFilter struct {
	RecruiterID *uuid.UUID
}

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Listing, error)
	List(ctx context.Context, f ListFilter) ([]Listing, error)
	Update(ctx context.Context, j Job) (Job, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) (Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Application, error)
}

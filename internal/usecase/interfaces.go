package usecase

import (
	"context"

	"jobboard/internal/domain/account"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	ucaccount "jobboard/internal/usecase/account"
	ucapplication "jobboard/internal/usecase/application"
	ucjob "jobboard/internal/usecase/job"

	"github.com/google/uuid"
)

type AccountUsecase interface {
	List(ctx context.Context) ([]account.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (account.Account, error)
	Update(ctx context.Context, id uuid.UUID, in ucaccount.UpdateInput) (account.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobUsecase interface {
	Create(ctx context.Context, in ucjob.CreateInput) (job.Listing, error)
	List(ctx context.Context, p ucjob.ListParams) ([]job.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Listing, error)
	Update(ctx context.Context, id uuid.UUID, in ucjob.UpdateInput) (job.Listing, error)
	Close(ctx context.Context, id uuid.UUID) (job.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, in ucapplication.ApplyInput) (application.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (application.Application, error)
}

var (
	_ AccountUsecase     = (*ucaccount.Service)(nil)
	_ JobUsecase         = (*ucjob.Service)(nil)
	_ ApplicationUsecase = (*ucapplication.Service)(nil)
	_ AuthUsecase        = (*Auth)(nil)
)

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"jobboard/internal/domain/account"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidCandidate = errors.New("invalid candidate id")
	ErrNotFound         = errors.New("application not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrJobClosed        = errors.New("job is closed")
	ErrDuplicate        = errors.New("already applied to this job")
	ErrInternal         = errors.New("internal error")
)

type ApplyInput struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
	ResumeURL   string
	CoverLetter string
}

type Service struct {
	applications application.Repository
	jobs         job.Repository
	accounts     account.Repository
	logger       *slog.Logger
}

func NewService(applications application.Repository, jobs job.Repository, accounts account.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{applications: applications, jobs: jobs, accounts: accounts, logger: logger}
}

func (s *Service) Apply(ctx context.Context, in ApplyInput) (application.Application, error) {
	resume := strings.TrimSpace(in.ResumeURL)
	if resume == "" {
		return application.Application{}, fmt.Errorf("%w: resume url is required", ErrInvalidInput)
	}

	l, err := s.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, fmt.Errorf("%w: lookup job: %w", ErrInternal, err)
	}
	if !l.IsActive() {
		return application.Application{}, ErrJobClosed
	}

	candidate, err := s.accounts.GetByID(ctx, in.CandidateID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return application.Application{}, ErrInvalidCandidate
		}
		return application.Application{}, fmt.Errorf("%w: lookup candidate: %w", ErrInternal, err)
	}
	if !candidate.IsCandidate() {
		return application.Application{}, ErrInvalidCandidate
	}

	created, err := s.applications.Create(ctx, application.Application{
		ID:          uuid.New(),
		JobID:       l.ID,
		CandidateID: candidate.ID,
		ResumeURL:   resume,
		CoverLetter: strings.TrimSpace(in.CoverLetter),
		Status:      application.StatusApplied,
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrDuplicate
		}
		return application.Application{}, fmt.Errorf("%w: create application: %w", ErrInternal, err)
	}

	s.logger.InfoContext(ctx, "application submitted",
		"application_id", created.ID, "job_id", created.JobID, "candidate_id", created.CandidateID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	a, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return application.Application{}, mapRepoError(err)
	}
	return a, nil
}

func (s *Service) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("%w: lookup job: %w", ErrInternal, err)
	}
	list, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications: %w", ErrInternal, err)
	}
	return list, nil
}

func (s *Service) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	list, err := s.applications.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications: %w", ErrInternal, err)
	}
	return list, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (application.Application, error) {
	st, ok := application.ParseStatus(status)
	if !ok {
		return application.Application{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	a, err := s.applications.UpdateStatus(ctx, id, st)
	if err != nil {
		return application.Application{}, mapRepoError(err)
	}
	return a, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, application.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

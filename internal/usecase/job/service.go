package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"jobboard/internal/catalog"
	"jobboard/internal/domain/account"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidRecruiter = errors.New("invalid recruiter id")
	ErrNotFound         = errors.New("job not found")
	ErrInternal         = errors.New("internal error")
)

const (
	cacheKeyAll             = "jobs:list:all"
	cacheKeyRecruiterPrefix = "jobs:list:recruiter:"
	cachePattern            = "jobs:list:*"
)

type listingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// EventPublisher is told about every successful job write.
type EventPublisher interface {
	NotifyJob(ctx context.Context, eventType string, jobID uuid.UUID)
}

type CreateInput struct {
	RecruiterID  uuid.UUID
	Title        string
	Description  string
	Location     string
	Skills       []string
	SalaryRange  string
	Deadline     time.Time
	LocationType string
}

// UpdateInput lists the fields a job update may touch; nil leaves a field as is.
type UpdateInput struct {
	Title        *string
	Description  *string
	Location     *string
	Skills       *[]string
	SalaryRange  *string
	Deadline     *time.Time
	LocationType *string
	Status       *string
}

type ListParams struct {
	RecruiterID *uuid.UUID
	Status      *job.Status
	Filter      catalog.Filter
}

type Service struct {
	jobs     job.Repository
	accounts account.Repository
	cache    listingCache
	events   EventPublisher
	logger   *slog.Logger
	cacheTTL time.Duration
}

type Options struct {
	Jobs     job.Repository
	Accounts account.Repository
	Cache    listingCache
	Events   EventPublisher
	Logger   *slog.Logger
	CacheTTL time.Duration
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		jobs:     opts.Jobs,
		accounts: opts.Accounts,
		cache:    opts.Cache,
		events:   opts.Events,
		logger:   logger,
		cacheTTL: opts.CacheTTL,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (job.Listing, error) {
	owner, err := s.accounts.GetByID(ctx, in.RecruiterID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return job.Listing{}, ErrInvalidRecruiter
		}
		return job.Listing{}, fmt.Errorf("%w: lookup recruiter: %w", ErrInternal, err)
	}
	if !owner.IsRecruiter() {
		return job.Listing{}, ErrInvalidRecruiter
	}

	locType, ok := job.ParseLocationType(in.LocationType)
	if !ok {
		return job.Listing{}, fmt.Errorf("%w: unknown job location type %q", ErrInvalidInput, in.LocationType)
	}

	j := job.Job{
		ID:           uuid.New(),
		RecruiterID:  owner.ID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Location:     strings.TrimSpace(in.Location),
		Skills:       cleanSkills(in.Skills),
		Deadline:     in.Deadline,
		LocationType: locType,
		Status:       job.StatusActive,
	}
	j.SetSalaryRange(in.SalaryRange)
	if err := validate(j); err != nil {
		return job.Listing{}, err
	}

	created, err := s.jobs.Create(ctx, j)
	if err != nil {
		return job.Listing{}, fmt.Errorf("%w: create job: %w", ErrInternal, err)
	}

	s.afterWrite(ctx, job.EventCreated, created.ID)
	return job.Listing{Job: created, CompanyName: owner.CompanyName, RecruiterName: owner.Name}, nil
}

// List returns enriched listings in creation order, optionally narrowed to one
// recruiter, one status and the catalog filter.
func (s *Service) List(ctx context.Context, p ListParams) ([]job.Listing, error) {
	key := cacheKeyAll
	f := job.ListFilter{}
	if p.RecruiterID != nil {
		key = cacheKeyRecruiterPrefix + p.RecruiterID.String()
		f.RecruiterID = p.RecruiterID
	}

	listings, hit := s.cached(ctx, key)
	if !hit {
		var err error
		listings, err = s.jobs.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("%w: list jobs: %w", ErrInternal, err)
		}
		if s.cache != nil {
			if err := s.cache.SetJSON(ctx, key, listings, s.cacheTTL); err != nil {
				s.logger.WarnContext(ctx, "cache job listings", "key", key, "error", err)
			}
		}
	}

	if p.Status != nil {
		kept := make([]job.Listing, 0, len(listings))
		for _, l := range listings {
			if l.Status == *p.Status {
				kept = append(kept, l)
			}
		}
		listings = kept
	}
	return catalog.Apply(listings, p.Filter), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	l, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Listing{}, mapRepoError(err)
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (job.Listing, error) {
	current, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Listing{}, mapRepoError(err)
	}

	j := current.Job
	if in.Title != nil {
		j.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		j.Description = strings.TrimSpace(*in.Description)
	}
	if in.Location != nil {
		j.Location = strings.TrimSpace(*in.Location)
	}
	if in.Skills != nil {
		j.Skills = cleanSkills(*in.Skills)
	}
	if in.SalaryRange != nil {
		j.SetSalaryRange(*in.SalaryRange)
	}
	if in.Deadline != nil {
		j.Deadline = *in.Deadline
	}
	if in.LocationType != nil {
		lt, ok := job.ParseLocationType(*in.LocationType)
		if !ok {
			return job.Listing{}, fmt.Errorf("%w: unknown job location type %q", ErrInvalidInput, *in.LocationType)
		}
		j.LocationType = lt
	}
	if in.Status != nil {
		st, ok := job.ParseStatus(*in.Status)
		if !ok {
			return job.Listing{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		j.Status = st
	}
	if err := validate(j); err != nil {
		return job.Listing{}, err
	}

	updated, err := s.jobs.Update(ctx, j)
	if err != nil {
		return job.Listing{}, mapRepoError(err)
	}

	s.afterWrite(ctx, job.EventUpdated, id)
	current.Job = updated
	return current, nil
}

// Close marks the job closed. Closing a closed job succeeds.
func (s *Service) Close(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	current, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Listing{}, mapRepoError(err)
	}

	closed, err := s.jobs.SetStatus(ctx, id, job.StatusClosed)
	if err != nil {
		return job.Listing{}, mapRepoError(err)
	}

	s.afterWrite(ctx, job.EventClosed, id)
	current.Job = closed
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	s.afterWrite(ctx, job.EventDeleted, id)
	return nil
}

func (s *Service) cached(ctx context.Context, key string) ([]job.Listing, bool) {
	if s.cache == nil {
		return nil, false
	}
	var listings []job.Listing
	hit, err := s.cache.GetJSON(ctx, key, &listings)
	if err != nil {
		s.logger.WarnContext(ctx, "read cached job listings", "key", key, "error", err)
		return nil, false
	}
	return listings, hit
}

// InvalidateListings drops every cached job listing. Account writes call it
// too, since listings embed the owner's company and name.
func (s *Service) InvalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, cachePattern); err != nil {
		s.logger.WarnContext(ctx, "invalidate job listings", "error", err)
	}
}

func (s *Service) afterWrite(ctx context.Context, eventType string, id uuid.UUID) {
	s.InvalidateListings(ctx)
	if s.events != nil {
		s.events.NotifyJob(ctx, eventType, id)
	}
	s.logger.InfoContext(ctx, "job written", "event", eventType, "job_id", id)
}

func validate(j job.Job) error {
	switch {
	case j.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case j.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	case j.Deadline.IsZero():
		return fmt.Errorf("%w: deadline is required", ErrInvalidInput)
	case len(j.Skills) == 0:
		return fmt.Errorf("%w: at least one skill is required", ErrInvalidInput)
	}
	if j.SalaryRange != "" && !(job.SalaryRange{Min: j.SalaryMin, Max: j.SalaryMax}).Valid() {
		return fmt.Errorf("%w: salary range %q must be \"<min> - <max>\" with min <= max", ErrInvalidInput, j.SalaryRange)
	}
	return nil
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		if sk = strings.TrimSpace(sk); sk != "" {
			out = append(out, sk)
		}
	}
	return out
}

func mapRepoError(err error) error {
	if errors.Is(err, job.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

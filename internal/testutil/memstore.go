// Package testutil holds in-memory stand-ins for the Postgres repositories.
// They keep insertion order, enforce the same unique keys and cascade deletes
// the way the schema does.
package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"jobboard/internal/domain/account"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	accounts     []account.Account
	jobs         []job.Job
	applications []application.Application
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Accounts() *AccountRepo         { return &AccountRepo{s: s} }
func (s *Store) Jobs() *JobRepo                 { return &JobRepo{s: s} }
func (s *Store) Applications() *ApplicationRepo { return &ApplicationRepo{s: s} }

type AccountRepo struct{ s *Store }

func (r *AccountRepo) Create(_ context.Context, a account.Account) (account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.accounts {
		if x.Email == a.Email {
			return account.Account{}, account.ErrEmailTaken
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	r.s.accounts = append(r.s.accounts, a)
	return a, nil
}

func (r *AccountRepo) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.s.accountIndex(id); i >= 0 {
		return r.s.accounts[i], nil
	}
	return account.Account{}, account.ErrNotFound
}

func (r *AccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *AccountRepo) List(_ context.Context) ([]account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return slices.Clone(r.s.accounts), nil
}

func (r *AccountRepo) Update(_ context.Context, a account.Account) (account.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.accountIndex(a.ID)
	if i < 0 {
		return account.Account{}, account.ErrNotFound
	}
	for _, x := range r.s.accounts {
		if x.ID != a.ID && x.Email == a.Email {
			return account.Account{}, account.ErrEmailTaken
		}
	}
	cur := r.s.accounts[i]
	cur.Name, cur.Email, cur.PasswordHash, cur.CompanyName = a.Name, a.Email, a.PasswordHash, a.CompanyName
	cur.UpdatedAt = r.s.now()
	r.s.accounts[i] = cur
	return cur, nil
}

func (r *AccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.accountIndex(id)
	if i < 0 {
		return account.ErrNotFound
	}
	r.s.accounts = slices.Delete(r.s.accounts, i, i+1)

	var removedJobs []uuid.UUID
	r.s.jobs = slices.DeleteFunc(r.s.jobs, func(j job.Job) bool {
		if j.RecruiterID == id {
			removedJobs = append(removedJobs, j.ID)
			return true
		}
		return false
	})
	r.s.applications = slices.DeleteFunc(r.s.applications, func(a application.Application) bool {
		return a.CandidateID == id || slices.Contains(removedJobs, a.JobID)
	})
	return nil
}

type JobRepo struct{ s *Store }

func (r *JobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.Skills = slices.Clone(j.Skills)
	j.CreatedAt = r.s.now()
	j.UpdatedAt = j.CreatedAt
	r.s.jobs = append(r.s.jobs, j)
	return j, nil
}

func (r *JobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.s.jobIndex(id); i >= 0 {
		return r.s.listing(r.s.jobs[i]), nil
	}
	return job.Listing{}, job.ErrNotFound
}

func (r *JobRepo) List(_ context.Context, f job.ListFilter) ([]job.Listing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]job.Listing, 0, len(r.s.jobs))
	for _, j := range r.s.jobs {
		if f.RecruiterID != nil && j.RecruiterID != *f.RecruiterID {
			continue
		}
		out = append(out, r.s.listing(j))
	}
	return out, nil
}

func (r *JobRepo) Update(_ context.Context, j job.Job) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.jobIndex(j.ID)
	if i < 0 {
		return job.Job{}, job.ErrNotFound
	}
	cur := r.s.jobs[i]
	j.RecruiterID = cur.RecruiterID
	j.CreatedAt = cur.CreatedAt
	j.Skills = slices.Clone(j.Skills)
	j.UpdatedAt = r.s.now()
	r.s.jobs[i] = j
	return j, nil
}

func (r *JobRepo) SetStatus(_ context.Context, id uuid.UUID, status job.Status) (job.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.jobIndex(id)
	if i < 0 {
		return job.Job{}, job.ErrNotFound
	}
	r.s.jobs[i].Status = status
	r.s.jobs[i].UpdatedAt = r.s.now()
	return r.s.jobs[i], nil
}

func (r *JobRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.s.jobIndex(id)
	if i < 0 {
		return job.ErrNotFound
	}
	r.s.jobs = slices.Delete(r.s.jobs, i, i+1)
	r.s.applications = slices.DeleteFunc(r.s.applications, func(a application.Application) bool {
		return a.JobID == id
	})
	return nil
}

type ApplicationRepo struct{ s *Store }

func (r *ApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.applications {
		if x.JobID == a.JobID && x.CandidateID == a.CandidateID {
			return application.Application{}, application.ErrDuplicate
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	r.s.applications = append(r.s.applications, a)
	return a, nil
}

func (r *ApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.applications {
		if a.ID == id {
			return a, nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (r *ApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.filter(func(a application.Application) bool { return a.JobID == jobID }), nil
}

func (r *ApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.filter(func(a application.Application) bool { return a.CandidateID == candidateID }), nil
}

func (r *ApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.applications {
		if r.s.applications[i].ID == id {
			r.s.applications[i].Status = status
			r.s.applications[i].UpdatedAt = r.s.now()
			return r.s.applications[i], nil
		}
	}
	return application.Application{}, application.ErrNotFound
}

func (r *ApplicationRepo) filter(keep func(application.Application) bool) []application.Application {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]application.Application, 0)
	for _, a := range r.s.applications {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) accountIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.accounts, func(a account.Account) bool { return a.ID == id })
}

func (s *Store) jobIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.jobs, func(j job.Job) bool { return j.ID == id })
}

func (s *Store) listing(j job.Job) job.Listing {
	l := job.Listing{Job: j}
	l.Skills = slices.Clone(j.Skills)
	if i := s.accountIndex(j.RecruiterID); i >= 0 {
		l.CompanyName = s.accounts[i].CompanyName
		l.RecruiterName = s.accounts[i].Name
	}
	return l
}

var (
	_ account.Repository     = (*AccountRepo)(nil)
	_ job.Repository         = (*JobRepo)(nil)
	_ application.Repository = (*ApplicationRepo)(nil)
)

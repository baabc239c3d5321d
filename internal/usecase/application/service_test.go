package application

import (
	"context"
	"testing"

	"jobboard/internal/domain/account"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc          *Service
	applications *mocks.MockApplicationRepository
	jobs         *mocks.MockJobRepository
	accounts     *mocks.MockAccountRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		applications: mocks.NewMockApplicationRepository(ctrl),
		jobs:         mocks.NewMockJobRepository(ctrl),
		accounts:     mocks.NewMockAccountRepository(ctrl),
	}
	f.svc = NewService(f.applications, f.jobs, f.accounts, nil)
	return f
}

var (
	activeJob = job.Listing{Job: job.Job{ID: uuid.New(), Status: job.StatusActive}}
	candidate = account.Account{ID: uuid.New(), Role: account.RoleCandidate}
)

func applyInput() ApplyInput {
	return ApplyInput{JobID: activeJob.ID, CandidateID: candidate.ID, ResumeURL: "https://cv.example/cara.pdf"}
}

func TestApply_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.jobs.EXPECT().GetByID(ctx, activeJob.ID).Return(activeJob, nil)
	f.accounts.EXPECT().GetByID(ctx, candidate.ID).Return(candidate, nil)
	f.applications.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a application.Application) (application.Application, error) {
			assert.Equal(t, application.StatusApplied, a.Status)
			assert.Equal(t, activeJob.ID, a.JobID)
			return a, nil
		})

	got, err := f.svc.Apply(ctx, applyInput())
	require.NoError(t, err)
	assert.Equal(t, candidate.ID, got.CandidateID)
}

func TestApply_ClosedJob(t *testing.T) {
	f := newFixture(t)
	closed := activeJob
	closed.Status = job.StatusClosed
	f.jobs.EXPECT().GetByID(gomock.Any(), closed.ID).Return(closed, nil)
	f.applications.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Apply(context.Background(), applyInput())
	assert.ErrorIs(t, err, ErrJobClosed)
}

func TestApply_RejectsRecruiterAndUnknownCandidate(t *testing.T) {
	tests := []struct {
		name string
		acct account.Account
		err  error
	}{
		{"recruiter", account.Account{ID: candidate.ID, Role: account.RoleRecruiter}, nil},
		{"unknown", account.Account{}, account.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.jobs.EXPECT().GetByID(gomock.Any(), activeJob.ID).Return(activeJob, nil)
			f.accounts.EXPECT().GetByID(gomock.Any(), candidate.ID).Return(tt.acct, tt.err)

			_, err := f.svc.Apply(context.Background(), applyInput())
			assert.ErrorIs(t, err, ErrInvalidCandidate)
		})
	}
}

func TestApply_Duplicate(t *testing.T) {
	f := newFixture(t)
	f.jobs.EXPECT().GetByID(gomock.Any(), activeJob.ID).Return(activeJob, nil)
	f.accounts.EXPECT().GetByID(gomock.Any(), candidate.ID).Return(candidate, nil)
	f.applications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(application.Application{}, application.ErrDuplicate)

	_, err := f.svc.Apply(context.Background(), applyInput())
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestApply_MissingResumeAndUnknownJob(t *testing.T) {
	f := newFixture(t)

	in := applyInput()
	in.ResumeURL = " "
	_, err := f.svc.Apply(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.jobs.EXPECT().GetByID(gomock.Any(), activeJob.ID).Return(job.Listing{}, job.ErrNotFound)
	_, err = f.svc.Apply(context.Background(), applyInput())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.applications.EXPECT().UpdateStatus(gomock.Any(), id, application.StatusUnderReview).
		Return(application.Application{ID: id, Status: application.StatusUnderReview}, nil)

	got, err := f.svc.UpdateStatus(context.Background(), id, "Under Review")
	require.NoError(t, err)
	assert.Equal(t, application.StatusUnderReview, got.Status)

	_, err = f.svc.UpdateStatus(context.Background(), id, "hired")
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.applications.EXPECT().UpdateStatus(gomock.Any(), id, application.StatusRejected).
		Return(application.Application{}, application.ErrNotFound)
	_, err = f.svc.UpdateStatus(context.Background(), id, "rejected")
	assert.ErrorIs(t, err, ErrNotFound)
}

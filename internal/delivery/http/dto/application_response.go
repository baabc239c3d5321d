package dto

import (
	"time"

	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"jobId"`
	CandidateID uuid.UUID `json:"candidateId"`
	ResumeURL   string    `json:"resumeUrl"`
	CoverLetter string    `json:"coverLetter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		ResumeURL:   a.ResumeURL,
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewApplicationListResponse(list []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied     Status = "applied"
	StatusUnderReview Status = "under_review"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
)

// ParseStatus accepts "Under Review", "under-review" and "under_review" alike.
func ParseStatus(s string) (Status, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer(" ", "_", "-", "_").Replace(v)
	switch Status(v) {
	case StatusApplied, StatusUnderReview, StatusShortlisted, StatusRejected:
		return Status(v), true
	default:
		return "", false
	}
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	ResumeURL   string
	CoverLetter string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// ParseStatus normalizes legacy casings ("Active", "CLOSED") to the canonical
// lowercase value.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusActive:
		return StatusActive, true
	case StatusClosed:
		return StatusClosed, true
	default:
		return "", false
	}
}

type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnsite LocationType = "onsite"
)

// ParseLocationType maps an empty value to LocationRemote.
func ParseLocationType(s string) (LocationType, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "-", "")
	switch LocationType(v) {
	case "":
		return LocationRemote, true
	case LocationRemote, LocationHybrid, LocationOnsite:
		return LocationType(v), true
	default:
		return "", false
	}
}

type Job struct {
	ID           uuid.UUID
	RecruiterID  uuid.UUID
	Title        string
	Description  string
	Location     string
	Skills       []string
	SalaryRange  string
	SalaryMin    *int
	SalaryMax    *int
	Deadline     time.Time
	LocationType LocationType
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PostedBy is the owning recruiter; kept for callers of the old field name.
func (j Job) PostedBy() uuid.UUID {
	return j.RecruiterID
}

func (j Job) IsActive() bool {
	return j.Status == StatusActive
}

// SetSalaryRange stores the display string together with its parsed bounds.
func (j *Job) SetSalaryRange(s string) {
	j.SalaryRange = strings.TrimSpace(s)
	r := ParseSalaryRange(j.SalaryRange)
	j.SalaryMin = r.Min
	j.SalaryMax = r.Max
}

// Listing is a job joined with its owner's display fields.
type Listing struct {
	Job
	CompanyName   string
	RecruiterName string
}

package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type JobResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Skills          []string  `json:"skills"`
	SalaryRange     string    `json:"salaryRange"`
	SalaryMin       *int      `json:"salaryMin"`
	SalaryMax       *int      `json:"salaryMax"`
	Deadline        string    `json:"deadline"`
	JobLocationType string    `json:"jobLocationType"`
	Status          string    `json:"status"`
	RecruiterID     uuid.UUID `json:"recruiterId"`
	CompanyName     string    `json:"companyName"`
	RecruiterName   string    `json:"recruiterName"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewJobResponse(l job.Listing) JobResponse {
	skills := l.Skills
	if skills == nil {
		skills = []string{}
	}
	deadline := ""
	if !l.Deadline.IsZero() {
		deadline = l.Deadline.Format(DateLayout)
	}
	return JobResponse{
		ID:              l.ID,
		Title:           l.Title,
		Description:     l.Description,
		Location:        l.Location,
		Skills:          skills,
		SalaryRange:     l.SalaryRange,
		SalaryMin:       l.SalaryMin,
		SalaryMax:       l.SalaryMax,
		Deadline:        deadline,
		JobLocationType: string(l.LocationType),
		Status:          string(l.Status),
		RecruiterID:     l.RecruiterID,
		CompanyName:     l.CompanyName,
		RecruiterName:   l.RecruiterName,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func NewJobListResponse(list []job.Listing) []JobResponse {
	out := make([]JobResponse, 0, len(list))
	for _, l := range list {
		out = append(out, NewJobResponse(l))
	}
	return out
}

// ToListing converts a decoded response back to the domain read model. Salary
// bounds are re-derived from the display string when the payload omits them.
func (r JobResponse) ToListing() job.Listing {
	deadline, _ := time.Parse(DateLayout, r.Deadline)
	j := job.Job{
		ID:           r.ID,
		RecruiterID:  r.RecruiterID,
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Skills:       r.Skills,
		SalaryRange:  r.SalaryRange,
		SalaryMin:    r.SalaryMin,
		SalaryMax:    r.SalaryMax,
		Deadline:     deadline,
		LocationType: job.LocationType(r.JobLocationType),
		Status:       job.Status(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if j.SalaryMin == nil && j.SalaryMax == nil && j.SalaryRange != "" {
		j.SetSalaryRange(j.SalaryRange)
	}
	return job.Listing{Job: j, CompanyName: r.CompanyName, RecruiterName: r.RecruiterName}
}

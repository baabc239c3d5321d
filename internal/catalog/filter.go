package catalog

import (
	"strconv"
	"strings"

	"jobboard/internal/domain/job"
)

// Filter narrows a job collection. Every field is optional; the zero value
// matches everything.
type Filter struct {
	Search    string
	Location  string
	SalaryMin string
	SalaryMax string
}

func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Search) == "" &&
		strings.TrimSpace(f.Location) == "" &&
		strings.TrimSpace(f.SalaryMin) == "" &&
		strings.TrimSpace(f.SalaryMax) == ""
}

// Apply returns the listings matching all predicates of f, in input order.
func Apply(listings []job.Listing, f Filter) []job.Listing {
	p := compile(f)
	out := make([]job.Listing, 0, len(listings))
	for _, l := range listings {
		if p.match(l) {
			out = append(out, l)
		}
	}
	return out
}

// Partition splits listings by status, as shown on the recruiter dashboard.
func Partition(listings []job.Listing) (active, closed []job.Listing) {
	active = make([]job.Listing, 0, len(listings))
	closed = make([]job.Listing, 0)
	for _, l := range listings {
		if l.Status == job.StatusClosed {
			closed = append(closed, l)
			continue
		}
		active = append(active, l)
	}
	return active, closed
}

type predicate struct {
	search    string
	location  string
	salaryMin *int
	salaryMax *int
}

func compile(f Filter) predicate {
	return predicate{
		search:    strings.ToLower(strings.TrimSpace(f.Search)),
		location:  strings.ToLower(strings.TrimSpace(f.Location)),
		salaryMin: parseBound(f.SalaryMin),
		salaryMax: parseBound(f.SalaryMax),
	}
}

// parseBound ignores bounds that are not plain integers.
func parseBound(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func (p predicate) match(l job.Listing) bool {
	return p.matchesSearch(l) && p.matchesLocation(l) && p.matchesSalary(l)
}

func (p predicate) matchesSearch(l job.Listing) bool {
	if p.search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), p.search) ||
		strings.Contains(strings.ToLower(l.CompanyName), p.search)
}

func (p predicate) matchesLocation(l job.Listing) bool {
	if p.location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Location), p.location)
}

// matchesSalary fails a concrete bound when the job's own bound is unknown.
func (p predicate) matchesSalary(l job.Listing) bool {
	if p.salaryMin != nil {
		if l.SalaryMin == nil || *l.SalaryMin < *p.salaryMin {
			return false
		}
	}
	if p.salaryMax != nil {
		if l.SalaryMax == nil || *l.SalaryMax > *p.salaryMax {
			return false
		}
	}
	return true
}

package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

// APIError is returned for any non-2xx answer. Message is the envelope
// message when the body could be decoded.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("jobboard api: status=%d", e.Status)
	}
	return fmt.Sprintf("jobboard api: status=%d message=%q", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Client talks to the jobboard REST API. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func New(cfg config.ClientConfig, logger *slog.Logger) *Client {
	cfg.Sanitize()
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// FetchJobs returns every job. It satisfies catalog.Fetcher.
func (c *Client) FetchJobs(ctx context.Context) ([]job.Listing, error) {
	var out []dto.JobResponse
	if err := c.get(ctx, "/api/v1/jobs", &out); err != nil {
		return nil, err
	}
	return toListings(out), nil
}

func (c *Client) ListJobsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Listing, error) {
	var out []dto.JobResponse
	if err := c.get(ctx, "/api/v1/jobs/recruiter/"+recruiterID.String(), &out); err != nil {
		return nil, err
	}
	return toListings(out), nil
}

func (c *Client) GetJob(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	var out dto.JobResponse
	if err := c.get(ctx, "/api/v1/jobs/"+id.String(), &out); err != nil {
		return job.Listing{}, err
	}
	return out.ToListing(), nil
}

func (c *Client) ListApplicationsForJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	var out []dto.ApplicationResponse
	if err := c.get(ctx, "/api/v1/jobs/"+jobID.String()+"/applications", &out); err != nil {
		return nil, err
	}
	apps := make([]application.Application, 0, len(out))
	for _, r := range out {
		apps = append(apps, application.Application{
			ID:          r.ID,
			JobID:       r.JobID,
			CandidateID: r.CandidateID,
			ResumeURL:   r.ResumeURL,
			CoverLetter: r.CoverLetter,
			Status:      application.Status(r.Status),
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return apps, nil
}

func (c *Client) get(ctx context.Context, path string, data any) error {
	if c == nil || c.http == nil {
		return errors.New("nil api client")
	}
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var env envelope[json.RawMessage]
		msg := strings.TrimSpace(string(rb))
		if json.Unmarshal(rb, &env) == nil && env.Message != "" {
			msg = env.Message
		}
		c.logger.WarnContext(ctx, "api request failed", "endpoint", endpoint, "status", resp.StatusCode, "message", msg)
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	env := envelope[any]{Data: data}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func toListings(in []dto.JobResponse) []job.Listing {
	out := make([]job.Listing, 0, len(in))
	for _, r := range in {
		out = append(out, r.ToListing())
	}
	return out
}

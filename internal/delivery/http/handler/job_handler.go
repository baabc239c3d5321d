package handler

import (
	"errors"
	"time"

	"jobboard/internal/catalog"
	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
	ucjob "jobboard/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	RecruiterID     string   `json:"recruiterId" validate:"required,uuid"`
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Location        string   `json:"location"`
	Skills          []string `json:"skills" validate:"required,min=1,dive,required"`
	SalaryRange     string   `json:"salaryRange"`
	Deadline        string   `json:"deadline" validate:"required,datetime=2006-01-02"`
	JobLocationType string   `json:"jobLocationType"`
}

// updateJobRequest whitelists mutable fields; the owner cannot be reassigned.
type updateJobRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Location        *string   `json:"location"`
	Skills          *[]string `json:"skills" validate:"omitnil,min=1,dive,required"`
	SalaryRange     *string   `json:"salaryRange"`
	Deadline        *string   `json:"deadline" validate:"omitnil,datetime=2006-01-02"`
	JobLocationType *string   `json:"jobLocationType"`
	Status          *string   `json:"status"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	recruiterID, err := uuid.Parse(req.RecruiterID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid recruiter ID", nil, err)
	}
	deadline, err := time.Parse(dto.DateLayout, req.Deadline)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid deadline", nil, err)
	}

	l, err := h.uc.Create(c.Context(), ucjob.CreateInput{
		RecruiterID:  recruiterID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Skills:       req.Skills,
		SalaryRange:  req.SalaryRange,
		Deadline:     deadline,
		LocationType: req.JobLocationType,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Created(c, "Job posted successfully", dto.NewJobResponse(l))
}

// List serves GET /jobs with optional search, location, salaryMin, salaryMax
// and status query parameters.
func (h *JobHandler) List(c fiber.Ctx) error {
	p, err := listParamsFromQuery(c)
	if err != nil {
		return err
	}
	list, err := h.uc.List(c.Context(), p)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.OK(c, "All jobs", dto.NewJobListResponse(list))
}

func (h *JobHandler) ListByRecruiter(c fiber.Ctx) error {
	recruiterID, err := uuidParam(c, "recruiterId", "recruiter")
	if err != nil {
		return err
	}
	p, err := listParamsFromQuery(c)
	if err != nil {
		return err
	}
	p.RecruiterID = &recruiterID

	list, err := h.uc.List(c.Context(), p)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.OK(c, "Jobs by recruiter", dto.NewJobListResponse(list))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "jobId", "job")
	if err != nil {
		return err
	}
	l, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.OK(c, "Job found", dto.NewJobResponse(l))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := uuidParam(c, "jobId", "job")
	if err != nil {
		return err
	}
	var req updateJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	in := ucjob.UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Skills:       req.Skills,
		SalaryRange:  req.SalaryRange,
		LocationType: req.JobLocationType,
		Status:       req.Status,
	}
	if req.Deadline != nil {
		d, err := time.Parse(dto.DateLayout, *req.Deadline)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid deadline", nil, err)
		}
		in.Deadline = &d
	}

	l, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.OK(c, "Job updated successfully", dto.NewJobResponse(l))
}

func (h *JobHandler) Close(c fiber.Ctx) error {
	id, err := uuidParam(c, "jobId", "job")
	if err != nil {
		return err
	}
	l, err := h.uc.Close(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.OK(c, "Job closed successfully", dto.NewJobResponse(l))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "jobId", "job")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.OK(c, "Job deleted successfully", nil)
}

func listParamsFromQuery(c fiber.Ctx) (ucjob.ListParams, error) {
	p := ucjob.ListParams{
		Filter: catalog.Filter{
			Search:    c.Query("search"),
			Location:  c.Query("location"),
			SalaryMin: c.Query("salaryMin"),
			SalaryMax: c.Query("salaryMax"),
		},
	}
	if raw := c.Query("status"); raw != "" {
		st, ok := job.ParseStatus(raw)
		if !ok {
			return ucjob.ListParams{}, middleware.NewAppError(fiber.StatusBadRequest, "Invalid status filter", nil, nil)
		}
		p.Status = &st
	}
	return p, nil
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucjob.ErrInvalidRecruiter):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid recruiter ID", nil, err)
	case errors.Is(err, ucjob.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, ucjob.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return internalError(err)
	}
}

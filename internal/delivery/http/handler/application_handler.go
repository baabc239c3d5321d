package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
	ucapplication "jobboard/internal/usecase/application"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	CandidateID string `json:"candidateId" validate:"required,uuid"`
	ResumeURL   string `json:"resumeUrl" validate:"required"`
	CoverLetter string `json:"coverLetter"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	jobID, err := uuidParam(c, "jobId", "job")
	if err != nil {
		return err
	}
	var req applyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate ID", nil, err)
	}

	a, err := h.uc.Apply(c.Context(), ucapplication.ApplyInput{
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Created(c, "Application submitted successfully", dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	jobID, err := uuidParam(c, "jobId", "job")
	if err != nil {
		return err
	}
	list, err := h.uc.ListByJob(c.Context(), jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.OK(c, "Applications for job", dto.NewApplicationListResponse(list))
}

func (h *ApplicationHandler) ListByCandidate(c fiber.Ctx) error {
	userID, err := uuidParam(c, "userId", "user")
	if err != nil {
		return err
	}
	list, err := h.uc.ListByCandidate(c.Context(), userID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.OK(c, "Applications by candidate", dto.NewApplicationListResponse(list))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuidParam(c, "applicationId", "application")
	if err != nil {
		return err
	}
	var req updateApplicationStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	a, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.OK(c, "Application updated successfully", dto.NewApplicationResponse(a))
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucapplication.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, ucapplication.ErrInvalidCandidate):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate ID", nil, err)
	case errors.Is(err, ucapplication.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, ucapplication.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, ucapplication.ErrJobClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Job is closed", nil, err)
	case errors.Is(err, ucapplication.ErrDuplicate):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	default:
		return internalError(err)
	}
}

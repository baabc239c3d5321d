package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
	ucaccount "jobboard/internal/usecase/account"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.AccountUsecase
}

// updateUserRequest has no role field: role is fixed at registration and an
// attempt to send one is rejected by the strict decoder.
type updateUserRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitnil,email"`
	Password    *string `json:"password"`
	CompanyName *string `json:"companyName"`
}

func NewUserHandler(uc usecase.AccountUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) List(c fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return mapAccountUsecaseError(err)
	}
	return response.OK(c, "All users", dto.NewAccountListResponse(list))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId", "user")
	if err != nil {
		return err
	}
	a, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapAccountUsecaseError(err)
	}
	return response.OK(c, "User found", dto.NewAccountResponse(a))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId", "user")
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.Update(c.Context(), id, ucaccount.UpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return mapAccountUsecaseError(err)
	}
	return response.OK(c, "User updated successfully", dto.NewAccountResponse(a))
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := uuidParam(c, "userId", "user")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapAccountUsecaseError(err)
	}
	return response.OK(c, "User deleted successfully", nil)
}

func mapAccountUsecaseError(err error) error {
	switch {
	case errors.Is(err, ucaccount.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	case errors.Is(err, ucaccount.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucaccount.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid password", nil, err)
	case errors.Is(err, ucaccount.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return internalError(err)
	}
}

package handler

import (
	"errors"
	"strings"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"
	ucaccount "jobboard/internal/usecase/account"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required"`
	CompanyName string `json:"companyName"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register answers 201 for a new account and 200 with the stored account when
// the email is already registered.
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, existed, err := h.uc.Register(c.Context(), ucaccount.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return mapAccountUsecaseError(err)
	}

	if existed {
		return response.OK(c, "User already exists", sessionResponse(sess))
	}
	return response.Created(c, "User created successfully", sessionResponse(sess))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	sess, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapAccountUsecaseError(err)
	}
	return response.OK(c, "Login successful", sessionResponse(sess))
}

// Refresh accepts the refresh token in the body or as a bearer header.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get(fiber.HeaderAuthorization))
	if !ok && len(c.Body()) > 0 {
		var req refreshRequest
		if err := bindBody(c, &req); err != nil {
			return err
		}
		tok = strings.TrimSpace(req.RefreshToken)
	}
	if tok == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sess, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRefreshTokenExpired):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
		case errors.Is(err, usecase.ErrInvalidRefreshToken):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
		case errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		default:
			return internalError(err)
		}
	}
	return response.OK(c, "Token refreshed", sessionResponse(sess))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	id, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	a, err := h.uc.Me(c.Context(), id)
	if err != nil {
		return mapAccountUsecaseError(err)
	}
	return response.OK(c, "User found", dto.NewAccountResponse(a))
}

func sessionResponse(s usecase.Session) dto.SessionResponse {
	return dto.SessionResponse{
		User:         dto.NewAccountResponse(s.Account),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}

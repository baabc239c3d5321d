package dto

import (
	"time"

	"jobboard/internal/domain/account"

	"github.com/google/uuid"
)

// AccountResponse never carries the password or its hash.
type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewAccountResponse(a account.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Role:        string(a.Role),
		CompanyName: a.CompanyName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewAccountListResponse(list []account.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewAccountResponse(a))
	}
	return out
}

// SessionResponse is returned by register, login and refresh.
type SessionResponse struct {
	User         AccountResponse `json:"user"`
	AccessToken  string          `json:"accessToken,omitempty"`
	RefreshToken string          `json:"refreshToken,omitempty"`
}

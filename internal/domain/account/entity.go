package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

// ParseRole accepts role names case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCandidate:
		return RoleCandidate, true
	case RoleRecruiter:
		return RoleRecruiter, true
	default:
		return "", false
	}
}

type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CompanyName  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a Account) IsRecruiter() bool {
	return a.Role == RoleRecruiter
}

func (a Account) IsCandidate() bool {
	return a.Role == RoleCandidate
}

// Sanitized returns a copy safe to hand to callers outside the account service.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}

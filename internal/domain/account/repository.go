package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, a Account) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	Update(ctx context.Context, a Account) (Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

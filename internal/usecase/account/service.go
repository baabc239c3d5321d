package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"jobboard/internal/domain/account"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrConflict     = errors.New("email already registered")
	ErrInternal     = errors.New("internal error")
)

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	CompanyName string
}

// UpdateInput carries the whitelisted mutable fields; nil leaves a field unchanged.
type UpdateInput struct {
	Name        *string
	Email       *string
	Password    *string
	CompanyName *string
}

// ListingInvalidator drops cached job listings built from account fields.
type ListingInvalidator interface {
	InvalidateListings(ctx context.Context)
}

type Service struct {
	accounts account.Repository
	listings ListingInvalidator
	logger   *slog.Logger
	hashCost int
}

func NewService(accounts account.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{accounts: accounts, logger: logger, hashCost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost, mostly so tests stay fast.
func (s *Service) WithHashCost(cost int) *Service {
	s.hashCost = cost
	return s
}

// WithListingInvalidator sets what is told to drop cached job listings after
// account updates and deletes.
func (s *Service) WithListingInvalidator(inv ListingInvalidator) *Service {
	s.listings = inv
	return s
}

// Register creates an account, or returns the account already registered under
// the email with existed set. The stored password is never compared here.
func (s *Service) Register(ctx context.Context, in RegisterInput) (account.Account, bool, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return account.Account{}, false, ErrInvalidInput
	}
	role, ok := account.ParseRole(in.Role)
	if !ok {
		return account.Account{}, false, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}

	existing, err := s.accounts.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return existing.Sanitized(), true, nil
	case !errors.Is(err, account.ErrNotFound):
		return account.Account{}, false, fmt.Errorf("%w: lookup email: %w", ErrInternal, err)
	}

	hash, err := s.hashPassword(in.Password)
	if err != nil {
		return account.Account{}, false, err
	}

	a := account.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if role == account.RoleRecruiter {
		a.CompanyName = strings.TrimSpace(in.CompanyName)
	}

	created, err := s.accounts.Create(ctx, a)
	if err != nil {
		if errors.Is(err, account.ErrEmailTaken) {
			// Lost a concurrent registration for the same email.
			winner, getErr := s.accounts.GetByEmail(ctx, email)
			if getErr == nil {
				return winner.Sanitized(), true, nil
			}
		}
		return account.Account{}, false, fmt.Errorf("%w: create account: %w", ErrInternal, err)
	}

	s.logger.InfoContext(ctx, "account registered", "account_id", created.ID, "role", created.Role)
	return created.Sanitized(), false, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (account.Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return account.Account{}, ErrInvalidInput
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrNotFound
		}
		return account.Account{}, fmt.Errorf("%w: lookup email: %w", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return account.Account{}, ErrUnauthorized
	}
	return a.Sanitized(), nil
}

func (s *Service) List(ctx context.Context) ([]account.Account, error) {
	list, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %w", ErrInternal, err)
	}
	for i := range list {
		list[i] = list[i].Sanitized()
	}
	return list, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.Account{}, s.mapRepoError(err)
	}
	return a.Sanitized(), nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (account.Account, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return account.Account{}, s.mapRepoError(err)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return account.Account{}, ErrInvalidInput
		}
		a.Name = name
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return account.Account{}, ErrInvalidInput
		}
		a.Email = email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return account.Account{}, ErrInvalidInput
		}
		hash, err := s.hashPassword(*in.Password)
		if err != nil {
			return account.Account{}, err
		}
		a.PasswordHash = hash
	}
	if in.CompanyName != nil && a.IsRecruiter() {
		a.CompanyName = strings.TrimSpace(*in.CompanyName)
	}

	updated, err := s.accounts.Update(ctx, a)
	if err != nil {
		return account.Account{}, s.mapRepoError(err)
	}
	s.invalidateListings(ctx)
	return updated.Sanitized(), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return s.mapRepoError(err)
	}
	s.invalidateListings(ctx)
	s.logger.InfoContext(ctx, "account deleted", "account_id", id)
	return nil
}

// Owned jobs cascade on delete and listings join the owner's names.
func (s *Service) invalidateListings(ctx context.Context) {
	if s.listings != nil {
		s.listings.InvalidateListings(ctx)
	}
}

func (s *Service) hashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: hash password: %w", ErrInternal, err)
	}
	return string(hash), nil
}

func (s *Service) mapRepoError(err error) error {
	switch {
	case errors.Is(err, account.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, account.ErrEmailTaken):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// Emails are matched exactly; only surrounding whitespace is dropped.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

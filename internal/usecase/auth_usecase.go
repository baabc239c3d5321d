package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/domain/account"
	"jobboard/internal/pkg/jwt"
	ucaccount "jobboard/internal/usecase/account"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

// Session is an account together with freshly issued tokens.
type Session struct {
	Account      account.Account
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucaccount.RegisterInput) (Session, bool, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Refresh(ctx context.Context, refreshToken string) (Session, error)
	Me(ctx context.Context, id uuid.UUID) (account.Account, error)
}

type Auth struct {
	accounts *ucaccount.Service
	jwt      jwt.Service
}

func NewAuthUsecase(accounts *ucaccount.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{accounts: accounts, jwt: jwtSvc}
}

// Register returns the account service's existed flag unchanged. For an
// existing email, tokens are issued only when the submitted password matches
// the stored one; otherwise the session carries the account alone.
func (u *Auth) Register(ctx context.Context, in ucaccount.RegisterInput) (Session, bool, error) {
	a, existed, err := u.accounts.Register(ctx, in)
	if err != nil {
		return Session{}, false, err
	}
	if existed {
		if _, err := u.accounts.Login(ctx, in.Email, in.Password); err != nil {
			if errors.Is(err, ucaccount.ErrUnauthorized) {
				return Session{Account: a}, true, nil
			}
			return Session{}, false, err
		}
	}
	sess, err := u.issue(a)
	if err != nil {
		return Session{}, false, err
	}
	return sess, existed, nil
}

func (u *Auth) Login(ctx context.Context, email, password string) (Session, error) {
	a, err := u.accounts.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	return u.issue(a)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	if refreshToken == "" {
		return Session{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, ErrRefreshTokenExpired
		}
		return Session{}, ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) || claims.TokenType != jwt.TokenTypeRefresh {
		return Session{}, ErrInvalidRefreshToken
	}

	a, err := u.accounts.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ucaccount.ErrNotFound) {
			return Session{}, ErrInvalidRefreshToken
		}
		return Session{}, err
	}
	return u.issue(a)
}

func (u *Auth) Me(ctx context.Context, id uuid.UUID) (account.Account, error) {
	if id == uuid.Nil {
		return account.Account{}, ErrUnauthorized
	}
	return u.accounts.GetByID(ctx, id)
}

func (u *Auth) issue(a account.Account) (Session, error) {
	pair, err := u.jwt.IssuePair(a.ID, a.Email, string(a.Role))
	if err != nil {
		return Session{}, fmt.Errorf("%w: sign tokens: %w", ErrInternal, err)
	}
	return Session{Account: a, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

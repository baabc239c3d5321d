package repository

import (
	"context"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/account"

	"github.com/google/uuid"
)

const accountColumns = `id, name, email, password_hash, role, company_name, created_at, updated_at`

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a account.Account) (account.Account, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO accounts (id, name, email, password_hash, role, company_name)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+accountColumns,
		a.ID, a.Name, a.Email, a.PasswordHash, string(a.Role), a.CompanyName,
	)
	created, err := scanAccount(row)
	if err != nil {
		if isUniqueViolation(err, "accounts_email_key") {
			return account.Account{}, account.ErrEmailTaken
		}
		return account.Account{}, err
	}
	return created, nil
}

func (r *PostgresAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, strings.TrimSpace(email))
	return scanAccount(row)
}

func (r *PostgresAccountRepository) List(ctx context.Context) ([]account.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]account.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresAccountRepository) Update(ctx context.Context, a account.Account) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE accounts
		 SET name = $2, email = $3, password_hash = $4, company_name = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+accountColumns,
		a.ID, a.Name, a.Email, a.PasswordHash, a.CompanyName,
	)
	updated, err := scanAccount(row)
	if err != nil {
		if isUniqueViolation(err, "accounts_email_key") {
			return account.Account{}, account.ErrEmailTaken
		}
		return account.Account{}, err
	}
	return updated, nil
}

func (r *PostgresAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return account.ErrNotFound
	}
	return nil
}

func scanAccount(row database.Row) (account.Account, error) {
	var a account.Account
	var role string
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &a.CompanyName, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if isNoRows(err) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	a.Role = account.Role(role)
	return a, nil
}

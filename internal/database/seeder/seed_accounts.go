package seeder

import (
	"context"
	"fmt"

	"jobboard/internal/database"
	"jobboard/internal/domain/account"

	"golang.org/x/crypto/bcrypt"
)

// AccountsSeeder creates one recruiter and one candidate sharing DemoPassword.
type AccountsSeeder struct {
	HashCost int
}

func (AccountsSeeder) Name() string { return "accounts" }

func (s AccountsSeeder) Run(ctx context.Context, db database.DB) error {
	cost := s.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name        string
		Email       string
		Role        account.Role
		CompanyName string
	}{
		{Name: "Riley Recruiter", Email: DemoRecruiterEmail, Role: account.RoleRecruiter, CompanyName: "Demo Corp"},
		{Name: "Casey Candidate", Email: DemoCandidateEmail, Role: account.RoleCandidate},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO accounts (id, name, email, password_hash, role, company_name)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
			 ON CONFLICT (email) DO NOTHING`,
			it.Name,
			it.Email,
			string(hash),
			string(it.Role),
			it.CompanyName,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"jobboard/internal/domain/account"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type errRow struct{ err error }

func (r errRow) Scan(_ ...any) error { return r.err }

func TestIsUniqueViolation(t *testing.T) {
	emailDup := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "accounts_email_key"}
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}

	assert.True(t, isUniqueViolation(emailDup, ""))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", emailDup), "accounts_email_key"))
	assert.False(t, isUniqueViolation(emailDup, "applications_job_candidate_key"))
	assert.False(t, isUniqueViolation(fk, ""))
	assert.False(t, isUniqueViolation(errors.New("boom"), ""))
}

func TestScan_NoRowsMapsToNotFound(t *testing.T) {
	for _, noRows := range []error{pgx.ErrNoRows, sql.ErrNoRows} {
		_, err := scanAccount(errRow{err: noRows})
		assert.ErrorIs(t, err, account.ErrNotFound)

		_, err = scanJob(errRow{err: noRows})
		assert.ErrorIs(t, err, job.ErrNotFound)

		_, err = scanListing(errRow{err: noRows})
		assert.ErrorIs(t, err, job.ErrNotFound)

		_, err = scanApplication(errRow{err: noRows})
		assert.ErrorIs(t, err, application.ErrNotFound)
	}
}

func TestScan_OtherErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := scanAccount(errRow{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, account.ErrNotFound)
}

package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"jobboard/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type execCall struct {
	query string
	args  []any
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.vals[i].(uuid.UUID)
		case *int:
			*p = r.vals[i].(int)
		}
	}
	return nil
}

type fakeDB struct {
	rows      []fakeRow
	execs     []execCall
	committed int
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.execs = append(f.execs, execCall{query: q, args: args})
	return 1, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row {
	if len(f.rows) == 0 {
		return fakeRow{err: errors.New("unexpected query")}
	}
	r := f.rows[0]
	f.rows = f.rows[1:]
	return r
}

func (f *fakeDB) Begin(context.Context) (database.Tx, error) { return fakeTx{db: f}, nil }

type fakeTx struct{ db *fakeDB }

func (t fakeTx) Exec(ctx context.Context, q string, args ...any) (int64, error) {
	return t.db.Exec(ctx, q, args...)
}
func (t fakeTx) Query(ctx context.Context, q string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, q, args...)
}
func (t fakeTx) QueryRow(ctx context.Context, q string, args ...any) database.Row {
	return t.db.QueryRow(ctx, q, args...)
}
func (t fakeTx) Commit(context.Context) error   { t.db.committed++; return nil }
func (t fakeTx) Rollback(context.Context) error { return nil }

func TestAccountsSeeder_InsertsBothRolesWithHashedPassword(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, AccountsSeeder{HashCost: bcrypt.MinCost}.Run(context.Background(), db))

	require.Len(t, db.execs, 2)
	assert.Equal(t, 1, db.committed)
	assert.Contains(t, db.execs[0].query, "ON CONFLICT (email) DO NOTHING")
	assert.Equal(t, DemoRecruiterEmail, db.execs[0].args[1])
	assert.Equal(t, "recruiter", db.execs[0].args[3])
	assert.Equal(t, "", db.execs[1].args[4], "candidates carry no company name")

	hash := db.execs[1].args[2].(string)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(DemoPassword)))
}

func TestJobsSeeder_PostsSampleJobs(t *testing.T) {
	recruiterID := uuid.New()
	db := &fakeDB{rows: []fakeRow{{vals: []any{recruiterID}}, {vals: []any{0}}}}
	s := JobsSeeder{
		RecruiterEmail: DemoRecruiterEmail,
		Now:            func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) },
	}

	require.NoError(t, s.Run(context.Background(), db))
	require.Len(t, db.execs, 3)

	first := db.execs[0].args
	assert.Equal(t, recruiterID, first[0])
	require.NotNil(t, first[7])
	assert.Equal(t, 110000, *first[7].(*int))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), first[9])

	last := db.execs[2].args
	assert.Nil(t, last[7].(*int), "unparseable salary stays unbounded")
	assert.Equal(t, "closed", last[10])
}

func TestJobsSeeder_SkipsWhenRecruiterHasJobs(t *testing.T) {
	db := &fakeDB{rows: []fakeRow{{vals: []any{uuid.New()}}, {vals: []any{2}}}}
	require.NoError(t, JobsSeeder{RecruiterEmail: DemoRecruiterEmail}.Run(context.Background(), db))
	assert.Empty(t, db.execs)
}

func TestJobsSeeder_MissingRecruiter(t *testing.T) {
	db := &fakeDB{rows: []fakeRow{{err: pgx.ErrNoRows}}}
	err := JobsSeeder{RecruiterEmail: "nobody@example.com"}.Run(context.Background(), db)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not seeded"))
}

type failingSeeder struct{}

func (failingSeeder) Name() string                          { return "broken" }
func (failingSeeder) Run(context.Context, database.DB) error { return errors.New("boom") }

func TestRunner_StopsAtFirstFailure(t *testing.T) {
	db := &fakeDB{}
	err := Runner{Seeders: []Seeder{failingSeeder{}, AccountsSeeder{HashCost: bcrypt.MinCost}}}.Run(context.Background(), db)
	require.Error(t, err)
	assert.Equal(t, "seed broken: boom", err.Error())
	assert.Empty(t, db.execs)

	assert.Error(t, Runner{}.Run(context.Background(), nil))
}

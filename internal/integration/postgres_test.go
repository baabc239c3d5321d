package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/routes"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/delivery/http/server"
	"jobboard/internal/domain/account"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	ucaccount "jobboard/internal/usecase/account"
	ucapplication "jobboard/internal/usecase/application"
	ucjob "jobboard/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestIntegration_RepositoriesRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()
	runMigrations(t, ctx, db)

	accounts := repository.NewPostgresAccountRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	apps := repository.NewPostgresApplicationRepository(db)

	suffix := uuid.NewString()[:8]
	recruiter, err := accounts.Create(ctx, account.Account{
		Name: "IT Recruiter", Email: "it-recruiter-" + suffix + "@example.com",
		PasswordHash: "x", Role: account.RoleRecruiter, CompanyName: "IT Co",
	})
	if err != nil {
		t.Fatalf("create recruiter: %v", err)
	}
	defer func() { _ = accounts.Delete(context.Background(), recruiter.ID) }()

	if _, err := accounts.Create(ctx, account.Account{
		Name: "Dup", Email: recruiter.Email, PasswordHash: "x", Role: account.RoleCandidate,
	}); !errors.Is(err, account.ErrEmailTaken) {
		t.Fatalf("duplicate email: expected ErrEmailTaken, got %v", err)
	}

	candidate, err := accounts.Create(ctx, account.Account{
		Name: "IT Candidate", Email: "it-candidate-" + suffix + "@example.com",
		PasswordHash: "x", Role: account.RoleCandidate,
	})
	if err != nil {
		t.Fatalf("create candidate: %v", err)
	}
	defer func() { _ = accounts.Delete(context.Background(), candidate.ID) }()

	j := job.Job{
		RecruiterID:  recruiter.ID,
		Title:        "Backend Engineer - IT",
		Description:  "d",
		Location:     "Remote",
		Skills:       []string{"go", "sql"},
		Deadline:     time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC),
		LocationType: job.LocationRemote,
		Status:       job.StatusActive,
	}
	j.SetSalaryRange("70000 - 100000")
	created, err := jobs.Create(ctx, j)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	l, err := jobs.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if l.CompanyName != "IT Co" || l.RecruiterName != "IT Recruiter" {
		t.Fatalf("get job: expected owner join, got company=%q recruiter=%q", l.CompanyName, l.RecruiterName)
	}
	if l.SalaryMin == nil || *l.SalaryMin != 70000 || len(l.Skills) != 2 {
		t.Fatalf("get job: unexpected salary/skills %+v", l.Job)
	}

	rid := recruiter.ID
	owned, err := jobs.List(ctx, job.ListFilter{RecruiterID: &rid})
	if err != nil || len(owned) != 1 {
		t.Fatalf("list by recruiter: expected 1 job, got %d (err=%v)", len(owned), err)
	}

	a, err := apps.Create(ctx, application.Application{
		JobID: created.ID, CandidateID: candidate.ID, ResumeURL: "https://cv.example/it.pdf", Status: application.StatusApplied,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := apps.Create(ctx, application.Application{
		JobID: created.ID, CandidateID: candidate.ID, ResumeURL: "https://cv.example/it.pdf", Status: application.StatusApplied,
	}); !errors.Is(err, application.ErrDuplicate) {
		t.Fatalf("duplicate apply: expected ErrDuplicate, got %v", err)
	}

	closed, err := jobs.SetStatus(ctx, created.ID, job.StatusClosed)
	if err != nil || closed.Status != job.StatusClosed {
		t.Fatalf("close job: status=%q err=%v", closed.Status, err)
	}

	if err := accounts.Delete(ctx, recruiter.ID); err != nil {
		t.Fatalf("delete recruiter: %v", err)
	}
	if _, err := jobs.GetByID(ctx, created.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("cascade: expected job removed, got %v", err)
	}
	if _, err := apps.GetByID(ctx, a.ID); !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("cascade: expected application removed, got %v", err)
	}
}

func TestIntegration_HTTPWithSeedAndCache(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()
	runMigrations(t, ctx, db)

	r := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.AccountsSeeder{HashCost: bcrypt.MinCost},
		seeder.JobsSeeder{RecruiterEmail: seeder.DemoRecruiterEmail},
	}}
	if err := r.Run(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := r.Run(ctx, db); err != nil {
		t.Fatalf("seed twice: %v", err)
	}

	redisCache := cache.NewRedis(ctx, config.RedisConfig{
		Enabled: os.Getenv("JOBBOARD_TEST_REDIS_ADDR") != "",
		Addr:    os.Getenv("JOBBOARD_TEST_REDIS_ADDR"),
		TTL:     time.Minute,
	}, nil)
	defer func() { _ = redisCache.Close() }()

	app := newTestFiberApp(db, redisCache)

	sr := doJSON(t, app, "POST", "/api/v1/users/login", map[string]string{
		"email": seeder.DemoRecruiterEmail, "password": seeder.DemoPassword,
	})
	if sr.Status != 200 || sr.Message != "Login successful" {
		t.Fatalf("login: status=%d message=%s", sr.Status, sr.Message)
	}

	for range 2 {
		sr = doJSON(t, app, "GET", "/api/v1/jobs?search=demo%20corp", nil)
		if sr.Status != 200 {
			t.Fatalf("list jobs: status=%d message=%s", sr.Status, sr.Message)
		}
		var items []map[string]any
		if err := json.Unmarshal(sr.Data, &items); err != nil {
			t.Fatalf("list jobs decode: %v", err)
		}
		if len(items) < 3 {
			t.Fatalf("list jobs: expected seeded jobs, got %d", len(items))
		}
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("JOBBOARD_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBBOARD_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}, nil)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	if err := migration.Default(nil).Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func newTestFiberApp(db database.DB, c *cache.Redis) *fiber.App {
	accountRepo := repository.NewPostgresAccountRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	accounts := ucaccount.NewService(accountRepo, nil).WithHashCost(bcrypt.MinCost)
	jobs := ucjob.NewService(ucjob.Options{Jobs: jobRepo, Accounts: accountRepo, Cache: c, CacheTTL: time.Minute})
	accounts.WithListingInvalidator(jobs)
	apps := ucapplication.NewService(repository.NewPostgresApplicationRepository(db), jobRepo, accountRepo, nil)
	jwtSvc := jwt.NewHMACService("it-access", "it-refresh", 15*time.Minute, time.Hour)

	app := server.New("jobboard-it", nil)
	routes.NewRegistry(handler.NewHealthHandler(db), v1.Handlers{
		Auth:         handler.NewAuthHandler(usecase.NewAuthUsecase(accounts, jwtSvc)),
		Users:        handler.NewUserHandler(accounts),
		Jobs:         handler.NewJobHandler(jobs),
		Applications: handler.NewApplicationHandler(apps),
	}).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) semanticResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s decode: %v", method, path, err)
	}
	return sr
}

func stringsOrDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return strings.TrimSpace(def)
}

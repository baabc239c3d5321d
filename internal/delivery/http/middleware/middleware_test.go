package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(logs *bytes.Buffer) *fiber.App {
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(logger).Middleware())
	app.Use(NewErrorMiddleware(logger).Middleware())
	return app
}

func get(t *testing.T, app *fiber.App, path string, header ...string) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b), resp.Header.Get(HeaderRequestID)
}

func TestErrorMiddleware_RedactsServerErrors(t *testing.T) {
	var logs bytes.Buffer
	app := newApp(&logs)
	app.Get("/fail", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "pool exhausted", nil, errors.New("dial tcp: refused"))
	})

	status, body, rid := get(t, app, "/fail", HeaderRequestID, "req-123")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.JSONEq(t, `{"status":500,"message":"internal server error","data":null}`, body)
	assert.Equal(t, "req-123", rid)

	assert.Contains(t, logs.String(), "dial tcp: refused")
	assert.Contains(t, logs.String(), `"request_id":"req-123"`)
}

func TestErrorMiddleware_ClientErrorsKeepMessageAndData(t *testing.T) {
	var logs bytes.Buffer
	app := newApp(&logs)
	app.Get("/bad", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "", fiber.Map{"field": "email"}, nil)
	})
	app.Get("/gone", func(c fiber.Ctx) error { return fiber.ErrNotFound })

	status, body, rid := get(t, app, "/bad")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.JSONEq(t, `{"status":409,"message":"conflict","data":{"field":"email"}}`, body)
	_, err := uuid.Parse(rid)
	assert.NoError(t, err, "request id generated when absent")

	status, _, _ = get(t, app, "/gone")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.NotContains(t, logs.String(), "request failed")
}

func TestErrorMiddleware_RecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	app := newApp(&logs)
	app.Get("/panic", func(c fiber.Ctx) error { panic("nil map write") })

	status, body, _ := get(t, app, "/panic")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotContains(t, body, "nil map write")
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("access", "refresh", time.Minute, time.Hour)
	id := uuid.New()
	access, err := svc.GenerateAccessToken(id, "rita@corp.example", "recruiter")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(id)
	require.NoError(t, err)

	var logs bytes.Buffer
	app := newApp(&logs)
	app.Get("/me", NewAuthMiddleware(svc).Middleware(), func(c fiber.Ctx) error {
		uid, ok := UserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		return c.SendString(uid.String() + " " + c.Locals(CtxRoleKey).(string))
	})

	status, body, _ := get(t, app, "/me", fiber.HeaderAuthorization, "Bearer "+access)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, id.String()+" recruiter", body)

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer " + refresh, "Bearer not.a.jwt"} {
		status, _, _ = get(t, app, "/me", fiber.HeaderAuthorization, h)
		assert.Equal(t, fiber.StatusUnauthorized, status, "header %q", h)
	}
}

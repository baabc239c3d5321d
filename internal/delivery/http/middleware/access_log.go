package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id"
)

type AccessLogMiddleware struct {
	logger *slog.Logger
}

func NewAccessLogMiddleware(logger *slog.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}

		m.logger.LogAttrs(c.Context(), level, "http access",
			slog.String("request_id", rid),
			slog.String("ip", c.IP()),
			slog.String("method", c.Method()),
			slog.String("path", c.OriginalURL()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("req_bytes", c.Request().Header.ContentLength()),
			slog.Int("resp_bytes", len(c.Response().Body())),
			slog.String("ua", c.Get(fiber.HeaderUserAgent)),
		)

		return err
	}
}

// RequestID returns the id assigned by the access log middleware, if any.
func RequestID(c fiber.Ctx) string {
	rid, _ := c.Locals(CtxRequestIDKey).(string)
	return rid
}

package server

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/validate"

	"github.com/gofiber/fiber/v3"
)

// New builds the Fiber app with the global middleware chain: access log
// first, then error rendering. Routes are registered by the caller.
func New(appName string, logger *slog.Logger) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}

	f := fiber.New(fiber.Config{
		AppName:         appName,
		StructValidator: validate.New(),
		JSONDecoder:     strictJSONDecode,
	})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	return f
}

// strictJSONDecode rejects unknown fields.
func strictJSONDecode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

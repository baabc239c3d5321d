package handler

import (
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/validate"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// bindBody decodes and validates the JSON body into out.
func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		if fields, ok := validate.FieldErrors(err); ok {
			return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return nil
}

// uuidParam parses a path parameter, answering 400 "Invalid <label> ID" when malformed.
func uuidParam(c fiber.Ctx, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+label+" ID", nil, err)
	}
	return id, nil
}

func internalError(err error) error {
	return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ghayaruae/crm-server/internal/auth"
	"github.com/ghayaruae/crm-server/internal/database"
	"github.com/ghayaruae/crm-server/internal/http/middleware"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_INPUT", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		Success:   false,
		Message:   message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// classify maps an error onto the response status policy.
func classify(err error) (status int, code, message string) {
	var (
		fe *fiber.Error
		ie *service.InputError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code, codeFor(fe.Code), fe.Message
	case errors.As(err, &ie):
		return fiber.StatusBadRequest, "INVALID_INPUT", ie.Error()
	case errors.Is(err, pagination.ErrInvalidParams):
		return fiber.StatusBadRequest, "INVALID_PAGINATION", err.Error()
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error()
	case errors.Is(err, auth.ErrInvalidToken):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error()
	case database.IsUnavailable(err):
		return fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "database temporarily unavailable"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	case fiber.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// fail writes err as an error response. Server side failures are logged with
// the request logger and answered with a generic message.
func fail(c *fiber.Ctx, err error) error {
	status, code, message := classify(err)
	if status >= fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().
			Err(err).
			Str("event", "request_failed").
			Str("path", c.Path()).
			Int("status", status).
			Send()
	}
	if errors.Is(err, pagination.ErrInvalidParams) {
		pagination.RecordError("validation")
	}
	return writeError(c, status, code, message)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return fail(c, err)
	}
}

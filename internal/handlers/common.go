package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tillslip/internal/apperr"
)

// currentUserID reads the authenticated user id the JWT middleware stored
// on the request context. The identity boundary is trusted past that
// middleware, so an empty id only happens on miswired routes.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

// statusForError maps the error taxonomy onto HTTP statuses. Anything
// unclassified, including persistence failures, becomes a generic 500 so
// no internal state leaks to the caller.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// errorBody builds the structured error object returned on failures. For
// server errors the underlying detail is replaced by a generic message.
func errorBody(message string, err error) fiber.Map {
	detail := err.Error()
	if statusForError(err) == fiber.StatusInternalServerError {
		detail = "internal server error"
	}
	return fiber.Map{
		"message": message,
		"error":   detail,
	}
}

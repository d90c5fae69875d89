package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"orderdesk/internal/apperrors"
	"orderdesk/internal/repositories"
)

// writeError maps the error taxonomy onto HTTP responses: validation failures
// are 400, missing orders 404, everything touching the store 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request",
			"details": err.Error(),
			"code":    "VALIDATION_ERROR",
		})
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not found",
			"details": err.Error(),
			"code":    "NOT_FOUND",
		})
	case apperrors.IsStore(err):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Store operation failed",
			"details": err.Error(),
			"code":    "STORE_ERROR",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal error",
			"details": err.Error(),
			"code":    "INTERNAL_ERROR",
		})
	}
}

package controllers

import (
	"errors"
	"strings"

	"github.com/AKM-dv/servicemate/internal/pkg/invoicing"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// sanitizeString trims a value and collapses blank input to nil, keeping
// empty strings out of the store.
func sanitizeString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the invoicing error taxonomy onto HTTP statuses. A
// numbering/payment uniqueness conflict is retryable and reported as 409.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, invoicing.ErrValidation):
		return errorJSON(c, fiber.StatusBadRequest, trimServiceError(err))
	case errors.Is(err, invoicing.ErrNotFound):
		return errorJSON(c, fiber.StatusBadRequest, trimServiceError(err))
	case errors.Is(err, invoicing.ErrNumberConflict):
		return errorJSON(c, fiber.StatusConflict, "Invoice number conflict, please retry")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errorJSON(c, fiber.StatusConflict, "Duplicate record, please retry")
	default:
		return errorJSON(c, fiber.StatusInternalServerError, "Internal error")
	}
}

func trimServiceError(err error) string {
	return strings.TrimSpace(err.Error())
}

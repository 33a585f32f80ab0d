package controllers

import (
	"strings"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type loginRequest struct {
	Pin string `json:"pin"`
}

// HandleLogin authenticates the operator by 6-digit PIN and issues an
// opaque session token.
func HandleLogin(c *fiber.Ctx) error {
	var payload loginRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	pin := strings.TrimSpace(payload.Pin)
	if len(pin) != models.PinLength || !isNumeric(pin) {
		return errorJSON(c, fiber.StatusBadRequest, "Valid 6-digit pin required")
	}

	var user models.User
	if err := database.GetDB().Order("id ASC").First(&user).Error; err != nil {
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid pin")
	}
	if user.PinHash == "" || !models.CheckSecretHash(pin, user.PinHash) {
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid pin")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"session": uuid.NewString(),
	})
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

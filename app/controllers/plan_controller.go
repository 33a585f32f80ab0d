package controllers

import (
	"encoding/json"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/catalog"
	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
	"github.com/gofiber/fiber/v2"
)

// HandleListPlans returns the active plan catalog, seeding the default plan
// on an empty store.
func HandleListPlans(c *fiber.Ctx) error {
	plans, err := catalog.NewService(database.GetDB()).ListActive()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plans)
}

type planPayload struct {
	Name     string             `json:"name"`
	Price    json.Number        `json:"price"`
	Features models.FeatureList `json:"features"`
}

type updatePlansRequest struct {
	Plans []planPayload `json:"plans"`
}

// HandleUpdatePlans replaces the single active plan. Omitted fields fall
// back to the defaults.
func HandleUpdatePlans(c *fiber.Ctx) error {
	var payload updatePlansRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var plan planPayload
	if len(payload.Plans) > 0 {
		plan = payload.Plans[0]
	}

	price := models.DefaultPlanPrice()
	if plan.Price != "" {
		parsed, err := money.FromString(plan.Price.String())
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Invalid plan price")
		}
		price = parsed
	}

	if _, err := catalog.NewService(database.GetDB()).ReplaceActive(plan.Name, price, plan.Features); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Plan updated"})
}

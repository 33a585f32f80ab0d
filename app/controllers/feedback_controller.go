package controllers

import (
	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/gofiber/fiber/v2"
)

// HandleListFeedback lists feedback tickets newest-first, optionally filtered
// by status.
func HandleListFeedback(c *fiber.Ctx) error {
	query := database.GetDB().Model(&models.AdminFeedback{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var entries []models.AdminFeedback
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entries)
}

type createFeedbackRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category"`
}

func HandleCreateFeedback(c *fiber.Ctx) error {
	var payload createFeedbackRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Title and body required")
	}

	category := payload.Category
	if category == "" {
		category = models.FeedbackCategorySuggestion
	}
	if !models.IsValidFeedbackCategory(category) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid category")
	}

	entry := models.AdminFeedback{
		Title:    payload.Title,
		Body:     payload.Body,
		Category: category,
		Status:   models.FeedbackStatusOpen,
	}
	if err := database.GetDB().Create(&entry).Error; err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

type updateFeedbackRequest struct {
	Status string `json:"status" validate:"required"`
}

func HandleUpdateFeedback(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid feedback id")
	}

	var payload updateFeedbackRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !models.IsValidFeedbackStatus(payload.Status) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid status")
	}

	db := database.GetDB()
	var entry models.AdminFeedback
	if err := db.First(&entry, id).Error; err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Feedback not found")
	}
	if err := db.Model(&entry).Update("status", payload.Status).Error; err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entry)
}

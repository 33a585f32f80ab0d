package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/AKM-dv/servicemate/internal/pkg/documents"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/gofiber/fiber/v2"
)

type leadResponse struct {
	models.Lead
	PreferredPlanName *string `json:"preferred_plan_name"`
}

func toLeadResponse(lead models.Lead) leadResponse {
	resp := leadResponse{Lead: lead}
	if lead.PreferredPlan != nil {
		resp.PreferredPlanName = &lead.PreferredPlan.Name
	}
	return resp
}

// HandleListLeads lists leads with optional status, free-text and creation
// date range filters.
func HandleListLeads(c *fiber.Ctx) error {
	query := database.GetDB().Model(&models.Lead{}).Preload("PreferredPlan")

	if statusParam := c.Query("status"); statusParam != "" {
		var statuses []string
		for _, s := range strings.Split(statusParam, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				statuses = append(statuses, trimmed)
			}
		}
		if len(statuses) > 0 {
			query = query.Where("status IN ?", statuses)
		}
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"(name LIKE ? OR email LIKE ? OR phone LIKE ? OR brand_name LIKE ?)",
			like, like, like, like,
		)
	}
	if from := c.Query("created_from"); from != "" {
		query = query.Where("DATE(created_at) >= ?", from)
	}
	if to := c.Query("created_to"); to != "" {
		query = query.Where("DATE(created_at) <= ?", to)
	}

	var leads []models.Lead
	if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
		return serviceError(c, err)
	}

	responses := make([]leadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, toLeadResponse(lead))
	}
	return c.JSON(responses)
}

type createLeadRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone" validate:"required"`
	Address         *string `json:"address"`
	BrandName       *string `json:"brand_name"`
	Status          string  `json:"status"`
	PreferredPlanID *uint   `json:"preferred_plan_id"`
}

// HandleCreateLead registers a new lead. Phone is the one required field.
func HandleCreateLead(c *fiber.Ctx) error {
	var payload createLeadRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	payload.Phone = sanitizeString(payload.Phone)
	if err := validate.Struct(payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Phone number required")
	}

	status := payload.Status
	if status == "" {
		status = models.LeadStatusNew
	}
	if !models.IsValidLeadStatus(status) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid status")
	}

	lead := models.Lead{
		Name:            sanitizeString(payload.Name),
		Email:           sanitizeString(payload.Email),
		Phone:           *payload.Phone,
		Address:         sanitizeString(payload.Address),
		BrandName:       sanitizeString(payload.BrandName),
		Status:          status,
		PreferredPlanID: payload.PreferredPlanID,
	}
	if err := database.GetDB().Create(&lead).Error; err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLeadResponse(lead))
}

// HandleGetLead returns one lead with its followup history and invoices.
func HandleGetLead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	db := database.GetDB()
	var lead models.Lead
	if err := db.Preload("PreferredPlan").First(&lead, id).Error; err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Lead not found")
	}

	var followups []models.LeadFollowup
	if err := db.Where("lead_id = ?", lead.ID).Order("created_at DESC").Find(&followups).Error; err != nil {
		return serviceError(c, err)
	}

	var invoices []models.Invoice
	if err := db.Where("lead_id = ?", lead.ID).Order("generated_at DESC").Find(&invoices).Error; err != nil {
		return serviceError(c, err)
	}
	invoiceSummaries := make([]fiber.Map, 0, len(invoices))
	for _, inv := range invoices {
		invoiceSummaries = append(invoiceSummaries, fiber.Map{
			"id":             inv.ID,
			"invoice_number": inv.InvoiceNumber,
			"total":          inv.Total,
			"generated_at":   timeutil.FormatISO(inv.GeneratedAt),
			"pdf_url":        documents.AbsoluteURL(c, inv.PDFURL),
		})
	}

	return c.JSON(fiber.Map{
		"lead":      toLeadResponse(lead),
		"followups": followups,
		"invoices":  invoiceSummaries,
	})
}

// HandleUpdateLead applies a partial update; only fields present in the
// payload change. Converting a lead stamps converted_on.
func HandleUpdateLead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.GetDB()
	var lead models.Lead
	if err := db.First(&lead, id).Error; err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Lead not found")
	}

	updates, err := leadUpdates(payload)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	if err := db.Model(&lead).Updates(updates).Error; err != nil {
		return serviceError(c, err)
	}

	if err := db.Preload("PreferredPlan").First(&lead, id).Error; err != nil {
		return serviceError(c, err)
	}
	return c.JSON(toLeadResponse(lead))
}

type createFollowupRequest struct {
	Status             string  `json:"status"`
	Note               *string `json:"note"`
	Objective          *string `json:"objective"`
	FollowUpDate       *string `json:"follow_up_date"`
	NextFollowUp       *string `json:"next_follow_up"`
	FutureFollowUpNote *string `json:"future_follow_up_note"`
}

// HandleAddFollowup appends a followup entry to a lead's history. Terminal
// statuses clear any planned next follow-up.
func HandleAddFollowup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	var payload createFollowupRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	status := payload.Status
	if status == "" {
		status = models.FollowupStatusNew
	}
	if !models.IsValidFollowupStatus(status) {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid status")
	}

	db := database.GetDB()
	var lead models.Lead
	if err := db.First(&lead, id).Error; err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Lead not found")
	}

	followUpDate := timeutil.Now()
	if payload.FollowUpDate != nil && *payload.FollowUpDate != "" {
		if parsed, err := timeutil.ParseCivil(*payload.FollowUpDate); err == nil {
			followUpDate = parsed
		}
	}

	var nextFollowUp *time.Time
	futureNote := sanitizeString(payload.FutureFollowUpNote)
	if models.IsTerminalFollowupStatus(status) {
		nextFollowUp = nil
		futureNote = nil
	} else if payload.NextFollowUp != nil && *payload.NextFollowUp != "" {
		if parsed, err := timeutil.ParseCivil(*payload.NextFollowUp); err == nil {
			nextFollowUp = &parsed
		}
	}

	followup := models.LeadFollowup{
		LeadID:             lead.ID,
		Status:             status,
		FollowUpDate:       &followUpDate,
		Objective:          sanitizeString(payload.Objective),
		NextFollowUp:       nextFollowUp,
		FutureFollowUpNote: futureNote,
		Note:               sanitizeString(payload.Note),
	}
	if err := db.Create(&followup).Error; err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(followup)
}

// leadUpdates builds the column update map from a partial JSON payload.
// Only keys present in the payload change. Values of the wrong JSON type
// are rejected, never coerced or dereferenced.
func leadUpdates(payload map[string]interface{}) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if raw, ok := payload["name"]; ok {
		updates["name"] = sanitizeString(stringValue(raw))
	}
	if raw, ok := payload["email"]; ok {
		updates["email"] = sanitizeString(stringValue(raw))
	}
	if raw, ok := payload["phone"]; ok {
		phone := sanitizeString(stringValue(raw))
		if phone == nil {
			return nil, errors.New("Phone number cannot be empty")
		}
		updates["phone"] = *phone
	}
	if raw, ok := payload["address"]; ok {
		updates["address"] = sanitizeString(stringValue(raw))
	}
	if raw, ok := payload["brand_name"]; ok {
		updates["brand_name"] = sanitizeString(stringValue(raw))
	}
	if raw, ok := payload["preferred_plan_id"]; ok {
		updates["preferred_plan_id"] = uintValue(raw)
	}

	if raw, ok := payload["status"]; ok && raw != nil {
		status := stringValue(raw)
		if status == nil || !models.IsValidLeadStatus(*status) {
			return nil, errors.New("Invalid status")
		}
		updates["status"] = *status

		if *status == models.LeadStatusConverted {
			convertedOn := timeutil.Now()
			if raw, ok := payload["converted_on"]; ok {
				if s := stringValue(raw); s != nil {
					if parsed, err := timeutil.ParseCivil(*s); err == nil {
						convertedOn = parsed
					}
				}
			}
			updates["converted_on"] = convertedOn
		}
	}

	if len(updates) == 0 {
		return nil, errors.New("Nothing to update")
	}
	return updates, nil
}

func stringValue(raw interface{}) *string {
	if s, ok := raw.(string); ok {
		return &s
	}
	return nil
}

func uintValue(raw interface{}) *uint {
	if f, ok := raw.(float64); ok && f > 0 {
		v := uint(f)
		return &v
	}
	return nil
}

package controllers

import (
	"encoding/json"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/AKM-dv/servicemate/internal/pkg/invoicing"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/gofiber/fiber/v2"
)

type recordPaymentRequest struct {
	BillingMonth  string      `json:"billing_month"`
	Amount        json.Number `json:"amount"`
	PaidOn        *string     `json:"paid_on"`
	PaymentMethod *string     `json:"payment_method"`
	Note          *string     `json:"note"`
	InvoiceID     *uint       `json:"invoice_id"`
}

// HandleRecordPayment records or replaces the payment for a client's billing
// month. One row exists per lead and month; posting again overwrites it.
func HandleRecordPayment(c *fiber.Ctx) error {
	leadID, err := c.ParamsInt("id")
	if err != nil || leadID <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid lead id")
	}

	var payload recordPaymentRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input := invoicing.RecordPaymentInput{
		LeadID:        uint(leadID),
		BillingMonth:  payload.BillingMonth,
		PaidOn:        sanitizeString(payload.PaidOn),
		PaymentMethod: sanitizeString(payload.PaymentMethod),
		Note:          sanitizeString(payload.Note),
		InvoiceID:     payload.InvoiceID,
	}
	if payload.Amount != "" {
		amount, err := money.FromString(payload.Amount.String())
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Invalid amount")
		}
		input.Amount = &amount
	}

	svc := invoicing.NewServiceFromDB(database.GetDB())
	payment, err := svc.RecordPayment(input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPaymentResponse(payment))
}

type paymentResponse struct {
	models.LeadPayment
	BillingMonth *string `json:"billing_month"`
	PaidOn       *string `json:"paid_on"`
}

// toPaymentResponse renders both date columns as plain YYYY-MM-DD in the
// civil zone instead of full timestamps.
func toPaymentResponse(p *models.LeadPayment) paymentResponse {
	return paymentResponse{
		LeadPayment:  *p,
		BillingMonth: timeutil.FormatDatePtr(&p.BillingMonth),
		PaidOn:       timeutil.FormatDatePtr(p.PaidOn),
	}
}

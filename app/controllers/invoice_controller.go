package controllers

import (
	"encoding/json"
	"log"
	"path/filepath"
	"strings"

	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/AKM-dv/servicemate/internal/pkg/documents"
	"github.com/AKM-dv/servicemate/internal/pkg/invoicepdf"
	"github.com/AKM-dv/servicemate/internal/pkg/invoicing"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/gofiber/fiber/v2"
)

type createInvoiceRequest struct {
	LeadID   uint        `json:"lead_id"`
	PlanID   uint        `json:"plan_id"`
	Discount json.Number `json:"setup_discount"`
	Notes    *string     `json:"notes"`
}

type invoiceResponse struct {
	invoicing.InvoiceDetails
	GeneratedAt string  `json:"generated_at"`
	PDFURL      *string `json:"pdf_url"`
}

func toInvoiceResponse(c *fiber.Ctx, details *invoicing.InvoiceDetails) invoiceResponse {
	return invoiceResponse{
		InvoiceDetails: *details,
		GeneratedAt:    timeutil.FormatISO(details.GeneratedAt),
		PDFURL:         documents.AbsoluteURL(c, details.PDFURL),
	}
}

// HandleCreateInvoice prices and persists an invoice, then renders its
// document. The invoice row is the source of truth: a failed render still
// returns 201 with a null pdf_url, and a later re-render attaches a fresh
// file.
func HandleCreateInvoice(c *fiber.Ctx) error {
	var payload createInvoiceRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	discount := money.Zero
	if payload.Discount != "" {
		parsed, err := money.FromString(payload.Discount.String())
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "Invalid setup discount")
		}
		discount = parsed
	}

	svc := invoicing.NewServiceFromDB(database.GetDB())
	details, err := svc.CreateInvoice(invoicing.CreateInvoiceInput{
		LeadID:            payload.LeadID,
		PlanID:            payload.PlanID,
		RequestedDiscount: discount,
		Notes:             sanitizeString(payload.Notes),
	})
	if err != nil {
		return serviceError(c, err)
	}

	if path, err := renderInvoiceDocument(svc, details); err != nil {
		log.Printf("invoice %s: document render failed: %v", details.InvoiceNumber, err)
	} else {
		details.PDFURL = &path
	}

	return c.Status(fiber.StatusCreated).JSON(toInvoiceResponse(c, details))
}

func renderInvoiceDocument(svc *invoicing.Service, details *invoicing.InvoiceDetails) (string, error) {
	data, err := invoicepdf.Render(details, invoicepdf.ConfigFromEnv())
	if err != nil {
		return "", err
	}
	filename := documents.Filename(timeutil.Now(), details.LeadID)
	path, err := documents.Write(filename, data)
	if err != nil {
		return "", err
	}
	if err := svc.AttachDocument(details.InvoiceNumber, path); err != nil {
		return "", err
	}
	return path, nil
}

// HandleRenderInvoice re-renders an existing invoice's document. Each render
// writes a fresh timestamped file and repoints pdf_url at it; prior files
// are kept.
func HandleRenderInvoice(c *fiber.Ctx) error {
	number := c.Params("number")
	if number == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Invoice number required")
	}

	svc := invoicing.NewServiceFromDB(database.GetDB())
	details, err := svc.GetInvoice(number)
	if err != nil {
		return serviceError(c, err)
	}

	path, err := renderInvoiceDocument(svc, details)
	if err != nil {
		log.Printf("invoice %s: document render failed: %v", details.InvoiceNumber, err)
		return errorJSON(c, fiber.StatusInternalServerError, "Document render failed")
	}
	details.PDFURL = &path

	return c.JSON(toInvoiceResponse(c, details))
}

// HandleListInvoices lists invoices newest-first with optional free-text and
// generation date range filters.
func HandleListInvoices(c *fiber.Ctx) error {
	repoQuery := database.GetDB().Table("invoices").
		Select(`invoices.id, invoices.lead_id, invoices.plan_id, invoices.invoice_number,
			invoices.subtotal, invoices.tax, invoices.total,
			invoices.setup_fee_amount, invoices.setup_fee_discount, invoices.setup_fee_net,
			invoices.generated_at, invoices.notes, invoices.pdf_url,
			leads.name AS lead_name, leads.email AS lead_email, leads.phone AS lead_phone,
			leads.address AS lead_address, leads.brand_name AS brand_name,
			plans.name AS plan_name, plans.price AS plan_price`).
		Joins("JOIN leads ON leads.id = invoices.lead_id").
		Joins("JOIN plans ON plans.id = invoices.plan_id")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		repoQuery = repoQuery.Where(
			"(invoices.invoice_number LIKE ? OR leads.name LIKE ? OR leads.phone LIKE ?)",
			like, like, like,
		)
	}
	if from := c.Query("generated_from"); from != "" {
		repoQuery = repoQuery.Where("DATE(invoices.generated_at) >= ?", from)
	}
	if to := c.Query("generated_to"); to != "" {
		repoQuery = repoQuery.Where("DATE(invoices.generated_at) <= ?", to)
	}

	var rows []invoicing.InvoiceDetails
	if err := repoQuery.Order("invoices.generated_at DESC").Scan(&rows).Error; err != nil {
		return serviceError(c, err)
	}

	responses := make([]invoiceResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, toInvoiceResponse(c, &rows[i]))
	}
	return c.JSON(responses)
}

// HandleGetInvoiceFile serves a stored invoice document, as an attachment
// when ?download=1 is set.
func HandleGetInvoiceFile(c *fiber.Ctx) error {
	name := filepath.Base(c.Params("name"))
	if name == "." || name == "/" || !strings.HasSuffix(name, ".pdf") {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid file name")
	}

	fullPath := filepath.Join(documents.Dir(), name)
	if c.Query("download") == "1" {
		return c.Download(fullPath, name)
	}
	return c.SendFile(fullPath)
}

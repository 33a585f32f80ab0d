// Package invoicepdf lays out the single-page A4 invoice document. The
// layout is deterministic: each step's Y cursor flows from the previous one,
// and any asset failure only removes the image, never aborts the render.
package invoicepdf

import (
	"bytes"
	"os"

	"github.com/AKM-dv/servicemate/internal/pkg/assets"
	"github.com/AKM-dv/servicemate/internal/pkg/invoicing"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth  = 210.0 // A4, mm
	margin     = 20.0
	logoBox    = 32.0
	qrBox      = 35.0
	fieldRowH  = 6.0
	tableColW1 = 120.0
	tableColW2 = 40.0
)

// Render produces the invoice document bytes. Not idempotent by design: the
// caller derives a fresh timestamped filename per render and old files are
// kept.
func Render(inv *invoicing.InvoiceDetails, cfg Config) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := drawHeader(pdf, cfg)
	y = drawRule(pdf, y)
	y = drawParties(pdf, inv, y)
	y = drawCostTable(pdf, inv, y)
	y = drawPaymentDetails(pdf, cfg, y)
	y = drawQR(pdf, cfg, y)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, y, "Thank you for choosing "+cfg.BusinessName+".")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// logoSource prefers the local brand asset and falls back to the remote URL.
func logoSource(cfg Config) string {
	if cfg.LogoLocalPath != "" {
		if _, err := os.Stat(cfg.LogoLocalPath); err == nil {
			return cfg.LogoLocalPath
		}
	}
	return cfg.LogoURL
}

func placeImage(pdf *gofpdf.Fpdf, name string, img *assets.Image, x, y, boxW, boxH float64) (float64, float64) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.PNG))
	w, h := fitBox(img.Width, img.Height, boxW, boxH)
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return w, h
}

// drawHeader renders the logo (when loadable), title, wrapped business
// address and contact line. On asset failure the text shifts to the margin.
func drawHeader(pdf *gofpdf.Fpdf, cfg Config) float64 {
	textX := margin
	logoBottom := margin

	if logo := assets.Load(logoSource(cfg)); logo != nil {
		_, h := placeImage(pdf, "logo", logo, margin, margin, logoBox, logoBox)
		textX = margin + logoBox + 4
		logoBottom = margin + h
	}

	y := margin + 6
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(textX, y, cfg.BusinessName)
	y += 7

	pdf.SetFont("Helvetica", "", 9)
	lines := wrapText(cfg.BusinessAddress, 80)
	lines = append(lines, cfg.ContactPhone)
	for _, line := range lines {
		pdf.Text(textX, y, line)
		y += 4
	}

	if logoBottom > y {
		y = logoBottom
	}
	return y
}

func drawRule(pdf *gofpdf.Fpdf, y float64) float64 {
	y += 2
	pdf.SetDrawColor(203, 213, 245)
	pdf.SetLineWidth(0.3)
	pdf.Line(margin, y, pageWidth-margin, y)
	return y + 8
}

// drawParties renders the client column and the invoice metadata column in
// parallel; the caller continues below the lower of the two.
func drawParties(pdf *gofpdf.Fpdf, inv *invoicing.InvoiceDetails, top float64) float64 {
	pdf.SetTextColor(0, 0, 0)

	leftY := top
	for _, f := range clientFields(inv) {
		leftY = drawWrappedField(pdf, f, margin, 22, leftY)
	}

	rightX := pageWidth/2 + 16
	rightY := top
	generatedAt := inv.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = timeutil.Now()
	}
	meta := []field{
		{Label: "Invoice #", Value: inv.InvoiceNumber},
		{Label: "Invoice Date", Value: timeutil.DisplayDate(generatedAt)},
		{Label: "Plan", Value: inv.PlanName},
	}
	for _, f := range meta {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(rightX, rightY, f.Label+":")
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(rightX+28, rightY, f.Value)
		rightY += fieldRowH
	}

	if leftY > rightY {
		return leftY + 6
	}
	return rightY + 6
}

// drawWrappedField renders one labeled value, flowing extra wrapped lines
// downward, and returns the next baseline.
func drawWrappedField(pdf *gofpdf.Fpdf, f field, x, valueOffset, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(x, y, f.Label+":")
	pdf.SetFont("Helvetica", "", 10)
	for i, line := range wrapText(f.Value, 70) {
		if i > 0 {
			y += fieldRowH
		}
		pdf.Text(x+valueOffset, y, line)
	}
	return y + fieldRowH
}

func drawCostTable(pdf *gofpdf.Fpdf, inv *invoicing.InvoiceDetails, y float64) float64 {
	// Header row on the dark brand background.
	pdf.SetXY(margin, y)
	pdf.SetFillColor(15, 23, 42)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(tableColW1, 8, "Description", "", 0, "L", true, 0, "")
	pdf.CellFormat(tableColW2, 8, "Amount (INR)", "", 1, "L", true, 0, "")
	y += 8

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetDrawColor(203, 213, 245)
	pdf.SetLineWidth(0.1)

	for i, row := range costRows(inv) {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetXY(margin, y)
		pdf.CellFormat(tableColW1, 7, row.Description, "T", 0, "L", true, 0, "")
		pdf.CellFormat(tableColW2, 7, row.Amount, "T", 1, "R", true, 0, "")
		y += 7
	}

	// Heavier closing rule under the grand total.
	pdf.SetDrawColor(15, 23, 42)
	pdf.SetLineWidth(0.4)
	pdf.Line(margin, y, margin+tableColW1+tableColW2, y)

	return y + 12
}

func drawPaymentDetails(pdf *gofpdf.Fpdf, cfg Config, y float64) float64 {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(margin, y, "Payment Details")
	y += 6

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range cfg.PaymentLines {
		pdf.Text(margin, y, line)
		y += 5
	}
	return y
}

// drawQR places the payment QR with the same fetch-or-omit fallback as the
// logo, followed by one caption line.
func drawQR(pdf *gofpdf.Fpdf, cfg Config, y float64) float64 {
	qr := assets.Load(cfg.QRImageURL)
	if qr == nil {
		return y + 4
	}

	y += 3
	_, h := placeImage(pdf, "qr", qr, margin, y, qrBox, qrBox)
	y += h + 5

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin, y, "Scan UPI: "+cfg.UPILabel)
	return y + 8
}

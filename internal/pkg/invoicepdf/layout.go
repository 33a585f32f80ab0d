package invoicepdf

import (
	"strings"
	"unicode/utf8"

	"github.com/AKM-dv/servicemate/internal/pkg/invoicing"
)

// placeholder is rendered for any absent client field.
const placeholder = "NA"

// wrapText word-wraps at a fixed rune width. Empty input and all-space
// input collapse to the placeholder so fields never render blank.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{placeholder}
	}

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}
		lines = append(lines, current)
		current = word
		currentLen = wordLen
	}
	return append(lines, current)
}

type field struct {
	Label string
	Value string
}

func orPlaceholder(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return placeholder
	}
	return *v
}

// clientFields builds the left column. The client line falls back to the
// phone number when no name is on record.
func clientFields(inv *invoicing.InvoiceDetails) []field {
	client := orPlaceholder(inv.LeadName)
	if client == placeholder && strings.TrimSpace(inv.LeadPhone) != "" {
		client = inv.LeadPhone
	}

	return []field{
		{Label: "Client", Value: client},
		{Label: "Brand", Value: orPlaceholder(inv.BrandName)},
		{Label: "Email", Value: orPlaceholder(inv.LeadEmail)},
		{Label: "Phone", Value: orPlaceholder(&inv.LeadPhone)},
		{Label: "Address", Value: orPlaceholder(inv.LeadAddress)},
	}
}

// costRow is one line of the breakdown table.
type costRow struct {
	Description string
	Amount      string
}

// costRows builds the table body in contract order: plan, setup fee, a
// discount line only when the applied discount exceeds zero, then subtotal
// and grand total.
func costRows(inv *invoicing.InvoiceDetails) []costRow {
	rows := []costRow{
		{Description: "Plan - " + inv.PlanName, Amount: inv.PlanPrice.Display()},
		{Description: "One-time Setup Fee", Amount: inv.SetupFeeAmount.Display()},
	}
	if inv.SetupFeeDiscount.IsPositive() {
		rows = append(rows, costRow{
			Description: "One-time Discount",
			Amount:      "-" + inv.SetupFeeDiscount.Display(),
		})
	}
	return append(rows,
		costRow{Description: "Subtotal", Amount: inv.Subtotal.Display()},
		costRow{Description: "Grand Total", Amount: inv.Total.Display()},
	)
}

// fitBox scales image dimensions to fit inside a box preserving aspect.
func fitBox(imgW, imgH int, boxW, boxH float64) (float64, float64) {
	if imgW <= 0 || imgH <= 0 {
		return boxW, boxH
	}
	w := boxW
	h := boxW * float64(imgH) / float64(imgW)
	if h > boxH {
		h = boxH
		w = boxH * float64(imgW) / float64(imgH)
	}
	return w, h
}

package invoicepdf

import (
	"strings"
	"testing"

	"github.com/AKM-dv/servicemate/internal/pkg/invoicing"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "empty collapses to placeholder", in: "", width: 70, want: []string{"NA"}},
		{name: "spaces collapse to placeholder", in: "   ", width: 70, want: []string{"NA"}},
		{name: "short line unchanged", in: "hello world", width: 70, want: []string{"hello world"}},
		{
			name:  "wraps at width",
			in:    "one two three four five",
			width: 9,
			want:  []string{"one two", "three", "four five"},
		},
		{
			name:  "long word on its own line",
			in:    "a reallylongsingleword b",
			width: 10,
			want:  []string{"a", "reallylongsingleword", "b"},
		},
		{
			// "café" is 4 runes but 5 bytes; width is measured in runes,
			// so the 12-rune line must not wrap early.
			name:  "multi-byte runes count once",
			in:    "café au lait",
			width: 12,
			want:  []string{"café au lait"},
		},
		{
			name:  "multi-byte wraps at rune width",
			in:    "Müllerstraße Jürgen Müller",
			width: 13,
			want:  []string{"Müllerstraße", "Jürgen Müller"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.in, tt.width))
		})
	}
}

func strPtr(s string) *string { return &s }

func detailsFixture(discount string) *invoicing.InvoiceDetails {
	return &invoicing.InvoiceDetails{
		InvoiceNumber:    "INV2025110007",
		LeadPhone:        "+91 9000000000",
		PlanName:         "Basic",
		PlanPrice:        money.MustFromString("1999.00"),
		SetupFeeAmount:   money.MustFromString("3000.00"),
		SetupFeeDiscount: money.MustFromString(discount),
		SetupFeeNet:      money.MustFromString("3000.00").Sub(money.MustFromString(discount)),
		Subtotal:         money.MustFromString("4999.00").Sub(money.MustFromString(discount)),
		Total:            money.MustFromString("4999.00").Sub(money.MustFromString(discount)),
		Tax:              money.Zero,
	}
}

func TestClientFieldsPlaceholders(t *testing.T) {
	inv := detailsFixture("0")
	fields := clientFields(inv)

	byLabel := map[string]string{}
	for _, f := range fields {
		byLabel[f.Label] = f.Value
	}

	// No name on record: client falls back to the phone, never to NA.
	assert.Equal(t, "+91 9000000000", byLabel["Client"])
	assert.Equal(t, "NA", byLabel["Brand"])
	assert.Equal(t, "NA", byLabel["Email"])
	assert.Equal(t, "NA", byLabel["Address"])
	assert.Equal(t, "+91 9000000000", byLabel["Phone"])
}

func TestClientFieldsWithName(t *testing.T) {
	inv := detailsFixture("0")
	inv.LeadName = strPtr("Acme Stores")
	inv.LeadEmail = strPtr("acme@example.com")

	fields := clientFields(inv)
	assert.Equal(t, "Acme Stores", fields[0].Value)
	assert.Equal(t, "acme@example.com", fields[2].Value)
}

func TestCostRowsOrderWithoutDiscount(t *testing.T) {
	rows := costRows(detailsFixture("0"))

	var descriptions []string
	for _, r := range rows {
		descriptions = append(descriptions, r.Description)
	}
	assert.Equal(t, []string{
		"Plan - Basic",
		"One-time Setup Fee",
		"Subtotal",
		"Grand Total",
	}, descriptions)
}

func TestCostRowsDiscountPresentOnlyWhenPositive(t *testing.T) {
	rows := costRows(detailsFixture("500.00"))

	var discountRow *costRow
	for i := range rows {
		if strings.Contains(rows[i].Description, "Discount") {
			discountRow = &rows[i]
		}
	}
	if discountRow == nil {
		t.Fatal("expected a discount row for a positive discount")
	}
	assert.Equal(t, "-500.00", discountRow.Amount)
	// Discount sits between the setup fee and the subtotal.
	assert.Equal(t, "One-time Setup Fee", rows[1].Description)
	assert.Equal(t, "One-time Discount", rows[2].Description)
	assert.Equal(t, "Subtotal", rows[3].Description)
}

func TestCostRowsAmountsAreGrouped(t *testing.T) {
	rows := costRows(detailsFixture("0"))
	assert.Equal(t, "1,999.00", rows[0].Amount)
	assert.Equal(t, "3,000.00", rows[1].Amount)
	assert.Equal(t, "4,999.00", rows[3].Amount)
}

func TestFitBox(t *testing.T) {
	// Wide image limited by width.
	w, h := fitBox(200, 100, 32, 32)
	assert.InDelta(t, 32.0, w, 0.001)
	assert.InDelta(t, 16.0, h, 0.001)

	// Tall image limited by height.
	w, h = fitBox(100, 200, 32, 32)
	assert.InDelta(t, 16.0, w, 0.001)
	assert.InDelta(t, 32.0, h, 0.001)

	// Unknown dimensions fall back to the box.
	w, h = fitBox(0, 0, 32, 32)
	assert.Equal(t, 32.0, w)
	assert.Equal(t, 32.0, h)
}

package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringFixedTwoDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0.00"},
		{in: "1999", want: "1999.00"},
		{in: "3000.5", want: "3000.50"},
		{in: "-12.3", want: "-12.30"},
	}

	for _, tt := range tests {
		m := MustFromString(tt.in)
		if got := m.String(); got != tt.want {
			t.Fatalf("String(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayGrouping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0.00"},
		{in: "999.5", want: "999.50"},
		{in: "1999", want: "1,999.00"},
		{in: "4999.00", want: "4,999.00"},
		{in: "1234567.89", want: "1,234,567.89"},
		{in: "-3000", want: "-3,000.00"},
	}

	for _, tt := range tests {
		if got := MustFromString(tt.in).Display(); got != tt.want {
			t.Fatalf("Display(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArithmeticIsExact(t *testing.T) {
	a := MustFromString("1999.00")
	b := MustFromString("2500.00")
	assert.Equal(t, "4499.00", a.Add(b).String())
	assert.Equal(t, "-501.00", a.Sub(b).String())
	assert.Equal(t, 0, a.Add(b).Sub(b).Cmp(a))
}

func TestJSONRoundTrip(t *testing.T) {
	payload := struct {
		Total Money `json:"total"`
	}{Total: MustFromString("4999.00")}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Unquoted number with both fraction digits preserved.
	assert.Equal(t, `{"total":4999.00}`, string(raw))

	var decoded struct {
		Total Money `json:"total"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	assert.Equal(t, 0, decoded.Total.Cmp(payload.Total))
}

func TestFromStringRejectsGarbage(t *testing.T) {
	if _, err := FromString("12abc"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

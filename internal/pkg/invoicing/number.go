package invoicing

import (
	"fmt"
	"time"
)

// MonthPrefix builds the UTC-scoped numbering prefix, e.g. "INV202511".
// This is deliberately UTC-based and independent of the civil display zone.
func MonthPrefix(now time.Time) string {
	return now.UTC().Format("INV200601")
}

// FormatNumber appends the 4-digit zero-padded sequence to a month prefix,
// producing e.g. "INV2025110007".
func FormatNumber(prefix string, seq uint) string {
	return fmt.Sprintf("%s%04d", prefix, seq)
}

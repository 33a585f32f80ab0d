package money

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an exact base-10 amount with two fractional digits. All invoice
// arithmetic goes through this type; binary floating point never touches a
// stored or serialized total.
type Money struct {
	amount decimal.Decimal
}

var Zero = Money{}

func New(d decimal.Decimal) Money {
	return Money{amount: d}
}

func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// MustFromString is for env defaults and tests with known-good literals.
func MustFromString(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Add(o Money) Money { return Money{amount: m.amount.Add(o.amount)} }
func (m Money) Sub(o Money) Money { return Money{amount: m.amount.Sub(o.amount)} }

func (m Money) Cmp(o Money) int    { return m.amount.Cmp(o.amount) }
func (m Money) IsNegative() bool   { return m.amount.IsNegative() }
func (m Money) IsPositive() bool   { return m.amount.IsPositive() }
func (m Money) GreaterThan(o Money) bool { return m.amount.GreaterThan(o.amount) }

// String renders the canonical wire form with exactly two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Display renders the amount with thousands grouping for documents,
// e.g. "4,999.00".
func (m Money) Display() string {
	s := m.amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// MarshalJSON emits an unquoted decimal number so two-digit precision
// round-trips exactly, e.g. 4999.00.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		m.amount = decimal.Decimal{}
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	m.amount = d
	return nil
}

// Value implements driver.Valuer so Money maps onto DECIMAL(10,2) columns.
func (m Money) Value() (driver.Value, error) {
	return m.amount.StringFixed(2), nil
}

func (m *Money) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	m.amount = d
	return nil
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Money shared amount type (kept at 2 decimal places)
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates an amount from a decimal
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// MarshalJSON always emits a string with 2 decimal places
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON parses an amount (string or number)
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// Value is used for database writes
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan is used for database reads
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String returns the 2-decimal form
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}

// FormatBRL renders an amount the Brazilian way, e.g. "R$ 1.234,56".
// Thousands are separated by dots, decimals by a comma, always 2 places.
func (m Money) FormatBRL() string {
	fixed := m.Decimal.Round(2).StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	var b strings.Builder
	b.WriteString("R$ ")
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(strings.Join(groups, "."))
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ParseBRL parses a price string leniently. It accepts the Brazilian
// form ("R$ 1.234,56"), the plain form ("1234.56") and arbitrary noise
// around the digits. Anything unparseable yields zero instead of an error.
func ParseBRL(raw string) Money {
	var cleaned strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.':
			cleaned.WriteRune(r)
		case r == '-' && cleaned.Len() == 0:
			cleaned.WriteRune(r)
		}
	}
	normalized := cleaned.String()
	if strings.Contains(normalized, ",") {
		// dots are thousands separators in the Brazilian form
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{Decimal: decimal.Zero}
	}
	return NewMoneyFromDecimal(d)
}

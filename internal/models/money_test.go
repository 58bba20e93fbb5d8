package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "R$ 0,00"},
		{"5.5", "R$ 5,50"},
		{"10", "R$ 10,00"},
		{"999.99", "R$ 999,99"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-42.10", "R$ -42,10"},
	}
	for _, tc := range cases {
		m := NewMoneyFromDecimal(decimal.RequireFromString(tc.amount))
		if got := m.FormatBRL(); got != tc.want {
			t.Fatalf("FormatBRL(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestParseBRL(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"R$ 10,00", "10.00"},
		{"1234.56", "1234.56"},
		{"5,5", "5.50"},
		{"  R$   999,99  ", "999.99"},
		{"preço: R$ 49,90", "49.90"},
		{"-12,30", "-12.30"},
	}
	for _, tc := range cases {
		got := ParseBRL(tc.raw)
		if got.String() != tc.want {
			t.Fatalf("ParseBRL(%q) = %s, want %s", tc.raw, got.String(), tc.want)
		}
	}
}

func TestParseBRLMalformedYieldsZero(t *testing.T) {
	for _, raw := range []string{"", "abc", "R$", "sob consulta", "---"} {
		got := ParseBRL(raw)
		if !got.Decimal.IsZero() {
			t.Fatalf("ParseBRL(%q) = %s, want zero", raw, got.String())
		}
	}
}

func TestParseBRLFormatRoundTrip(t *testing.T) {
	for _, amount := range []string{"0", "0.99", "10", "1234.56", "1234567.89"} {
		m := NewMoneyFromDecimal(decimal.RequireFromString(amount))
		back := ParseBRL(m.FormatBRL())
		if !back.Decimal.Equal(m.Decimal) {
			t.Fatalf("round trip of %s: formatted %q parsed back to %s", amount, m.FormatBRL(), back.String())
		}
	}
}

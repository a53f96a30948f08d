package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a statement amount string into a decimal value.
// The statement format uses '.' as the fractional separator; anything else
// (thousands separators, currency symbols) is rejected so the row can be
// dropped by the parser. Empty strings are rejected for the same reason.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatBRL formats an amount in the Brazilian display convention used by
// the detail table: "R$ 1.234,56", with the sign ahead of the currency
// marker for negative values.
func FormatBRL(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	// Insert '.' thousands separators right to left.
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	formatted := fmt.Sprintf("R$ %s,%s", strings.Join(groups, "."), fracPart)
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses an explorer-exported numeric value. Exports embed
// thousands separators ("1,234.56"); those are stripped before parsing.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return decimal.NewFromString(s)
}

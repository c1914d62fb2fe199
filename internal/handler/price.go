package handler

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizePrice reinterprets raw form text so that both decimal-comma and
// decimal-point entry parse to the same value:
//
//	"1.234,56" -> 1234.56   (periods are thousands separators)
//	"1234,56"  -> 1234.56
//	"12.5"     -> 12.5
//
// ok is false for blank or unparseable input. A successful parse overrides
// whatever generic form binding produced for the price field.
func NormalizePrice(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return price, true
}

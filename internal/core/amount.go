// Package core implements the monthly cash-flow aggregation engine:
// amount parsing, period selection, summary aggregation and
// period-over-period comparison over normalized transactions.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmountToCents converts a spreadsheet amount string to signed cents
// with half-up rounding on the third decimal digit.
//
// Two separator conventions are tolerated and disambiguated by one rule set:
//   - locale strings with "." as thousands and "," as decimal: "1.234,56"
//   - plain strings with "." as decimal and no grouping: "1234.56"
//
// When the string carries more than one "." and no ",", all but the last "."
// are treated as thousands separators ("12.34.56" reads as 1234.56).
// Zero is a valid amount. Returns ErrInvalidAmount for anything else.
func ParseAmountToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"R$", "€", "$"} {
		s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	switch {
	case strings.Contains(s, ","):
		if strings.Count(s, ",") > 1 {
			return 0, ErrInvalidAmount
		}
		// Dots are grouping, the comma is the decimal point.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		// All dots but the last are grouping.
		last := strings.LastIndex(s, ".")
		s = strings.ReplaceAll(s[:last], ".", "") + s[last:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		if fracPart == "" {
			return 0, ErrInvalidAmount
		}
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// First two fractional digits, then half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents, nil
}

// divideRound divides cents by n with half-up rounding away from zero.
func divideRound(cents int64, n int64) int64 {
	if n == 0 {
		return 0
	}
	half := n / 2
	if cents < 0 {
		return (cents - half) / n
	}
	return (cents + half) / n
}

// Package ingest maps arbitrary tabular sources onto the canonical
// transaction schema: it infers which columns hold the date, amount and
// category, then normalizes rows into core transactions.
package ingest

import (
	"fmt"
	"strings"
)

// Role names one of the three required column roles.
type Role string

const (
	RoleDate     Role = "date"
	RoleAmount   Role = "amount"
	RoleCategory Role = "category"
)

// roleCandidates are the substrings tried per role, in priority order.
// English terms first, then the Portuguese headers the source sheets use.
var roleCandidates = map[Role][]string{
	RoleDate:     {"date", "data"},
	RoleAmount:   {"amount", "value", "valor"},
	RoleCategory: {"category", "categoria"},
}

// Hints lets a caller pin a role to an exact header name when substring
// inference would be ambiguous (an "updated_date" column, say). Empty
// fields fall back to inference.
type Hints struct {
	Date     string
	Amount   string
	Category string
}

// Columns holds the resolved zero-based column index per role.
type Columns struct {
	Date     int
	Amount   int
	Category int
}

// SchemaError reports a required column role that could not be resolved
// from the source headers.
type SchemaError struct {
	Role    Role
	Headers []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required %s column not found in headers %v", e.Role, e.Headers)
}

// ResolveColumns finds the column index for each role. A hint demands an
// exact (case-insensitive, trimmed) header match; otherwise candidates are
// tried in priority order and the first header containing the candidate as
// a substring wins, in column iteration order.
func ResolveColumns(headers []string, hints Hints) (Columns, error) {
	date, err := resolveRole(headers, RoleDate, hints.Date)
	if err != nil {
		return Columns{}, err
	}
	amount, err := resolveRole(headers, RoleAmount, hints.Amount)
	if err != nil {
		return Columns{}, err
	}
	category, err := resolveRole(headers, RoleCategory, hints.Category)
	if err != nil {
		return Columns{}, err
	}
	return Columns{Date: date, Amount: amount, Category: category}, nil
}

func resolveRole(headers []string, role Role, hint string) (int, error) {
	if hint = normalizeHeader(hint); hint != "" {
		for i, h := range headers {
			if normalizeHeader(h) == hint {
				return i, nil
			}
		}
		return 0, &SchemaError{Role: role, Headers: headers}
	}
	for _, candidate := range roleCandidates[role] {
		for i, h := range headers {
			if strings.Contains(normalizeHeader(h), candidate) {
				return i, nil
			}
		}
	}
	return 0, &SchemaError{Role: role, Headers: headers}
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

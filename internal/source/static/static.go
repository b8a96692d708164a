// Package static provides a fixed in-memory table, used by tests and as the
// demo backend when no real source is configured.
package static

import (
	"context"
	"sync"
)

type Table struct {
	mu   sync.Mutex
	rows [][]string
}

func New(rows [][]string) *Table {
	return &Table{rows: rows}
}

// Read returns a copy of the table so callers cannot mutate the source.
func (t *Table) Read(_ context.Context) ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

// Append adds a row, letting tests grow the table between reads.
func (t *Table) Append(row []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
}

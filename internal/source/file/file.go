// Package file reads a local spreadsheet export wholesale.
package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

type Reader struct {
	path string
}

func New(path string) *Reader {
	return &Reader{path: path}
}

// Read opens the file, reads every row and closes it. One shot, no retry.
func (r *Reader) Read(_ context.Context) ([][]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", r.path, err)
	}
	return rows, nil
}

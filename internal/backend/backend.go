// Package backend selects and constructs the configured transaction source.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"fluxo/internal/source"
	"fluxo/internal/source/csvurl"
	"fluxo/internal/source/file"
	"fluxo/internal/source/google"
	"fluxo/internal/source/static"
)

// Type names a supported source backend.
type Type string

const (
	SheetsBackend Type = "sheets" // Google Sheets API
	CSVURLBackend Type = "csvurl" // published spreadsheet exported as CSV
	FileBackend   Type = "file"   // local spreadsheet export
	StaticBackend Type = "static" // built-in demo table
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid.
func (t Type) IsValid() bool {
	switch t {
	case SheetsBackend, CSVURLBackend, FileBackend, StaticBackend:
		return true
	default:
		return false
	}
}

// Config holds configuration for source creation.
type Config struct {
	Type Type

	// csvurl specific
	SheetURL string

	// file specific
	FilePath string

	// Google Sheets specific
	GoogleSpreadsheetID string
	GoogleSheetName     string
	GoogleSheetRange    string
}

// New creates the source reader for the given config.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (source.Reader, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid source backend: %s", cfg.Type)
	}

	switch cfg.Type {
	case SheetsBackend:
		cli, err := google.New(ctx, google.Config{
			SpreadsheetID: cfg.GoogleSpreadsheetID,
			SheetName:     cfg.GoogleSheetName,
			Range:         cfg.GoogleSheetRange,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets source: %w", err)
		}
		logger.Info("Initialized Google Sheets source", "spreadsheet_id", cfg.GoogleSpreadsheetID)
		return cli, nil
	case CSVURLBackend:
		logger.Info("Initialized CSV export source", "url", csvurl.ExportURL(cfg.SheetURL))
		return csvurl.New(cfg.SheetURL), nil
	case FileBackend:
		logger.Info("Initialized file source", "path", cfg.FilePath)
		return file.New(cfg.FilePath), nil
	default:
		logger.Info("Initialized static demo source")
		return static.New(demoRows()), nil
	}
}

// demoRows seeds the static backend so the dashboard renders without any
// external source configured.
func demoRows() [][]string {
	return [][]string{
		{"Data", "Valor", "Categoria"},
		{"05/01/2025", "4500,00", "Salário"},
		{"06/01/2025", "-1.200,00", "Aluguel"},
		{"10/01/2025", "-430,75", "Mercado"},
		{"15/01/2025", "-89,90", "Transporte"},
		{"05/02/2025", "4500,00", "Salário"},
		{"06/02/2025", "-1.200,00", "Aluguel"},
		{"12/02/2025", "-512,30", "Mercado"},
		{"20/02/2025", "-150,00", "Lazer"},
	}
}

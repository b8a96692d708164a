package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Source backend selection: sheets | csvurl | file | static
	SourceBackend string

	// Published CSV export
	SheetURL string

	// Local spreadsheet export
	FilePath string

	// Google Sheets
	GoogleSpreadsheetID string
	GoogleSheetName     string
	GoogleSheetRange    string

	// Column role overrides for schema inference
	DateColumn     string
	AmountColumn   string
	CategoryColumn string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		SourceBackend: getEnv("SOURCE_BACKEND", "static"),
		SheetURL:      getEnv("SHEET_CSV_URL", ""),
		FilePath:      getEnv("SOURCE_FILE_PATH", ""),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", ""),
		GoogleSheetRange:    getEnv("GOOGLE_SHEET_RANGE", ""),

		DateColumn:     getEnv("COLUMN_DATE", ""),
		AmountColumn:   getEnv("COLUMN_AMOUNT", ""),
		CategoryColumn: getEnv("COLUMN_CATEGORY", ""),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validBackends := []string{"sheets", "csvurl", "file", "static"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.SourceBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid source backend '%s': must be one of %v", c.SourceBackend, validBackends))
	}

	switch c.SourceBackend {
	case "csvurl":
		if c.SheetURL == "" {
			errors = append(errors, "SHEET_CSV_URL is required when using the csvurl backend")
		} else if parsed, err := url.Parse(c.SheetURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid sheet URL '%s': %v", c.SheetURL, err))
		} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid sheet URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
		}
	case "file":
		if c.FilePath == "" {
			errors = append(errors, "SOURCE_FILE_PATH is required when using the file backend")
		} else if _, err := os.Stat(c.FilePath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("source file does not exist: %s", c.FilePath))
		}
	case "sheets":
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "GOOGLE_SPREADSHEET_ID is required when using the sheets backend")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package csvurl reads a spreadsheet published on the web as a CSV export.
package csvurl

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Fetcher struct {
	url    string
	client *http.Client
}

// New creates a fetcher for the given CSV URL. Share links to Google
// spreadsheets are normalized to their CSV export form first.
func New(url string) *Fetcher {
	return &Fetcher{
		url: ExportURL(url),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ExportURL rewrites a spreadsheet share link into its CSV export URL.
// Anything that is not a share link passes through untouched.
func ExportURL(url string) string {
	if strings.Contains(url, "docs.google.com/spreadsheets/") {
		if i := strings.Index(url, "/edit"); i >= 0 {
			return url[:i] + "/export?format=csv"
		}
		if !strings.Contains(url, "/export") {
			return strings.TrimRight(url, "/") + "/export?format=csv"
		}
	}
	return url
}

// Read fetches the export and parses it in full. One shot, no retry.
func (f *Fetcher) Read(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", f.url, resp.Status)
	}

	r := csv.NewReader(resp.Body)
	r.FieldsPerRecord = -1 // spreadsheet exports have ragged rows
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv from %s: %w", f.url, err)
	}
	return rows, nil
}

package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fluxo/internal/core"
	"fluxo/internal/ingest"
)

// handleMonths lists the months with data, oldest first.
func (s *Server) handleMonths(w http.ResponseWriter, r *http.Request) {
	months, err := s.reports.AvailableMonths(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]string, 0, len(months))
	for _, m := range months {
		out = append(out, m.String())
	}
	writeJSON(w, http.StatusOK, map[string]any{"months": out})
}

// handleReport returns the full month report as plain structured data.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	month, ok := monthFromQuery(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"kind":  "bad_request",
			"error": "specify month=YYYY-MM or year= and month= parameters",
		})
		return
	}
	report, err := s.reports.MonthReport(r.Context(), month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, buildReportDTO(report))
}

// writeError maps pipeline failures onto distinguishable kinds so callers
// can decide how to surface them.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Report pipeline error", "error", err, "url", r.URL.String())

	var schemaErr *ingest.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"kind":  "schema",
			"error": schemaErr.Error(),
		})
	case errors.Is(err, core.ErrEmptyDataset):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"kind":  "empty_dataset",
			"error": err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"kind":  "internal",
			"error": err.Error(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// monthFromQuery accepts either month=YYYY-MM or year= plus month= integers.
func monthFromQuery(r *http.Request) (core.Month, bool) {
	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("month")); strings.Contains(v, "-") {
		return parseMonthString(v)
	}
	year, errY := strconv.Atoi(strings.TrimSpace(q.Get("year")))
	monthNum, errM := strconv.Atoi(strings.TrimSpace(q.Get("month")))
	if errY != nil || errM != nil || monthNum < 1 || monthNum > 12 {
		return core.Month{}, false
	}
	return core.Month{Year: year, Month: time.Month(monthNum)}, true
}

func parseMonthString(v string) (core.Month, bool) {
	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return core.Month{}, false
	}
	year, errY := strconv.Atoi(parts[0])
	monthNum, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || monthNum < 1 || monthNum > 12 {
		return core.Month{}, false
	}
	return core.Month{Year: year, Month: time.Month(monthNum)}, true
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fluxo/internal/ingest"
	"fluxo/internal/services"
	"fluxo/internal/source/static"
)

func testServer(rows [][]string) *Server {
	if rows == nil {
		rows = [][]string{
			{"Data", "Valor", "Categoria"},
			{"05/01/2024", "1000", "Salary"},
			{"10/01/2024", "-200", "Rent"},
			{"20/01/2024", "-50", "Food"},
		}
	}
	clock := func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	reports := services.NewReportService(static.New(rows), ingest.Hints{}, clock)
	return NewServer(":0", reports)
}

func TestHandleReport(t *testing.T) {
	srv := testServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/report?month=2024-01", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", rec.Code, rec.Body.String())
	}
	var dto reportDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Month != "2024-01" || dto.FirstDay != "2024-01-01" || dto.LastDay != "2024-01-31" {
		t.Fatalf("period: %+v", dto)
	}
	if dto.Summary.TotalIncome != 1000 || dto.Summary.TotalExpense != -250 || dto.Summary.NetBalance != 750 {
		t.Fatalf("summary: %+v", dto.Summary)
	}
	if dto.Summary.RemainingDays != 17 || dto.Summary.DailyAllowance != 44.12 {
		t.Fatalf("runway: %+v", dto.Summary)
	}
	if len(dto.Days) != 31 || len(dto.RunningBalance) != 31 {
		t.Fatalf("day sequences: %d days, %d balances", len(dto.Days), len(dto.RunningBalance))
	}
	if len(dto.Breakdown) != 2 || dto.Breakdown[0].Category != "Rent" {
		t.Fatalf("breakdown: %+v", dto.Breakdown)
	}
	if dto.RunningBalance[30] != dto.Summary.NetBalance {
		t.Fatalf("running balance does not close on the net balance")
	}
}

func TestHandleReportYearMonthParams(t *testing.T) {
	srv := testServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/report?year=2024&month=1", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestHandleReportBadParams(t *testing.T) {
	srv := testServer(nil)
	for _, url := range []string{"/api/report", "/api/report?month=2024-13", "/api/report?year=x&month=1"} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d", url, rec.Code)
		}
	}
}

func TestHandleReportEmptyMonth(t *testing.T) {
	srv := testServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/report?month=2024-06", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("empty month must not fail: %d", rec.Code)
	}
	var dto reportDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dto.Summary.NetBalance != 0 || len(dto.Breakdown) != 0 {
		t.Fatalf("expected all-zero report: %+v", dto.Summary)
	}
}

func TestHandleReportEmptyDataset(t *testing.T) {
	srv := testServer([][]string{{"Data", "Valor", "Categoria"}})
	req := httptest.NewRequest(http.MethodGet, "/api/report?month=2024-01", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["kind"] != "empty_dataset" {
		t.Fatalf("kind: %q", body["kind"])
	}
}

func TestHandleReportSchemaError(t *testing.T) {
	srv := testServer([][]string{{"foo", "bar", "baz"}, {"05/01/2024", "1", "A"}})
	req := httptest.NewRequest(http.MethodGet, "/api/report?month=2024-01", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"schema"`) {
		t.Fatalf("expected schema kind: %s", rec.Body.String())
	}
}

func TestHandleMonths(t *testing.T) {
	srv := testServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/months", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body["months"]) != 1 || body["months"][0] != "2024-01" {
		t.Fatalf("months: %+v", body)
	}
}

func TestHandleDashboard(t *testing.T) {
	srv := testServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"1.000,00", "250,00", "750,00", "44,12", "Rent", "Food"} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("security headers missing: %q", got)
	}
}

func TestHandleDashboardCategoryFilter(t *testing.T) {
	srv := testServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/?month=2024-01&category=Rent", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "-200,00") {
		t.Fatalf("filtered transaction missing")
	}
	if strings.Contains(body, "20/01/2024") {
		t.Fatalf("filter leaked other categories")
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("health: %d %q", rec.Code, rec.Body.String())
	}
}

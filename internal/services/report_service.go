package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fluxo/internal/core"
	"fluxo/internal/ingest"
	"fluxo/internal/source"
)

// Clock supplies "today" so period math stays deterministic under test.
type Clock func() time.Time

// ReportService runs the full pipeline for one invocation: read the source,
// normalize, select the period and aggregate. Every call recomputes from
// scratch; the service holds no state between calls.
type ReportService struct {
	src   source.Reader
	hints ingest.Hints
	clock Clock
}

// Report is everything the presentation layer needs for one month, as plain
// structured data. Formatting is not applied here.
type Report struct {
	Month          core.Month
	Bounds         core.PeriodBounds
	Summary        core.MonthlySummary
	Breakdown      []core.CategoryAmount
	Cashflow       core.CashflowMatrix
	Running        []core.Money
	AverageExpense map[string]core.Money
	Deltas         map[string]core.Money
	Months         []core.Month
	Transactions   []core.Transaction
}

func NewReportService(src source.Reader, hints ingest.Hints, clock Clock) *ReportService {
	if clock == nil {
		clock = time.Now
	}
	return &ReportService{src: src, hints: hints, clock: clock}
}

// MonthReport assembles the report for the given month. A month with no
// transactions yields an all-zero summary and empty tables, not an error;
// only a dataset with no valid rows at all is fatal.
func (s *ReportService) MonthReport(ctx context.Context, month core.Month) (*Report, error) {
	txs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	bounds, filtered := core.SelectPeriod(txs, month)
	today := core.DateOf(s.clock())
	remaining := core.RemainingDays(bounds, today)

	deltas := core.MonthOverMonthDelta(txs)[month]
	if deltas == nil {
		deltas = map[string]core.Money{}
	}

	report := &Report{
		Month:          month,
		Bounds:         bounds,
		Summary:        core.Summarize(filtered, remaining),
		Breakdown:      core.CategoryBreakdown(filtered),
		Cashflow:       core.Cashflow(filtered, bounds),
		Running:        core.RunningBalance(filtered, bounds),
		AverageExpense: core.AverageExpenseByCategory(txs),
		Deltas:         deltas,
		Months:         core.MonthsWithData(txs),
		Transactions:   filtered,
	}
	slog.DebugContext(ctx, "Assembled month report",
		"month", month.String(),
		"transactions", len(filtered),
		"remaining_days", remaining)
	return report, nil
}

// AvailableMonths lists the distinct months with data, oldest first.
func (s *ReportService) AvailableMonths(ctx context.Context) ([]core.Month, error) {
	txs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return core.MonthsWithData(txs), nil
}

// LatestMonth returns the most recent month with data, the dashboard's
// default selection.
func (s *ReportService) LatestMonth(ctx context.Context) (core.Month, error) {
	months, err := s.AvailableMonths(ctx)
	if err != nil {
		return core.Month{}, err
	}
	return months[len(months)-1], nil
}

func (s *ReportService) load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	txs, err := ingest.Normalize(rows, s.hints)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

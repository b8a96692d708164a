// fluxo-report prints a one-shot month report to stdout, reading the same
// source configuration as the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"fluxo/internal/backend"
	"fluxo/internal/config"
	"fluxo/internal/core"
	"fluxo/internal/ingest"
	"fluxo/internal/services"
)

var cli struct {
	Months monthsCmd `cmd:"" help:"List months with data."`
	Report reportCmd `cmd:"" default:"withargs" help:"Print the report for a month."`
}

type monthsCmd struct{}

type reportCmd struct {
	Month string `short:"m" help:"Month to report (YYYY-MM). Defaults to the latest month with data."`
}

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx := kong.Parse(&cli)
	ctx.FatalIfErrorf(ctx.Run())
}

func newService(ctx context.Context) (*services.ReportService, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := backend.New(ctx, backend.Config{
		Type:                backend.Type(cfg.SourceBackend),
		SheetURL:            cfg.SheetURL,
		FilePath:            cfg.FilePath,
		GoogleSpreadsheetID: cfg.GoogleSpreadsheetID,
		GoogleSheetName:     cfg.GoogleSheetName,
		GoogleSheetRange:    cfg.GoogleSheetRange,
	}, slog.Default())
	if err != nil {
		return nil, err
	}
	hints := ingest.Hints{
		Date:     cfg.DateColumn,
		Amount:   cfg.AmountColumn,
		Category: cfg.CategoryColumn,
	}
	return services.NewReportService(src, hints, time.Now), nil
}

func (c *monthsCmd) Run() error {
	ctx := context.Background()
	svc, err := newService(ctx)
	if err != nil {
		return err
	}
	months, err := svc.AvailableMonths(ctx)
	if err != nil {
		return err
	}
	for _, m := range months {
		fmt.Println(m)
	}
	return nil
}

func (c *reportCmd) Run() error {
	ctx := context.Background()
	svc, err := newService(ctx)
	if err != nil {
		return err
	}

	var month core.Month
	if c.Month == "" {
		if month, err = svc.LatestMonth(ctx); err != nil {
			return err
		}
	} else if month, err = parseMonth(c.Month); err != nil {
		return err
	}

	report, err := svc.MonthReport(ctx, month)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func parseMonth(v string) (core.Month, error) {
	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return core.Month{}, fmt.Errorf("invalid month %q: want YYYY-MM", v)
	}
	year, errY := strconv.Atoi(parts[0])
	monthNum, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || monthNum < 1 || monthNum > 12 {
		return core.Month{}, fmt.Errorf("invalid month %q: want YYYY-MM", v)
	}
	return core.Month{Year: year, Month: time.Month(monthNum)}, nil
}

func printReport(report *services.Report) {
	fmt.Printf("Fluxo de caixa — %s (%s a %s)\n\n",
		report.Month, report.Bounds.First, report.Bounds.Last)
	fmt.Printf("  Entradas:           %10.2f\n", report.Summary.TotalIncome.Units())
	fmt.Printf("  Saídas:             %10.2f\n", report.Summary.TotalExpense.Units())
	fmt.Printf("  Saldo final:        %10.2f\n", report.Summary.NetBalance.Units())
	fmt.Printf("  Dias restantes:     %10d\n", report.Summary.RemainingDays)
	fmt.Printf("  Saldo/dia restante: %10.2f\n", report.Summary.DailyAllowance.Units())

	if len(report.Breakdown) > 0 {
		fmt.Println("\nGastos por categoria:")
		for _, ca := range report.Breakdown {
			fmt.Printf("  %-20s %10.2f\n", ca.Name, ca.Amount.Units())
		}
	}

	if len(report.Deltas) > 0 {
		fmt.Println("\nVariação vs mês anterior:")
		for _, name := range sortedKeys(report.Deltas) {
			fmt.Printf("  %-20s %+10.2f\n", name, report.Deltas[name].Units())
		}
	}

	if len(report.AverageExpense) > 0 {
		fmt.Println("\nGasto médio por categoria (histórico):")
		for _, name := range sortedKeys(report.AverageExpense) {
			fmt.Printf("  %-20s %10.2f\n", name, report.AverageExpense[name].Units())
		}
	}

	if n := len(report.Running); n > 0 {
		fmt.Printf("\nSaldo acumulado no fim do mês: %.2f\n", report.Running[n-1].Units())
	}
}

func sortedKeys(values map[string]core.Money) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

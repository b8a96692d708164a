package http

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"fluxo/internal/core"
	"fluxo/internal/services"
)

type (
	metricView struct {
		Label string
		Value string
	}

	barView struct {
		Name   string
		Amount string
		Width  int // percent of the largest expense, for the bar chart
	}

	matrixView struct {
		Title string
		Days  []int
		Rows  []matrixRowView
	}

	matrixRowView struct {
		Category string
		Cells    []string
	}

	pairView struct {
		Name  string
		Value string
	}

	txView struct {
		Date     string
		Category string
		Amount   string
	}

	dashboardView struct {
		Months       []string
		Selected     string
		Metrics      []metricView
		Bars         []barView
		HasExpenses  bool
		Matrices     []matrixView
		Running      []pairView
		Averages     []pairView
		Deltas       []pairView
		Categories   []string
		Filter       string
		Transactions []txView
		FilterTotal  string
	}
)

// handleDashboard renders the server-side dashboard page: metrics, expense
// bars, cash-flow matrices, running balance and the comparison tables.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	ctx := r.Context()

	month, ok := monthFromQuery(r)
	if !ok {
		latest, err := s.reports.LatestMonth(ctx)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		month = latest
	}

	report, err := s.reports.MonthReport(ctx, month)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	view := buildDashboardView(report, strings.TrimSpace(r.URL.Query().Get("category")))
	if err := s.templates.ExecuteTemplate(w, "index.html", view); err != nil {
		slog.ErrorContext(ctx, "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Dashboard error", "error", err)
	http.Error(w, err.Error(), http.StatusBadGateway)
}

func buildDashboardView(report *services.Report, filter string) dashboardView {
	view := dashboardView{
		Selected: report.Month.String(),
		Filter:   filter,
		Metrics: []metricView{
			{Label: "Entradas (R$)", Value: formatMoney(report.Summary.TotalIncome)},
			{Label: "Saídas (R$)", Value: formatMoneyAbs(report.Summary.TotalExpense)},
			{Label: "Saldo Final (R$)", Value: formatMoney(report.Summary.NetBalance)},
			{Label: "Dias p/ fim do mês", Value: printer.Sprintf("%d", report.Summary.RemainingDays)},
			{Label: "Saldo/dia restante", Value: formatMoney(report.Summary.DailyAllowance)},
		},
	}
	for _, m := range report.Months {
		view.Months = append(view.Months, m.String())
	}

	// Expense bars scale against the largest magnitude, like the original
	// horizontal bar chart.
	var maxCents int64
	for _, ca := range report.Breakdown {
		if -ca.Amount.Cents > maxCents {
			maxCents = -ca.Amount.Cents
		}
	}
	for _, ca := range report.Breakdown {
		width := 0
		if maxCents > 0 {
			width = int((-ca.Amount.Cents*100 + maxCents/2) / maxCents)
			if width > 0 && width < 2 {
				width = 2
			}
			if width > 100 {
				width = 100
			}
		}
		view.Bars = append(view.Bars, barView{
			Name:   ca.Name,
			Amount: formatMoneyAbs(ca.Amount),
			Width:  width,
		})
	}
	view.HasExpenses = len(view.Bars) > 0

	view.Matrices = []matrixView{
		buildMatrixView("Entradas por dia", report.Cashflow.Days, report.Cashflow.Income),
		buildMatrixView("Saídas por dia", report.Cashflow.Days, report.Cashflow.Expense),
	}

	for i, m := range report.Running {
		view.Running = append(view.Running, pairView{
			Name:  report.Bounds.Days[i].Format("02/01"),
			Value: formatMoney(m),
		})
	}

	view.Averages = sortedPairs(report.AverageExpense)
	view.Deltas = sortedPairs(report.Deltas)

	// Transaction table with the original's per-category filter.
	seen := map[string]bool{}
	var filtered int64
	for _, tx := range report.Transactions {
		if !seen[tx.Category] {
			seen[tx.Category] = true
			view.Categories = append(view.Categories, tx.Category)
		}
		if filter != "" && tx.Category != filter {
			continue
		}
		amount := "—"
		if !tx.AmountMissing {
			amount = formatMoney(tx.Amount)
			filtered += tx.Amount.Cents
		}
		view.Transactions = append(view.Transactions, txView{
			Date:     tx.Date.Format("02/01/2006"),
			Category: tx.Category,
			Amount:   amount,
		})
	}
	sort.Strings(view.Categories)
	view.FilterTotal = formatMoney(core.Money{Cents: filtered})

	return view
}

func buildMatrixView(title string, days []core.Date, rows []core.CashflowRow) matrixView {
	mv := matrixView{Title: title}
	for _, d := range days {
		mv.Days = append(mv.Days, d.Day())
	}
	for _, row := range rows {
		r := matrixRowView{Category: row.Category}
		for _, m := range row.Daily {
			if m.Cents == 0 {
				r.Cells = append(r.Cells, "")
				continue
			}
			r.Cells = append(r.Cells, formatMoney(m))
		}
		mv.Rows = append(mv.Rows, r)
	}
	return mv
}

func sortedPairs(values map[string]core.Money) []pairView {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]pairView, 0, len(names))
	for _, name := range names {
		out = append(out, pairView{Name: name, Value: formatMoney(values[name])})
	}
	return out
}

package http

import (
	"fluxo/internal/core"
	"fluxo/internal/services"
)

// DTOs keep the JSON contract stable and decoupled from core types.
// Amounts are plain signed numbers in currency units with cent precision.
type (
	summaryDTO struct {
		TotalIncome    float64 `json:"total_income"`
		TotalExpense   float64 `json:"total_expense"`
		NetBalance     float64 `json:"net_balance"`
		RemainingDays  int     `json:"remaining_days"`
		DailyAllowance float64 `json:"daily_allowance"`
	}

	categoryAmountDTO struct {
		Category string  `json:"category"`
		Total    float64 `json:"total"`
	}

	cashflowRowDTO struct {
		Category string    `json:"category"`
		Daily    []float64 `json:"daily"`
	}

	transactionDTO struct {
		Date     string   `json:"date"`
		Amount   *float64 `json:"amount"` // null when the source value was unparseable
		Category string   `json:"category"`
	}

	reportDTO struct {
		Month          string              `json:"month"`
		FirstDay       string              `json:"first_day"`
		LastDay        string              `json:"last_day"`
		Summary        summaryDTO          `json:"summary"`
		Breakdown      []categoryAmountDTO `json:"breakdown"`
		Days           []string            `json:"days"`
		IncomeMatrix   []cashflowRowDTO    `json:"income_matrix"`
		ExpenseMatrix  []cashflowRowDTO    `json:"expense_matrix"`
		RunningBalance []float64           `json:"running_balance"`
		AverageExpense map[string]float64  `json:"average_expense"`
		Deltas         map[string]float64  `json:"deltas"`
		Months         []string            `json:"months"`
		Transactions   []transactionDTO    `json:"transactions"`
	}
)

func buildReportDTO(report *services.Report) reportDTO {
	dto := reportDTO{
		Month:    report.Month.String(),
		FirstDay: report.Bounds.First.String(),
		LastDay:  report.Bounds.Last.String(),
		Summary: summaryDTO{
			TotalIncome:    report.Summary.TotalIncome.Units(),
			TotalExpense:   report.Summary.TotalExpense.Units(),
			NetBalance:     report.Summary.NetBalance.Units(),
			RemainingDays:  report.Summary.RemainingDays,
			DailyAllowance: report.Summary.DailyAllowance.Units(),
		},
		Breakdown:      make([]categoryAmountDTO, 0, len(report.Breakdown)),
		Days:           make([]string, 0, len(report.Bounds.Days)),
		IncomeMatrix:   buildMatrixDTO(report.Cashflow.Income),
		ExpenseMatrix:  buildMatrixDTO(report.Cashflow.Expense),
		RunningBalance: make([]float64, 0, len(report.Running)),
		AverageExpense: make(map[string]float64, len(report.AverageExpense)),
		Deltas:         make(map[string]float64, len(report.Deltas)),
		Months:         make([]string, 0, len(report.Months)),
		Transactions:   make([]transactionDTO, 0, len(report.Transactions)),
	}
	for _, ca := range report.Breakdown {
		dto.Breakdown = append(dto.Breakdown, categoryAmountDTO{Category: ca.Name, Total: ca.Amount.Units()})
	}
	for _, d := range report.Bounds.Days {
		dto.Days = append(dto.Days, d.String())
	}
	for _, m := range report.Running {
		dto.RunningBalance = append(dto.RunningBalance, m.Units())
	}
	for category, m := range report.AverageExpense {
		dto.AverageExpense[category] = m.Units()
	}
	for category, m := range report.Deltas {
		dto.Deltas[category] = m.Units()
	}
	for _, m := range report.Months {
		dto.Months = append(dto.Months, m.String())
	}
	for _, tx := range report.Transactions {
		item := transactionDTO{Date: tx.Date.String(), Category: tx.Category}
		if !tx.AmountMissing {
			units := tx.Amount.Units()
			item.Amount = &units
		}
		dto.Transactions = append(dto.Transactions, item)
	}
	return dto
}

func buildMatrixDTO(rows []core.CashflowRow) []cashflowRowDTO {
	out := make([]cashflowRowDTO, 0, len(rows))
	for _, row := range rows {
		daily := make([]float64, 0, len(row.Daily))
		for _, m := range row.Daily {
			daily = append(daily, m.Units())
		}
		out = append(out, cashflowRowDTO{Category: row.Category, Daily: daily})
	}
	return out
}

package core

import "sort"

// MonthlySummary holds the five headline figures for a selected month.
// TotalExpense stays negative; NetBalance = TotalIncome + TotalExpense.
// DailyAllowance projects the net balance over the days still left in the
// period and is zero once the month is over.
type MonthlySummary struct {
	TotalIncome    Money
	TotalExpense   Money
	NetBalance     Money
	RemainingDays  int
	DailyAllowance Money
}

// Summarize computes the monthly summary over the period's transactions.
// Rows with a missing amount are skipped; zero amounts match neither the
// income (> 0) nor the expense (< 0) sign test.
func Summarize(txs []Transaction, remainingDays int) MonthlySummary {
	var income, expense int64
	for _, tx := range txs {
		if tx.AmountMissing {
			continue
		}
		switch {
		case tx.Amount.Cents > 0:
			income += tx.Amount.Cents
		case tx.Amount.Cents < 0:
			expense += tx.Amount.Cents
		}
	}
	net := income + expense
	var allowance int64
	if remainingDays > 0 {
		allowance = divideRound(net, int64(remainingDays))
	}
	return MonthlySummary{
		TotalIncome:    Money{Cents: income},
		TotalExpense:   Money{Cents: expense},
		NetBalance:     Money{Cents: net},
		RemainingDays:  remainingDays,
		DailyAllowance: Money{Cents: allowance},
	}
}

// CategoryBreakdown groups expense transactions (amount < 0) by category and
// returns the signed totals sorted ascending, most negative first. Categories
// without expense activity in the period are omitted. An empty result is a
// valid outcome for a month without expenses.
func CategoryBreakdown(txs []Transaction) []CategoryAmount {
	totals := map[string]int64{}
	for _, tx := range txs {
		if tx.AmountMissing || tx.Amount.Cents >= 0 {
			continue
		}
		totals[tx.Category] += tx.Amount.Cents
	}
	out := make([]CategoryAmount, 0, len(totals))
	for name, cents := range totals {
		out = append(out, CategoryAmount{Name: name, Amount: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount.Cents != out[j].Amount.Cents {
			return out[i].Amount.Cents < out[j].Amount.Cents
		}
		return out[i].Name < out[j].Name
	})
	return out
}

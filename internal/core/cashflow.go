package core

import "sort"

type (
	// CashflowRow is one category's signed daily sums, aligned with the
	// period's day sequence.
	CashflowRow struct {
		Category string
		Daily    []Money
	}

	// CashflowMatrix splits the period's categories into entries and exits.
	// A category lands on the income side only when its net sum over the
	// period is positive; exact-zero categories count as expenses.
	CashflowMatrix struct {
		Days    []Date
		Income  []CashflowRow
		Expense []CashflowRow
	}
)

// Cashflow builds both per-category daily matrices in a single grouped pass
// over the period's transactions, keyed by (category, day).
func Cashflow(txs []Transaction, bounds PeriodBounds) CashflowMatrix {
	type key struct {
		category string
		day      int // 1-based day of month
	}
	daily := map[key]int64{}
	nets := map[string]int64{}
	for _, tx := range txs {
		if tx.AmountMissing {
			continue
		}
		daily[key{tx.Category, tx.Date.Day()}] += tx.Amount.Cents
		nets[tx.Category] += tx.Amount.Cents
	}

	var income, expense []string
	for category, net := range nets {
		if net > 0 {
			income = append(income, category)
		} else {
			expense = append(expense, category)
		}
	}
	sort.Strings(income)
	sort.Strings(expense)

	build := func(categories []string) []CashflowRow {
		rows := make([]CashflowRow, 0, len(categories))
		for _, category := range categories {
			row := CashflowRow{Category: category, Daily: make([]Money, len(bounds.Days))}
			for i, d := range bounds.Days {
				row.Daily[i] = Money{Cents: daily[key{category, d.Day()}]}
			}
			rows = append(rows, row)
		}
		return rows
	}

	return CashflowMatrix{
		Days:    bounds.Days,
		Income:  build(income),
		Expense: build(expense),
	}
}

// RunningBalance returns, for each day of the period, the cumulative sum of
// all period transactions dated up to and including that day. The balance
// starts from zero at the period's first day; prior months never carry over.
func RunningBalance(txs []Transaction, bounds PeriodBounds) []Money {
	perDay := make([]int64, len(bounds.Days))
	for _, tx := range txs {
		if tx.AmountMissing {
			continue
		}
		idx := tx.Date.Day() - 1
		if idx < 0 || idx >= len(perDay) {
			continue
		}
		perDay[idx] += tx.Amount.Cents
	}
	out := make([]Money, len(perDay))
	var running int64
	for i, cents := range perDay {
		running += cents
		out[i] = Money{Cents: running}
	}
	return out
}

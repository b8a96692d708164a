package core

import "sort"

// AverageExpenseByCategory returns, per category, the mean absolute amount of
// its expense transactions across the entire dataset. The result is never
// negative and is not scoped to any period.
func AverageExpenseByCategory(txs []Transaction) map[string]Money {
	sums := map[string]int64{}
	counts := map[string]int64{}
	for _, tx := range txs {
		if tx.AmountMissing || tx.Amount.Cents >= 0 {
			continue
		}
		sums[tx.Category] += -tx.Amount.Cents
		counts[tx.Category]++
	}
	out := make(map[string]Money, len(sums))
	for category, sum := range sums {
		out[category] = Money{Cents: divideRound(sum, counts[category])}
	}
	return out
}

// MonthOverMonthDelta computes, for every month with data and every category
// with expenses in it, the signed difference of that category's expense total
// against the chronologically previous month that has data. Months without
// any transactions are skipped, not zero-filled, so the predecessor is not
// necessarily calendar-adjacent. The earliest month has no predecessor and
// all of its deltas are zero. A category absent from the predecessor compares
// against zero.
func MonthOverMonthDelta(txs []Transaction) map[Month]map[string]Money {
	totals := map[Month]map[string]int64{}
	for _, tx := range txs {
		if tx.AmountMissing || tx.Amount.Cents >= 0 {
			continue
		}
		m := tx.Date.MonthOf()
		if totals[m] == nil {
			totals[m] = map[string]int64{}
		}
		totals[m][tx.Category] += tx.Amount.Cents
	}

	out := make(map[Month]map[string]Money, len(totals))
	for _, m := range MonthsWithData(txs) {
		monthTotals, ok := totals[m]
		if !ok {
			// Month present in the dataset but without expense rows.
			out[m] = map[string]Money{}
			continue
		}
		out[m] = make(map[string]Money, len(monthTotals))
		for category := range monthTotals {
			out[m][category] = Money{}
		}
	}

	months := make([]Month, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	for i, m := range months {
		if i == 0 {
			continue // first month: delta stays zero
		}
		prev := totals[months[i-1]]
		for category, total := range totals[m] {
			out[m][category] = Money{Cents: total - prev[category]}
		}
	}
	return out
}

// MonthsWithData lists the distinct months that appear in the dataset,
// sorted chronologically.
func MonthsWithData(txs []Transaction) []Month {
	seen := map[Month]bool{}
	var months []Month
	for _, tx := range txs {
		m := tx.Date.MonthOf()
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

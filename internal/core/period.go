package core

import (
	"github.com/jinzhu/now"
)

// PeriodBounds describes a calendar month: its first and last day plus the
// ordered sequence of every day in between, inclusive.
type PeriodBounds struct {
	First Date
	Last  Date
	Days  []Date
}

// MonthBounds derives the calendar boundaries of the given month.
func MonthBounds(m Month) PeriodBounds {
	first := NewDate(m.Year, m.Month, 1)
	last := DateOf(now.New(first.Time).EndOfMonth())
	days := make([]Date, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		days = append(days, NewDate(m.Year, m.Month, d))
	}
	return PeriodBounds{First: first, Last: last, Days: days}
}

// RemainingDays returns how many days of the period are left relative to
// today, counting today itself. A month strictly in the past has none left;
// a month strictly in the future has all of them.
func RemainingDays(b PeriodBounds, today Date) int {
	period := b.First.MonthOf()
	current := today.MonthOf()
	switch {
	case period.Before(current):
		return 0
	case current.Before(period):
		return len(b.Days)
	}
	remaining := b.Last.Day() - today.Day() + 1
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SelectPeriod filters transactions into the given month. A month with zero
// matching transactions is a legitimate empty period, not an error.
func SelectPeriod(txs []Transaction, m Month) (PeriodBounds, []Transaction) {
	bounds := MonthBounds(m)
	var filtered []Transaction
	for _, tx := range txs {
		if !tx.Date.Before(bounds.First.Time) && !tx.Date.After(bounds.Last.Time) {
			filtered = append(filtered, tx)
		}
	}
	return bounds, filtered
}

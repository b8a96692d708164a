package core

import (
	"testing"
	"time"
)

func TestAverageExpenseByCategory(t *testing.T) {
	txs := []Transaction{
		{Date: NewDate(2024, time.January, 1), Amount: Money{Cents: -1000}, Category: "Food"},
		{Date: NewDate(2024, time.February, 1), Amount: Money{Cents: -3000}, Category: "Food"},
		{Date: NewDate(2024, time.January, 2), Amount: Money{Cents: -500}, Category: "Transport"},
		{Date: NewDate(2024, time.January, 3), Amount: Money{Cents: 100000}, Category: "Salary"},
		{Date: NewDate(2024, time.January, 4), AmountMissing: true, Category: "Food"},
	}
	got := AverageExpenseByCategory(txs)

	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %+v", got)
	}
	if got["Food"].Cents != 2000 { // mean of 10.00 and 30.00
		t.Fatalf("Food average: got %d", got["Food"].Cents)
	}
	if got["Transport"].Cents != 500 {
		t.Fatalf("Transport average: got %d", got["Transport"].Cents)
	}
	for name, m := range got {
		if m.Cents < 0 {
			t.Fatalf("average for %s is negative: %d", name, m.Cents)
		}
	}
	if _, ok := got["Salary"]; ok {
		t.Fatalf("income category must not appear in expense averages")
	}
}

func TestMonthOverMonthDelta(t *testing.T) {
	txs := []Transaction{
		// January
		{Date: NewDate(2024, time.January, 5), Amount: Money{Cents: -10000}, Category: "Rent"},
		{Date: NewDate(2024, time.January, 6), Amount: Money{Cents: -2000}, Category: "Food"},
		// February: rent up, food gone, leisure appears
		{Date: NewDate(2024, time.February, 5), Amount: Money{Cents: -12000}, Category: "Rent"},
		{Date: NewDate(2024, time.February, 7), Amount: Money{Cents: -1500}, Category: "Leisure"},
		// March has no transactions at all; April compares against February.
		{Date: NewDate(2024, time.April, 5), Amount: Money{Cents: -11000}, Category: "Rent"},
	}
	deltas := MonthOverMonthDelta(txs)

	jan := deltas[Month{2024, time.January}]
	for category, m := range jan {
		if m.Cents != 0 {
			t.Fatalf("first month delta for %s must be 0, got %d", category, m.Cents)
		}
	}
	if len(jan) != 2 {
		t.Fatalf("january categories: %+v", jan)
	}

	feb := deltas[Month{2024, time.February}]
	if feb["Rent"].Cents != -2000 { // -120.00 vs -100.00
		t.Fatalf("february rent delta: got %d", feb["Rent"].Cents)
	}
	if feb["Leisure"].Cents != -1500 { // new category compares against zero
		t.Fatalf("february leisure delta: got %d", feb["Leisure"].Cents)
	}

	apr := deltas[Month{2024, time.April}]
	if apr["Rent"].Cents != 1000 { // -110.00 vs February's -120.00, gap month skipped
		t.Fatalf("april rent delta: got %d", apr["Rent"].Cents)
	}
	if _, ok := deltas[Month{2024, time.March}]; ok {
		t.Fatalf("gap month must not appear in deltas")
	}
}

func TestMonthsWithData(t *testing.T) {
	txs := []Transaction{
		{Date: NewDate(2024, time.March, 1), Amount: Money{Cents: 1}, Category: "A"},
		{Date: NewDate(2024, time.January, 1), Amount: Money{Cents: 1}, Category: "A"},
		{Date: NewDate(2024, time.March, 15), Amount: Money{Cents: 1}, Category: "A"},
	}
	months := MonthsWithData(txs)
	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %+v", months)
	}
	if months[0] != (Month{2024, time.January}) || months[1] != (Month{2024, time.March}) {
		t.Fatalf("months not sorted: %+v", months)
	}
}

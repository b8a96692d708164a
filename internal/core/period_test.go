package core

import (
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		month Month
		first string
		last  string
		days  int
	}{
		{Month{2024, time.January}, "2024-01-01", "2024-01-31", 31},
		{Month{2024, time.February}, "2024-02-01", "2024-02-29", 29}, // leap year
		{Month{2023, time.February}, "2023-02-01", "2023-02-28", 28},
		{Month{2024, time.April}, "2024-04-01", "2024-04-30", 30},
		{Month{2024, time.December}, "2024-12-01", "2024-12-31", 31},
	}
	for _, tc := range cases {
		b := MonthBounds(tc.month)
		if b.First.String() != tc.first || b.Last.String() != tc.last {
			t.Fatalf("%v bounds: got %s..%s, want %s..%s", tc.month, b.First, b.Last, tc.first, tc.last)
		}
		if len(b.Days) != tc.days {
			t.Fatalf("%v days: got %d, want %d", tc.month, len(b.Days), tc.days)
		}
		if b.Days[0] != b.First || b.Days[len(b.Days)-1] != b.Last {
			t.Fatalf("%v day sequence does not span bounds", tc.month)
		}
	}
}

func TestRemainingDays(t *testing.T) {
	jan := MonthBounds(Month{2024, time.January})
	cases := []struct {
		name  string
		today Date
		want  int
	}{
		{"current month mid-way", NewDate(2024, time.January, 15), 17}, // (31-15)+1
		{"current month first day", NewDate(2024, time.January, 1), 31},
		{"current month last day", NewDate(2024, time.January, 31), 1},
		{"past month", NewDate(2024, time.March, 10), 0},
		{"future month", NewDate(2023, time.November, 5), 31},
	}
	for _, tc := range cases {
		if got := RemainingDays(jan, tc.today); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestSelectPeriod(t *testing.T) {
	txs := []Transaction{
		{Date: NewDate(2023, time.December, 31), Amount: Money{Cents: 100}, Category: "A"},
		{Date: NewDate(2024, time.January, 1), Amount: Money{Cents: 200}, Category: "B"},
		{Date: NewDate(2024, time.January, 31), Amount: Money{Cents: 300}, Category: "C"},
		{Date: NewDate(2024, time.February, 1), Amount: Money{Cents: 400}, Category: "D"},
	}
	bounds, filtered := SelectPeriod(txs, Month{2024, time.January})
	if bounds.First.String() != "2024-01-01" {
		t.Fatalf("unexpected bounds: %s", bounds.First)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 transactions in period, got %d", len(filtered))
	}
	if filtered[0].Category != "B" || filtered[1].Category != "C" {
		t.Fatalf("wrong transactions selected: %+v", filtered)
	}
}

func TestSelectPeriodEmptyMonth(t *testing.T) {
	txs := []Transaction{
		{Date: NewDate(2024, time.January, 5), Amount: Money{Cents: 100}, Category: "A"},
	}
	_, filtered := SelectPeriod(txs, Month{2024, time.June})
	if len(filtered) != 0 {
		t.Fatalf("expected empty period, got %d transactions", len(filtered))
	}
}

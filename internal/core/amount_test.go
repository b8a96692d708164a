package core

import "testing"

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0", 0, true}, // zero is a valid amount
		{"0,00", 0, true},
		{"-200", -20000, true},
		{"-1.200,50", -120050, true},
		{"+2,50", 250, true},
		{"1.234,56", 123456, true},   // locale grouping
		{"1234.56", 123456, true},    // plain decimal
		{"12.34.56", 123456, true},   // all dots but the last are grouping
		{"1.234.567,89", 123456789, true},
		{"R$ 10,00", 1000, true},
		{" 2.50 ", 250, true},
		{"1.005", 101, true}, // half-up rounding on the third decimal
		{"1.004", 100, true},
		{"abc", 0, false},
		{"1,2,3", 0, false},
		{"", 0, false},
		{".", 0, false},
		{"--1", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmountToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error, got %d", tc.in, got)
			}
		}
	}
}

func TestDivideRound(t *testing.T) {
	cases := []struct {
		cents, n, out int64
	}{
		{75000, 17, 4412}, // 4411.76 rounds up
		{100, 3, 33},
		{-100, 3, -33},
		{-75000, 17, -4412},
		{50, 100, 1}, // half rounds away from zero
		{0, 5, 0},
		{100, 0, 0}, // division by zero short-circuits
	}
	for _, tc := range cases {
		if got := divideRound(tc.cents, tc.n); got != tc.out {
			t.Fatalf("divideRound(%d, %d) expected %d, got %d", tc.cents, tc.n, tc.out, got)
		}
	}
}

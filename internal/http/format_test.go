package http

import (
	"testing"

	"fluxo/internal/core"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		cents int64
		out   string
	}{
		{123456, "1.234,56"},
		{-123456, "-1.234,56"},
		{0, "0,00"},
		{100, "1,00"},
		{4412, "44,12"},
		{123456789, "1.234.567,89"},
	}
	for _, tc := range cases {
		if got := formatMoney(core.Money{Cents: tc.cents}); got != tc.out {
			t.Fatalf("%d cents: got %q, want %q", tc.cents, got, tc.out)
		}
	}
}

func TestFormatMoneyAbs(t *testing.T) {
	if got := formatMoneyAbs(core.Money{Cents: -25000}); got != "250,00" {
		t.Fatalf("got %q", got)
	}
	if got := formatMoneyAbs(core.Money{Cents: 25000}); got != "250,00" {
		t.Fatalf("got %q", got)
	}
}

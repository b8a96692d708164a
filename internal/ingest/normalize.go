package ingest

import (
	"strings"
	"time"

	"fluxo/internal/core"
)

// dateLayouts are tried in order. Day-first layouts come before the ISO
// fallbacks so "31/01/2024" reads as 31 January, never month 31.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"02/01/2006 15:04:05",
	"02/01/06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Normalize maps raw rows onto core transactions. The first row carries the
// headers used for column resolution. The two value fields have asymmetric
// discard policies: a row with an unparseable date is excluded entirely,
// while an unparseable amount keeps the row with a missing amount that no
// sum will count. Returns core.ErrEmptyDataset when no row survives.
func Normalize(rows [][]string, hints Hints) ([]core.Transaction, error) {
	if len(rows) == 0 {
		return nil, core.ErrEmptyDataset
	}
	cols, err := ResolveColumns(rows[0], hints)
	if err != nil {
		return nil, err
	}

	var txs []core.Transaction
	for _, row := range rows[1:] {
		date, ok := parseDayFirst(cell(row, cols.Date))
		if !ok {
			continue
		}
		tx := core.Transaction{
			Date:     date,
			Category: strings.TrimSpace(cell(row, cols.Category)),
		}
		cents, err := core.ParseAmountToCents(cell(row, cols.Amount))
		if err != nil {
			tx.AmountMissing = true
		} else {
			tx.Amount = core.Money{Cents: cents}
		}
		txs = append(txs, tx)
	}
	if len(txs) == 0 {
		return nil, core.ErrEmptyDataset
	}
	return txs, nil
}

// parseDayFirst parses a day-first locale date, truncating any time part.
func parseDayFirst(s string) (core.Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return core.DateOf(t), true
		}
	}
	return core.Date{}, false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

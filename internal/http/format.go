package http

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"fluxo/internal/core"
)

// Display formatting for money follows the source locale: period as
// thousands separator, comma as decimal separator, always two fraction
// digits. The core never formats anything; only this layer does.
var printer = message.NewPrinter(language.BrazilianPortuguese)

// formatMoney renders signed cents, e.g. -123456 -> "-1.234,56".
func formatMoney(m core.Money) string {
	return printer.Sprintf("%v", number.Decimal(m.Units(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// formatMoneyAbs renders the magnitude, used where the sign is implied by
// the table the figure sits in.
func formatMoneyAbs(m core.Money) string {
	if m.Cents < 0 {
		m = core.Money{Cents: -m.Cents}
	}
	return formatMoney(m)
}

// Package currency renders price amounts for display. Every price-bearing
// surface (theme pages, POS panel, availability API) goes through Format so the
// grouping and symbol placement stay consistent.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// symbols maps ISO 4217 codes to the trailing display symbol.
var symbols = map[string]string{
	"SAR": "ر.س",
	"AED": "د.إ",
	"KWD": "د.ك",
	"QAR": "ر.ق",
	"EGP": "ج.م",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

var printer = message.NewPrinter(language.English)

// Format renders an amount as grouped two-decimal text with a trailing
// currency symbol, e.g. Format(1234.5, "SAR") == "1,234.50 ر.س".
// Unknown codes keep the code itself as the symbol rather than failing.
func Format(amount float64, code string) string {
	n := printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return n + " " + Symbol(code)
}

// FormatDecimal is Format for derived decimal amounts (cart and order totals).
func FormatDecimal(d decimal.Decimal, code string) string {
	return Format(d.InexactFloat64(), code)
}

// Symbol returns the display symbol for a currency code, or the code itself
// when it is not in the table.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

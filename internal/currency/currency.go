// Package currency renders amounts for display. Symbols and fraction
// digits come from the go-money currency registry, so JPY renders with
// no decimals while USD keeps two.
package currency

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// Format renders amount for the given ISO 4217 code. numberFormat "dot"
// groups thousands with commas (1,234.56); "comma" is the reverse
// (1.234,56). Unknown codes fall back to a dollar sign with two
// decimals.
func Format(amount float64, code, numberFormat string) string {
	symbol, fraction := "$", 2
	if c := money.GetCurrency(code); c != nil {
		symbol = c.Grapheme
		fraction = c.Fraction
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	fixed := strconv.FormatFloat(amount, 'f', fraction, 64)
	intPart, decPart, _ := strings.Cut(fixed, ".")

	groupSep, decimalSep := ",", "."
	if numberFormat == "comma" {
		groupSep, decimalSep = ".", ","
	}

	grouped := groupThousands(intPart, groupSep)
	if decPart == "" {
		return sign + symbol + grouped
	}
	return sign + symbol + grouped + decimalSep + decPart
}

func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Package money formatea importes para recibos y respuestas de la API.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// symbols por código ISO; un código sin entrada se muestra tal cual.
var symbols = map[string]string{
	"BRL": "R$",
	"USD": "US$",
	"EUR": "€",
}

// Format devuelve el importe con separadores pt-BR y dos decimales, p. ej. "R$ 1.234,56".
func Format(amount decimal.Decimal, currency string) string {
	sym, ok := symbols[currency]
	if !ok {
		sym = currency
		if sym == "" {
			sym = "R$"
		}
	}
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + sym + " " + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// BRL atajo para Format(amount, "BRL").
func BRL(amount decimal.Decimal) string {
	return Format(amount, "BRL")
}

package money

import "github.com/shopspring/decimal"

// Escalas de punto fijo usadas en todos los cálculos monetarios:
// 2 decimales para moneda, 4 para razones intermedias de porcentaje.
const (
	CurrencyScale = 2
	RatioScale    = 4
)

var hundred = decimal.NewFromInt(100)

// Round redondea half-up a 2 decimales (escala de moneda).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyScale)
}

// Ratio devuelve num/den redondeado half-up a 4 decimales.
// Definido como cero cuando den es cero: la división por cero nunca
// llega al caller como error.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.DivRound(den, RatioScale)
}

// Percentage devuelve (num/den)*100 redondeado half-up a 2 decimales;
// cero cuando den es cero.
func Percentage(num, den decimal.Decimal) decimal.Decimal {
	return Ratio(num, den).Mul(hundred).Round(CurrencyScale)
}

// PercentOf devuelve amount*pct/100 redondeado a 2 decimales.
func PercentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).DivRound(hundred, CurrencyScale)
}

// ApplyPercentOff devuelve amount*(1 - pct/100) redondeado a 2 decimales.
// pct negativo incrementa el monto (recargo sobre catálogo).
func ApplyPercentOff(amount, pct decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(pct.DivRound(hundred, RatioScale+CurrencyScale))
	return amount.Mul(factor).Round(CurrencyScale)
}

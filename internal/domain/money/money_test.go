package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/atelier-soft/joyeria-api/internal/domain/money"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Percentage — razón a 4 decimales, resultado a 2, guarda contra división por cero
// ──────────────────────────────────────────────────────────────────────────────

func TestPercentage_EscenarioVenta(t *testing.T) {
	// Descuento de 6.00 sobre un total sugerido de 86.00 → 6.98%
	got := money.Percentage(dec("6.00"), dec("86.00"))
	assert.True(t, dec("6.98").Equal(got), "esperado 6.98, obtenido %s", got)
}

func TestPercentage_DenominadorCero_DevuelveCero(t *testing.T) {
	// La división por cero nunca es un error: se define como cero.
	got := money.Percentage(dec("10.00"), decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestPercentage_NumeradorNegativo(t *testing.T) {
	// Venta por encima del catálogo → porcentaje negativo (recargo).
	got := money.Percentage(dec("-5.00"), dec("100.00"))
	assert.True(t, dec("-5.00").Equal(got))
}

func TestPercentage_RedondeoHalfUp(t *testing.T) {
	// 1/3 = 0.3333 → 33.33%
	got := money.Percentage(dec("1"), dec("3"))
	assert.True(t, dec("33.33").Equal(got), "obtenido %s", got)

	// 2/3 = 0.6667 (half-up en el cuarto decimal) → 66.67%
	got = money.Percentage(dec("2"), dec("3"))
	assert.True(t, dec("66.67").Equal(got), "obtenido %s", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Round / PercentOf / ApplyPercentOff
// ──────────────────────────────────────────────────────────────────────────────

func TestRound_HalfUp(t *testing.T) {
	assert.True(t, dec("10.13").Equal(money.Round(dec("10.125"))))
	assert.True(t, dec("10.12").Equal(money.Round(dec("10.124"))))
}

func TestPercentOf(t *testing.T) {
	got := money.PercentOf(dec("200.00"), dec("19"))
	assert.True(t, dec("38.00").Equal(got))
}

func TestApplyPercentOff_Descuento(t *testing.T) {
	got := money.ApplyPercentOff(dec("100.00"), dec("25"))
	assert.True(t, dec("75.00").Equal(got))
}

func TestApplyPercentOff_PorcentajeNegativoIncrementa(t *testing.T) {
	got := money.ApplyPercentOff(dec("100.00"), dec("-10"))
	assert.True(t, dec("110.00").Equal(got))
}

func TestApplyPercentOff_Idempotente(t *testing.T) {
	// Función pura: el mismo input produce siempre el mismo resultado.
	a := money.ApplyPercentOff(dec("42.50"), dec("6.98"))
	b := money.ApplyPercentOff(dec("42.50"), dec("6.98"))
	assert.True(t, a.Equal(b))
}

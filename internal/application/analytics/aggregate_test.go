package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func venta(suggested, final, pct string) *entity.Sale {
	return &entity.Sale{
		SuggestedTotalPrice: d(suggested),
		FinalTotalPrice:     d(final),
		DiscountPercentage:  d(pct),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Summarize
// ─────────────────────────────────────────────────────────────────────────────

func TestSummarize_ConjuntoVacioDevuelveCeros(t *testing.T) {
	out := Summarize(nil)

	assert.Equal(t, 0, out.SaleCount)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.AverageOrderValue.IsZero(), "sin ventas no debe dividir por cero")
	assert.True(t, out.TotalDiscountAmount.IsZero())
	assert.True(t, out.AverageDiscountPct.IsZero())
}

func TestSummarize_AgregaIngresoDescuentoYPromedios(t *testing.T) {
	sales := []*entity.Sale{
		venta("100.00", "90.00", "10.00"),
		venta("50.00", "50.00", "0.00"),
		venta("86.00", "80.00", "6.98"),
	}

	out := Summarize(sales)

	require.Equal(t, 3, out.SaleCount)
	assert.True(t, out.TotalRevenue.Equal(d("220.00")), "ingreso = %s", out.TotalRevenue)
	// descuento otorgado = Σ(sugerido − final) = 10 + 0 + 6
	assert.True(t, out.TotalDiscountAmount.Equal(d("16.00")), "descuento = %s", out.TotalDiscountAmount)
	// ticket promedio = 220/3 = 73.33 (half-up a centavos)
	assert.True(t, out.AverageOrderValue.Equal(d("73.33")), "ticket = %s", out.AverageOrderValue)
	// pct promedio = (10 + 0 + 6.98)/3 = 5.66
	assert.True(t, out.AverageDiscountPct.Equal(d("5.66")), "pct = %s", out.AverageDiscountPct)
}

func TestSummarize_RecargoRestaDelDescuentoTotal(t *testing.T) {
	// Una venta por encima del sugerido (recargo) aporta descuento negativo.
	sales := []*entity.Sale{
		venta("100.00", "110.00", "-10.00"),
		venta("100.00", "90.00", "10.00"),
	}

	out := Summarize(sales)

	assert.True(t, out.TotalDiscountAmount.IsZero(), "descuento neto = %s", out.TotalDiscountAmount)
	assert.True(t, out.AverageDiscountPct.IsZero())
}

// ─────────────────────────────────────────────────────────────────────────────
// averageOf
// ─────────────────────────────────────────────────────────────────────────────

func TestAverageOf_GuardaDeCero(t *testing.T) {
	assert.True(t, averageOf(d("100.00"), 0).IsZero())
	assert.True(t, averageOf(d("100.00"), 3).Equal(d("33.33")))
}

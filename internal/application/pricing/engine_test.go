package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-soft/joyeria-api/internal/application/pricing"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func testConfig() pricing.Config {
	return pricing.Config{MaxDiscountPct: dec("50")}
}

func product(id, name, retail, wholesale string) *entity.Product {
	return &entity.Product{
		ID:                         id,
		Name:                       name,
		FinalSellingPriceRetail:    dec(retail),
		FinalSellingPriceWholesale: dec(wholesale),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo precio final — el operador ingresa cuánto cobró realmente
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_EscenarioReferencia(t *testing.T) {
	// Una línea (42.50 × 2) + empaque 1.00 → subtotal 85.00, sugerido 86.00.
	// Precio final 80.00 → descuento 6.00 = 6.98%.
	in := pricing.Input{
		Lines:         []pricing.Line{{Product: product("p1", "Anillo oro 18k", "42.50", "30.60"), Quantity: 2}},
		PackagingCost: dec("1.00"),
		FinalPrice:    ptr(dec("80.00")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)

	assert.True(t, dec("85.00").Equal(res.Subtotal), "subtotal: %s", res.Subtotal)
	assert.True(t, dec("86.00").Equal(res.SuggestedGrandTotal))
	assert.True(t, dec("6.00").Equal(res.DiscountAmount))
	assert.True(t, dec("6.98").Equal(res.DiscountPercentage), "descuento: %s", res.DiscountPercentage)

	// Prorrateo: 42.50 × (1 − 0.0698) = 39.5335 → 39.53 half-up.
	require.Len(t, res.Lines, 1)
	assert.True(t, dec("42.50").Equal(res.Lines[0].SuggestedUnitPrice))
	assert.True(t, dec("39.53").Equal(res.Lines[0].ActualUnitPrice), "precio línea: %s", res.Lines[0].ActualUnitPrice)
}

func TestCompute_SinDescuento_PorcentajeCero(t *testing.T) {
	// finalPrice == sugerido → descuento exactamente 0.
	in := pricing.Input{
		Lines:      []pricing.Line{{Product: product("p1", "Cadena plata", "120.00", "95.00"), Quantity: 1}},
		FinalPrice: ptr(dec("120.00")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)
	assert.True(t, res.DiscountPercentage.IsZero())
	assert.True(t, dec("120.00").Equal(res.Lines[0].ActualUnitPrice))
}

func TestCompute_SugeridoCero_DescuentoCero(t *testing.T) {
	// Total sugerido cero → el porcentaje se define como cero (guarda), no error.
	in := pricing.Input{
		Lines:      []pricing.Line{{Product: product("p1", "Muestra", "0.00", "0.00"), Quantity: 1}},
		FinalPrice: ptr(dec("0.00")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)
	assert.True(t, res.DiscountPercentage.IsZero())
}

func TestCompute_FlagMayorista_TomaPrecioMayorista(t *testing.T) {
	in := pricing.Input{
		Lines:       []pricing.Line{{Product: product("p1", "Aretes", "50.00", "38.00"), Quantity: 1}},
		IsWholesale: true,
		FinalPrice:  ptr(dec("38.00")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)
	assert.True(t, dec("38.00").Equal(res.Lines[0].SuggestedUnitPrice))
	assert.True(t, res.DiscountPercentage.IsZero())
}

func TestCompute_RecargoSobreCatalogo_PorcentajeNegativo(t *testing.T) {
	// Cobrar por encima del catálogo produce un porcentaje negativo, permitido
	// dentro de la magnitud máxima configurada.
	in := pricing.Input{
		Lines:      []pricing.Line{{Product: product("p1", "Dije", "100.00", "80.00"), Quantity: 1}},
		FinalPrice: ptr(dec("110.00")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)
	assert.True(t, dec("-10.00").Equal(res.DiscountPercentage))
	assert.True(t, dec("110.00").Equal(res.Lines[0].ActualUnitPrice))
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo porcentaje de descuento — el operador ingresa el descuento directamente
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_ModoDescuento_DerivaPrecioFinal(t *testing.T) {
	in := pricing.Input{
		Lines:              []pricing.Line{{Product: product("p1", "Pulsera", "200.00", "150.00"), Quantity: 1}},
		DiscountPercentage: ptr(dec("25")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)
	assert.True(t, dec("150.00").Equal(res.FinalPrice))
	assert.True(t, dec("150.00").Equal(res.Lines[0].ActualUnitPrice))
}

func TestCompute_IdaYVuelta_ReproduceElDescuento(t *testing.T) {
	// Modo descuento → la recomputación en modo precio final sobre el resultado
	// reproduce el mismo porcentaje (dentro de la holgura de un centavo).
	prod := product("p1", "Anillo oro 18k", "42.50", "30.60")
	byPct := pricing.Input{
		Lines:              []pricing.Line{{Product: prod, Quantity: 2}},
		PackagingCost:      dec("1.00"),
		DiscountPercentage: ptr(dec("6.98")),
	}
	res1, err := pricing.Compute(byPct, testConfig())
	require.NoError(t, err)

	byFinal := pricing.Input{
		Lines:         []pricing.Line{{Product: prod, Quantity: 2}},
		PackagingCost: dec("1.00"),
		FinalPrice:    ptr(res1.FinalPrice),
	}
	res2, err := pricing.Compute(byFinal, testConfig())
	require.NoError(t, err)

	diff := res1.DiscountPercentage.Sub(res2.DiscountPercentage).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.02")),
		"ida %s vs vuelta %s", res1.DiscountPercentage, res2.DiscountPercentage)
}

// ──────────────────────────────────────────────────────────────────────────────
// Holgura de redondeo por línea — comportamiento preservado intencionalmente
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_RedondeoIndependientePorLinea(t *testing.T) {
	// Tres líneas con precios que no dividen exacto: la suma de los totales de
	// línea redondeados puede diferir del precio final ingresado por unos
	// centavos. La holgura se acepta y NO se redistribuye en una línea resto.
	in := pricing.Input{
		Lines: []pricing.Line{
			{Product: product("p1", "Anillo", "33.33", "25.00"), Quantity: 3},
			{Product: product("p2", "Dije", "17.77", "12.00"), Quantity: 2},
			{Product: product("p3", "Arete", "9.99", "7.00"), Quantity: 1},
		},
		FinalPrice: ptr(dec("130.00")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)

	lineSum := decimal.Zero
	for _, l := range res.Lines {
		lineSum = lineSum.Add(l.ActualUnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	slack := lineSum.Sub(res.FinalPrice).Abs()
	assert.True(t, slack.LessThanOrEqual(dec("0.10")),
		"la holgura debe ser de centavos: suma líneas %s vs final %s", lineSum, res.FinalPrice)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones — se rechazan antes de cualquier aritmética
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_CarritoVacio_Rechazado(t *testing.T) {
	_, err := pricing.Compute(pricing.Input{FinalPrice: ptr(dec("10.00"))}, testConfig())
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCompute_CantidadNoPositiva_Rechazada(t *testing.T) {
	in := pricing.Input{
		Lines:      []pricing.Line{{Product: product("p1", "Anillo", "10.00", "8.00"), Quantity: 0}},
		FinalPrice: ptr(dec("10.00")),
	}
	_, err := pricing.Compute(in, testConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_AmbosModos_Rechazado(t *testing.T) {
	in := pricing.Input{
		Lines:              []pricing.Line{{Product: product("p1", "Anillo", "10.00", "8.00"), Quantity: 1}},
		FinalPrice:         ptr(dec("9.00")),
		DiscountPercentage: ptr(dec("10")),
	}
	_, err := pricing.Compute(in, testConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_NingunModo_Rechazado(t *testing.T) {
	in := pricing.Input{
		Lines: []pricing.Line{{Product: product("p1", "Anillo", "10.00", "8.00"), Quantity: 1}},
	}
	_, err := pricing.Compute(in, testConfig())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompute_DescuentoExcesivo_Rechazado(t *testing.T) {
	in := pricing.Input{
		Lines:      []pricing.Line{{Product: product("p1", "Anillo", "100.00", "80.00"), Quantity: 1}},
		FinalPrice: ptr(dec("10.00")), // 90% de descuento, máximo 50%
	}
	_, err := pricing.Compute(in, testConfig())
	assert.ErrorIs(t, err, domain.ErrDiscountOutOfRange)
}

func TestCompute_RecargoExcesivo_Rechazado(t *testing.T) {
	// La cota aplica también en la dirección negativa (recargo).
	in := pricing.Input{
		Lines:              []pricing.Line{{Product: product("p1", "Anillo", "100.00", "80.00"), Quantity: 1}},
		DiscountPercentage: ptr(dec("-60")),
	}
	_, err := pricing.Compute(in, testConfig())
	assert.ErrorIs(t, err, domain.ErrDiscountOutOfRange)
}

// Propiedad: Σ lineSuggestedTotal + empaque == sugerido, exacto (sin pérdida
// de redondeo: precios unitarios y empaque ya son valores de 2 decimales).
func TestCompute_SubtotalExacto(t *testing.T) {
	in := pricing.Input{
		Lines: []pricing.Line{
			{Product: product("p1", "Anillo", "42.50", "30.00"), Quantity: 2},
			{Product: product("p2", "Dije", "17.77", "12.00"), Quantity: 3},
		},
		PackagingCost: dec("2.50"),
		FinalPrice:    ptr(dec("140.81")),
	}
	res, err := pricing.Compute(in, testConfig())
	require.NoError(t, err)
	want := dec("42.50").Mul(dec("2")).Add(dec("17.77").Mul(dec("3"))).Add(dec("2.50"))
	assert.True(t, want.Equal(res.SuggestedGrandTotal))
}

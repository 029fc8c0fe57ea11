package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/costing"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func testConfig() costing.Config {
	return costing.Config{
		HourlyRate:              dec("20.00"),
		RetailMarkup:            dec("2.5"),
		WholesaleMarkup:         dec("1.8"),
		UnderpricedThresholdPct: dec("-10.00"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Calculate — costo = materiales + mano de obra + procedimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_EscenarioCompleto(t *testing.T) {
	// materiales 10.00 + mano de obra 5.00 (15 min a 20/h) + procedimientos 2.00 = 17.00
	// retail sugerido = 17.00 × 2.5 = 42.50
	p := &entity.Product{
		MinutesToMake: 15,
		Materials: []entity.ProductMaterial{
			{MaterialID: "m1", Quantity: dec("2")},
			{MaterialID: "m2", Quantity: dec("1")},
		},
		Procedures: []entity.ProductProcedure{
			{ProcedureID: "p1", Cost: dec("2.00")},
		},
	}
	materials := map[string]*entity.Material{
		"m1": {ID: "m1", UnitCost: dec("3.50")},
		"m2": {ID: "m2", UnitCost: dec("3.00")},
	}
	procedures := map[string]*entity.Procedure{
		"p1": {ID: "p1", Name: "pulido"},
	}

	b, err := costing.Calculate(p, materials, procedures, testConfig())
	require.NoError(t, err)

	assert.True(t, dec("10.00").Equal(b.MaterialCost), "materiales: %s", b.MaterialCost)
	assert.True(t, dec("5.00").Equal(b.LaborCost), "mano de obra: %s", b.LaborCost)
	assert.True(t, dec("2.00").Equal(b.ProcedureCost))
	assert.True(t, dec("17.00").Equal(b.TotalCost))
	assert.True(t, dec("42.50").Equal(b.SuggestedRetail), "retail: %s", b.SuggestedRetail)
	assert.True(t, dec("30.60").Equal(b.SuggestedWholesale), "mayorista: %s", b.SuggestedWholesale)
}

func TestCalculate_Determinista(t *testing.T) {
	// El precio sugerido es función pura de los insumos: dos cálculos idénticos
	// producen exactamente el mismo valor.
	p := &entity.Product{
		MinutesToMake: 45,
		Materials:     []entity.ProductMaterial{{MaterialID: "m1", Quantity: dec("3.5")}},
	}
	materials := map[string]*entity.Material{"m1": {ID: "m1", UnitCost: dec("7.33")}}

	b1, err1 := costing.Calculate(p, materials, nil, testConfig())
	b2, err2 := costing.Calculate(p, materials, nil, testConfig())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, b1.SuggestedRetail.Equal(b2.SuggestedRetail))
	assert.True(t, b1.TotalCost.Equal(b2.TotalCost))
}

func TestCalculate_MaterialInexistente_ErrorDeIntegridad(t *testing.T) {
	p := &entity.Product{
		Materials: []entity.ProductMaterial{{MaterialID: "fantasma", Quantity: dec("1")}},
	}
	_, err := costing.Calculate(p, map[string]*entity.Material{}, nil, testConfig())
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una referencia rota debe reportarse, nunca omitirse en silencio")
}

func TestCalculate_ProcedimientoInexistente_ErrorDeIntegridad(t *testing.T) {
	p := &entity.Product{
		Procedures: []entity.ProductProcedure{{ProcedureID: "fantasma", Cost: dec("5.00")}},
	}
	_, err := costing.Calculate(p, nil, map[string]*entity.Procedure{}, testConfig())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCalculate_SinReceta_SoloManoDeObra(t *testing.T) {
	p := &entity.Product{MinutesToMake: 30}
	b, err := costing.Calculate(p, nil, nil, testConfig())
	require.NoError(t, err)
	assert.True(t, dec("10.00").Equal(b.TotalCost))
}

// ──────────────────────────────────────────────────────────────────────────────
// DeviationPct / ClassifyPricing — alertas de precios subvalorados
// ──────────────────────────────────────────────────────────────────────────────

func TestDeviationPct_SugeridoCero_DevuelveCero(t *testing.T) {
	got := costing.DeviationPct(dec("40.00"), decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestDeviationPct_PorDebajoDelSugerido(t *testing.T) {
	// final 34.00 vs sugerido 42.50 → (34-42.50)/42.50×100 = -20.00%
	got := costing.DeviationPct(dec("34.00"), dec("42.50"))
	assert.True(t, dec("-20.00").Equal(got), "obtenido %s", got)
}

func TestClassifyPricing_CuatroEstados(t *testing.T) {
	threshold := dec("-10.00")
	cases := []struct {
		name       string
		retail     string
		wholesale  string
		wantStatus string
	}{
		{"sin problemas", "0.00", "0.00", costing.PricingNoIssues},
		{"retail subvalorado", "-15.00", "-5.00", costing.PricingRetailUnderpriced},
		{"mayorista subvalorado", "-5.00", "-15.00", costing.PricingWholesaleUnderpriced},
		{"ambos subvalorados", "-20.00", "-12.00", costing.PricingBothUnderpriced},
		{"exactamente en el umbral no alerta", "-10.00", "-10.00", costing.PricingNoIssues},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := costing.ClassifyPricing(dec(tc.retail), dec(tc.wholesale), threshold)
			assert.Equal(t, tc.wantStatus, got)
		})
	}
}

package costing

import (
	"github.com/shopspring/decimal"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/money"
)

// Config constantes de costeo por despliegue: tarifa horaria del taller,
// factores de markup y umbral (negativo) de subvaloración de precios.
type Config struct {
	HourlyRate               decimal.Decimal
	RetailMarkup             decimal.Decimal
	WholesaleMarkup          decimal.Decimal
	UnderpricedThresholdPct  decimal.Decimal // ej. -10.00: alerta si el precio final está 10% por debajo del sugerido
}

// Breakdown desglose de costo de fabricación de una pieza y precios sugeridos derivados.
type Breakdown struct {
	MaterialCost       decimal.Decimal
	LaborCost          decimal.Decimal
	ProcedureCost      decimal.Decimal
	TotalCost          decimal.Decimal
	SuggestedRetail    decimal.Decimal
	SuggestedWholesale decimal.Decimal
}

var sixty = decimal.NewFromInt(60)

// Calculate computa el costo total de una pieza desde su receta:
// Σ(cantidad × costo unitario del material) + minutos/60 × tarifa horaria + Σ(costo de procedimiento).
// Una referencia a material o procedimiento inexistente es un error de integridad
// de datos (ErrNotFound); nunca se omite en silencio.
func Calculate(p *entity.Product, materials map[string]*entity.Material, procedures map[string]*entity.Procedure, cfg Config) (*Breakdown, error) {
	materialCost := decimal.Zero
	for _, pm := range p.Materials {
		mat, ok := materials[pm.MaterialID]
		if !ok || mat == nil {
			return nil, domain.ErrNotFound
		}
		materialCost = materialCost.Add(pm.Quantity.Mul(mat.UnitCost))
	}
	materialCost = money.Round(materialCost)

	laborCost := decimal.NewFromInt(int64(p.MinutesToMake)).Mul(cfg.HourlyRate).DivRound(sixty, money.CurrencyScale)

	procedureCost := decimal.Zero
	for _, pp := range p.Procedures {
		if _, ok := procedures[pp.ProcedureID]; !ok {
			return nil, domain.ErrNotFound
		}
		procedureCost = procedureCost.Add(pp.Cost)
	}
	procedureCost = money.Round(procedureCost)

	totalCost := materialCost.Add(laborCost).Add(procedureCost)

	return &Breakdown{
		MaterialCost:       materialCost,
		LaborCost:          laborCost,
		ProcedureCost:      procedureCost,
		TotalCost:          totalCost,
		SuggestedRetail:    money.Round(totalCost.Mul(cfg.RetailMarkup)),
		SuggestedWholesale: money.Round(totalCost.Mul(cfg.WholesaleMarkup)),
	}, nil
}

// Estados de precio de una pieza contra su precio sugerido.
const (
	PricingNoIssues             = "NO_ISSUES"
	PricingRetailUnderpriced    = "RETAIL_UNDERPRICED"
	PricingWholesaleUnderpriced = "WHOLESALE_UNDERPRICED"
	PricingBothUnderpriced      = "BOTH_UNDERPRICED"
)

// DeviationPct devuelve (final - sugerido) / sugerido × 100 redondeado a 2 decimales;
// cero cuando el sugerido es cero.
func DeviationPct(final, suggested decimal.Decimal) decimal.Decimal {
	return money.Percentage(final.Sub(suggested), suggested)
}

// ClassifyPricing combina la desviación retail y mayorista en uno de cuatro estados.
// Una pieza está subvalorada cuando su desviación cae por debajo del umbral negativo.
func ClassifyPricing(retailDeviation, wholesaleDeviation, threshold decimal.Decimal) string {
	retailLow := retailDeviation.LessThan(threshold)
	wholesaleLow := wholesaleDeviation.LessThan(threshold)
	switch {
	case retailLow && wholesaleLow:
		return PricingBothUnderpriced
	case retailLow:
		return PricingRetailUnderpriced
	case wholesaleLow:
		return PricingWholesaleUnderpriced
	default:
		return PricingNoIssues
	}
}

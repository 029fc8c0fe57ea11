package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/money"
)

// Config límites de descuento por despliegue.
type Config struct {
	// MaxDiscountPct magnitud máxima del descuento. Aplica en ambas direcciones:
	// un porcentaje negativo (venta por encima del catálogo) también está acotado.
	MaxDiscountPct decimal.Decimal
}

// Line línea del carrito con el producto ya cargado de catálogo.
type Line struct {
	Product  *entity.Product
	Quantity int
}

// Input entrada del motor de precios. Exactamente uno de FinalPrice o
// DiscountPercentage debe venir informado (modo precio final o modo descuento).
type Input struct {
	Lines              []Line
	IsWholesale        bool
	PackagingCost      decimal.Decimal
	FinalPrice         *decimal.Decimal
	DiscountPercentage *decimal.Decimal
}

// PricedLine línea con los snapshots de precio calculados.
type PricedLine struct {
	ProductID          string
	ProductName        string
	Quantity           int
	SuggestedUnitPrice decimal.Decimal
	ActualUnitPrice    decimal.Decimal
}

// Result totales de la venta y líneas con el descuento prorrateado.
//
// La suma de los totales de línea redondeados puede diferir de FinalPrice por
// unos centavos: cada línea redondea half-up de forma independiente y el
// sobrante no se redistribuye. Es una holgura de redondeo aceptada, no un error.
type Result struct {
	Lines               []PricedLine
	Subtotal            decimal.Decimal
	SuggestedGrandTotal decimal.Decimal
	FinalPrice          decimal.Decimal
	DiscountAmount      decimal.Decimal
	DiscountPercentage  decimal.Decimal
}

// Compute calcula el total sugerido del carrito, deriva el descuento según el
// modo de entrada y lo prorratea proporcionalmente sobre cada línea:
// actualUnitPrice = suggestedUnitPrice × (1 − pct/100), redondeado por línea.
//
// El carrito vacío y las cantidades no positivas se rechazan antes de
// cualquier aritmética.
func Compute(in Input, cfg Config) (*Result, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if (in.FinalPrice == nil) == (in.DiscountPercentage == nil) {
		return nil, domain.ErrInvalidInput
	}
	if in.PackagingCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.Product == nil {
			return nil, domain.ErrNotFound
		}
		if l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// 1) Snapshot del precio de catálogo por línea según el flag mayorista
	lines := make([]PricedLine, 0, len(in.Lines))
	subtotal := decimal.Zero
	for _, l := range in.Lines {
		unit := l.Product.FinalSellingPriceRetail
		if in.IsWholesale {
			unit = l.Product.FinalSellingPriceWholesale
		}
		lines = append(lines, PricedLine{
			ProductID:          l.Product.ID,
			ProductName:        l.Product.Name,
			Quantity:           l.Quantity,
			SuggestedUnitPrice: unit,
		})
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	suggestedGrandTotal := subtotal.Add(in.PackagingCost)

	// 2) Descuento según el modo de entrada
	var finalPrice, discountPct decimal.Decimal
	if in.FinalPrice != nil {
		finalPrice = *in.FinalPrice
		if finalPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		discountPct = money.Percentage(suggestedGrandTotal.Sub(finalPrice), suggestedGrandTotal)
	} else {
		discountPct = (*in.DiscountPercentage).Round(money.CurrencyScale)
		finalPrice = money.ApplyPercentOff(suggestedGrandTotal, discountPct)
	}
	if discountPct.Abs().GreaterThan(cfg.MaxDiscountPct) {
		return nil, domain.ErrDiscountOutOfRange
	}
	discountAmount := suggestedGrandTotal.Sub(finalPrice)

	// 3) Prorrateo proporcional: cada línea redondea de forma independiente
	for i := range lines {
		lines[i].ActualUnitPrice = money.ApplyPercentOff(lines[i].SuggestedUnitPrice, discountPct)
	}

	return &Result{
		Lines:               lines,
		Subtotal:            subtotal,
		SuggestedGrandTotal: suggestedGrandTotal,
		FinalPrice:          finalPrice,
		DiscountAmount:      discountAmount,
		DiscountPercentage:  discountPct,
	}, nil
}

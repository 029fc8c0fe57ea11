package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/money"
)

// Summarize agrega un conjunto de ventas ya filtrado: conteo, ingreso, ticket
// promedio, descuento total otorgado y descuento porcentual promedio.
// El conjunto vacío produce ceros, nunca división por cero.
func Summarize(sales []*entity.Sale) dto.SalesSummaryDTO {
	out := dto.SalesSummaryDTO{
		TotalRevenue:        decimal.Zero,
		AverageOrderValue:   decimal.Zero,
		TotalDiscountAmount: decimal.Zero,
		AverageDiscountPct:  decimal.Zero,
	}
	if len(sales) == 0 {
		return out
	}
	pctSum := decimal.Zero
	for _, s := range sales {
		out.SaleCount++
		out.TotalRevenue = out.TotalRevenue.Add(s.FinalTotalPrice)
		out.TotalDiscountAmount = out.TotalDiscountAmount.Add(s.SuggestedTotalPrice.Sub(s.FinalTotalPrice))
		pctSum = pctSum.Add(s.DiscountPercentage)
	}
	n := decimal.NewFromInt(int64(out.SaleCount))
	out.AverageOrderValue = out.TotalRevenue.DivRound(n, money.CurrencyScale)
	out.AverageDiscountPct = pctSum.DivRound(n, money.CurrencyScale)
	return out
}

// averageOf divide sum entre count redondeando a centavos, con guarda de cero.
func averageOf(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.DivRound(decimal.NewFromInt(int64(count)), money.CurrencyScale)
}

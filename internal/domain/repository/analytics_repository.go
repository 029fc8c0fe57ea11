package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Buckets temporales para agregaciones de ventas.
const (
	BucketWeek  = "week"
	BucketMonth = "month"
	BucketYear  = "year"
)

// Dimensiones de agrupación para agregaciones de ventas.
const (
	DimensionCustomer  = "customer"
	DimensionProduct   = "product"
	DimensionCategory  = "category"
	DimensionLocation  = "location"
	DimensionMaterial  = "material"
	DimensionProcedure = "procedure"
	DimensionSupplier  = "supplier"
)

// PeriodSalesResult resultado crudo de ventas agrupadas por período.
// Lo produce la DB; el use case lo convierte en DTO con los promedios.
type PeriodSalesResult struct {
	Bucket          string // etiqueta del período: 2025-W03, 2025-01, 2025
	SaleCount       int
	Revenue         decimal.Decimal // Σ final_total_price
	SuggestedTotal  decimal.Decimal // Σ suggested_total_price
	DiscountPctSum  decimal.Decimal // Σ discount_percentage (para promedio)
}

// DimensionSalesResult resultado crudo de ventas agrupadas por una dimensión.
type DimensionSalesResult struct {
	ID             string
	Name           string
	SaleCount      int
	UnitsSold      int
	Revenue        decimal.Decimal
	SuggestedTotal decimal.Decimal
}

// TopProductResult producto con mayor ingreso en un período.
type TopProductResult struct {
	ProductID string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para reportes y dashboard.
// Las implementaciones no modifican datos.
type AnalyticsRepository interface {
	// GetSalesByPeriod agrupa las ventas del rango por semana, mes o año.
	GetSalesByPeriod(ctx context.Context, bucket string, from, to time.Time) ([]PeriodSalesResult, error)

	// GetSalesByDimension agrupa las ventas del rango por la dimensión indicada.
	// Las ventas de mostrador se consolidan bajo "Mostrador" en la dimensión cliente.
	GetSalesByDimension(ctx context.Context, dimension string, from, to time.Time) ([]DimensionSalesResult, error)

	// GetSalesTotals devuelve conteo, ingreso, total sugerido y suma de
	// porcentajes de descuento del rango. COALESCE a cero si no hay ventas.
	GetSalesTotals(ctx context.Context, from, to time.Time) (count int, revenue, suggested, discountPctSum decimal.Decimal, err error)

	// GetExpensesTotal devuelve la suma de gastos del rango (cero si no hay).
	GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// GetTopProducts devuelve los `limit` productos con mayor ingreso del rango.
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProductResult, error)

	// CountStockAlerts cuenta productos activos en estado LOW y NEGATIVE.
	CountStockAlerts(ctx context.Context) (low, negative int, err error)
}

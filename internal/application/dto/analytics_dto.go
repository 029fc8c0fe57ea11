package dto

import "github.com/shopspring/decimal"

// SalesSummaryRequest filtros para el resumen de ventas.
type SalesSummaryRequest struct {
	StartDate     string `query:"start_date"` // YYYY-MM-DD
	EndDate       string `query:"end_date"`
	CustomerID    string `query:"customer_id"`
	LocationID    string `query:"location_id"`
	ProductID     string `query:"product_id"`
	CategoryID    string `query:"category_id"`
	PaymentMethod string `query:"payment_method"`
}

// SalesSummaryDTO agregado de un conjunto filtrado de ventas.
// Todos los promedios siguen el patrón "sumar y dividir con guarda de cero".
type SalesSummaryDTO struct {
	SaleCount           int             `json:"sale_count"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AverageOrderValue   decimal.Decimal `json:"average_order_value"`
	TotalDiscountAmount decimal.Decimal `json:"total_discount_amount"`
	AverageDiscountPct  decimal.Decimal `json:"average_discount_pct"`
}

// PeriodDTO rango de fechas de un reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// PeriodBucketDTO resumen de ventas de un bucket temporal (semana/mes/año).
type PeriodBucketDTO struct {
	Bucket              string          `json:"bucket"`
	SaleCount           int             `json:"sale_count"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AverageOrderValue   decimal.Decimal `json:"average_order_value"`
	TotalDiscountAmount decimal.Decimal `json:"total_discount_amount"`
	AverageDiscountPct  decimal.Decimal `json:"average_discount_pct"`
}

// PeriodReportDTO reporte por buckets temporales.
type PeriodReportDTO struct {
	Period  PeriodDTO         `json:"period"`
	Bucket  string            `json:"bucket"` // week | month | year
	Buckets []PeriodBucketDTO `json:"buckets"`
}

// DimensionEntryDTO resumen de ventas de una entrada de la dimensión.
type DimensionEntryDTO struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	SaleCount           int             `json:"sale_count"`
	UnitsSold           int             `json:"units_sold"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalDiscountAmount decimal.Decimal `json:"total_discount_amount"`
}

// DimensionReportDTO reporte agrupado por dimensión (cliente, producto, etc.).
type DimensionReportDTO struct {
	Period    PeriodDTO           `json:"period"`
	Dimension string              `json:"dimension"`
	Entries   []DimensionEntryDTO `json:"entries"`
}

// ProfitLossDTO resultado de pérdidas y ganancias de un período.
type ProfitLossDTO struct {
	Period        PeriodDTO       `json:"period"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	MarginPct     decimal.Decimal `json:"margin_pct"` // netProfit/revenue×100, cero si revenue es cero
}

// MispricingAlertDTO pieza cuyo precio final se aparta demasiado del sugerido.
type MispricingAlertDTO struct {
	ProductID             string          `json:"product_id"`
	Code                  string          `json:"code"`
	Name                  string          `json:"name"`
	SuggestedRetail       decimal.Decimal `json:"suggested_retail"`
	FinalRetail           decimal.Decimal `json:"final_retail"`
	RetailDeviationPct    decimal.Decimal `json:"retail_deviation_pct"`
	SuggestedWholesale    decimal.Decimal `json:"suggested_wholesale"`
	FinalWholesale        decimal.Decimal `json:"final_wholesale"`
	WholesaleDeviationPct decimal.Decimal `json:"wholesale_deviation_pct"`
	PricingStatus         string          `json:"pricing_status"`
}

// TopProductDTO producto destacado del dashboard.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardDTO resumen del mes en curso para la pantalla principal.
type DashboardDTO struct {
	Period            PeriodDTO       `json:"period"`
	SaleCount         int             `json:"sale_count"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	LowStockCount     int             `json:"low_stock_count"`
	NegativeStockCount int            `json:"negative_stock_count"`
	PendingTaskCount  int             `json:"pending_task_count"`
	TopProducts       []TopProductDTO `json:"top_products"`
}

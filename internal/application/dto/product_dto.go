package dto

import "github.com/shopspring/decimal"

// ProductMaterialDTO línea de receta (material + cantidad).
type ProductMaterialDTO struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ProductProcedureDTO procedimiento aplicado a la pieza con su costo.
type ProductProcedureDTO struct {
	ProcedureID string          `json:"procedure_id"`
	Cost        decimal.Decimal `json:"cost"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name                       string                `json:"name"`
	Code                       string                `json:"code"`
	CategoryID                 string                `json:"category_id"`
	MinutesToMake              int                   `json:"minutes_to_make"`
	FinalSellingPriceRetail    decimal.Decimal       `json:"final_selling_price_retail"`
	FinalSellingPriceWholesale decimal.Decimal       `json:"final_selling_price_wholesale"`
	Stock                      int                   `json:"stock"`
	LowStockAlert              int                   `json:"low_stock_alert"`
	Materials                  []ProductMaterialDTO  `json:"materials,omitempty"`
	Procedures                 []ProductProcedureDTO `json:"procedures,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	Name                       *string               `json:"name,omitempty"`
	CategoryID                 *string               `json:"category_id,omitempty"`
	MinutesToMake              *int                  `json:"minutes_to_make,omitempty"`
	FinalSellingPriceRetail    *decimal.Decimal      `json:"final_selling_price_retail,omitempty"`
	FinalSellingPriceWholesale *decimal.Decimal      `json:"final_selling_price_wholesale,omitempty"`
	LowStockAlert              *int                  `json:"low_stock_alert,omitempty"`
	Active                     *bool                 `json:"active,omitempty"`
	Materials                  []ProductMaterialDTO  `json:"materials,omitempty"`
	Procedures                 []ProductProcedureDTO `json:"procedures,omitempty"`
}

// ProductResponse producto en respuestas, con receta y estado de stock.
type ProductResponse struct {
	ID                         string                `json:"id"`
	Name                       string                `json:"name"`
	Code                       string                `json:"code"`
	CategoryID                 string                `json:"category_id"`
	MinutesToMake              int                   `json:"minutes_to_make"`
	FinalSellingPriceRetail    decimal.Decimal       `json:"final_selling_price_retail"`
	FinalSellingPriceWholesale decimal.Decimal       `json:"final_selling_price_wholesale"`
	Stock                      int                   `json:"stock"`
	LowStockAlert              int                   `json:"low_stock_alert"`
	StockStatus                string                `json:"stock_status"` // NORMAL | LOW | NEGATIVE
	Active                     bool                  `json:"active"`
	Materials                  []ProductMaterialDTO  `json:"materials,omitempty"`
	Procedures                 []ProductProcedureDTO `json:"procedures,omitempty"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductCostResponse desglose de costo y precios sugeridos de una pieza,
// con la clasificación de precios contra el sugerido.
type ProductCostResponse struct {
	ProductID           string          `json:"product_id"`
	MaterialCost        decimal.Decimal `json:"material_cost"`
	LaborCost           decimal.Decimal `json:"labor_cost"`
	ProcedureCost       decimal.Decimal `json:"procedure_cost"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	SuggestedRetail     decimal.Decimal `json:"suggested_retail"`
	SuggestedWholesale  decimal.Decimal `json:"suggested_wholesale"`
	RetailDeviationPct  decimal.Decimal `json:"retail_deviation_pct"`
	WholesaleDeviationPct decimal.Decimal `json:"wholesale_deviation_pct"`
	PricingStatus       string          `json:"pricing_status"` // NO_ISSUES | RETAIL_UNDERPRICED | WHOLESALE_UNDERPRICED | BOTH_UNDERPRICED
}

package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea del carrito (producto y cantidad).
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest body para POST /api/sales.
// El operador ingresa FinalPrice (modo precio final) o DiscountPercentage
// (modo descuento); exactamente uno de los dos. CustomerID vacío = venta de mostrador.
type CreateSaleRequest struct {
	Items              []SaleItemRequest `json:"items"`
	CustomerID         string            `json:"customer_id,omitempty"`
	LocationID         string            `json:"location_id"`
	PaymentMethod      string            `json:"payment_method"`
	IsWholesale        bool              `json:"is_wholesale"`
	PackagingCost      decimal.Decimal   `json:"packaging_cost"`
	FinalPrice         *decimal.Decimal  `json:"final_price,omitempty"`
	DiscountPercentage *decimal.Decimal  `json:"discount_percentage,omitempty"`
}

// SaleLineResponse línea de venta con los snapshots de precio.
type SaleLineResponse struct {
	ID                 string          `json:"id"`
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	Quantity           int             `json:"quantity"`
	SuggestedUnitPrice decimal.Decimal `json:"suggested_unit_price"`
	ActualUnitPrice    decimal.Decimal `json:"actual_unit_price"`
}

// SaleResponse venta con sus líneas para confirmación y consulta.
type SaleResponse struct {
	ID                  string             `json:"id"`
	Date                string             `json:"date"` // YYYY-MM-DD
	CustomerID          string             `json:"customer_id,omitempty"`
	LocationID          string             `json:"location_id"`
	PaymentMethod       string             `json:"payment_method"`
	IsWholesale         bool               `json:"is_wholesale"`
	PackagingCost       decimal.Decimal    `json:"packaging_cost"`
	SuggestedTotalPrice decimal.Decimal    `json:"suggested_total_price"`
	FinalTotalPrice     decimal.Decimal    `json:"final_total_price"`
	DiscountPercentage  decimal.Decimal    `json:"discount_percentage"`
	Lines               []SaleLineResponse `json:"lines"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el punto de venta.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// Sale representa una venta registrada. CustomerID vacío = venta de mostrador (walk-in).
// SuggestedTotalPrice y FinalTotalPrice son snapshots al momento de la venta;
// DiscountPercentage se deriva de la brecha entre ambos y se persiste.
type Sale struct {
	ID                  string
	Date                time.Time
	CustomerID          string // vacío si es venta de mostrador
	LocationID          string
	PaymentMethod       string
	IsWholesale         bool
	PackagingCost       decimal.Decimal
	SuggestedTotalPrice decimal.Decimal
	FinalTotalPrice     decimal.Decimal
	DiscountPercentage  decimal.Decimal
	Products            []SaleProduct
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SaleProduct línea de venta. Los precios y el nombre son snapshots congelados:
// nunca se recalculan aunque el catálogo cambie después (auditabilidad).
type SaleProduct struct {
	ID                 string
	SaleID             string
	ProductID          string
	ProductName        string // nombre al momento de la venta
	Quantity           int
	SuggestedUnitPrice decimal.Decimal // precio de catálogo al momento de la venta
	ActualUnitPrice    decimal.Decimal // precio con descuento prorrateado
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra de materiales a un proveedor.
// Puede quedar enlazada 1:1 con un Expense para contabilidad.
type Purchase struct {
	ID         string
	SupplierID string
	Date       time.Time
	Materials  []PurchaseMaterial
	ExpenseID  string // vacío si no se generó gasto
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseMaterial línea de compra. PriceAtTime es snapshot del precio pagado,
// independiente del costo unitario vigente del material.
type PurchaseMaterial struct {
	ID          string
	PurchaseID  string
	MaterialID  string
	Quantity    decimal.Decimal
	PriceAtTime decimal.Decimal
}

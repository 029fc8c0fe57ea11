package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto.
const (
	ExpenseCategoryMaterials = "materials"
	ExpenseCategoryRent      = "rent"
	ExpenseCategoryServices  = "services"
	ExpenseCategorySalaries  = "salaries"
	ExpenseCategoryTaxes     = "taxes"
	ExpenseCategoryOther     = "other"
)

// ValidExpenseCategory indica si la categoría pertenece al enum.
func ValidExpenseCategory(c string) bool {
	switch c {
	case ExpenseCategoryMaterials, ExpenseCategoryRent, ExpenseCategoryServices,
		ExpenseCategorySalaries, ExpenseCategoryTaxes, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense representa un gasto. PurchaseID enlaza opcionalmente con la compra que lo originó.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
	PurchaseID  string // vacío si no proviene de una compra
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

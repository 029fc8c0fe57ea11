package dto

import "github.com/shopspring/decimal"

// PurchaseItemRequest línea de compra (material, cantidad, precio pagado).
type PurchaseItemRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// CreatePurchaseRequest body para POST /api/purchases.
// CreateExpense genera el gasto contable enlazado 1:1 en la misma transacción.
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplier_id"`
	Date          string                `json:"date,omitempty"` // YYYY-MM-DD; hoy si va vacío
	Items         []PurchaseItemRequest `json:"items"`
	CreateExpense bool                  `json:"create_expense"`
}

// PurchaseLineResponse línea de compra con snapshot de precio.
type PurchaseLineResponse struct {
	ID          string          `json:"id"`
	MaterialID  string          `json:"material_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"price_at_time"`
}

// PurchaseResponse compra con sus líneas.
type PurchaseResponse struct {
	ID         string                 `json:"id"`
	SupplierID string                 `json:"supplier_id"`
	Date       string                 `json:"date"`
	Total      decimal.Decimal        `json:"total"`
	ExpenseID  string                 `json:"expense_id,omitempty"`
	Lines      []PurchaseLineResponse `json:"lines"`
}

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"` // YYYY-MM-DD; hoy si va vacío
	Category    string          `json:"category"`
}

// UpdateExpenseRequest body para PUT /api/expenses/:id.
type UpdateExpenseRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	PurchaseID  string          `json:"purchase_id,omitempty"`
}

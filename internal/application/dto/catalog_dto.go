package dto

import "github.com/shopspring/decimal"

// CreateMaterialRequest body para POST /api/materials.
type CreateMaterialRequest struct {
	Name        string          `json:"name"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UnitMeasure string          `json:"unit_measure"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id.
type UpdateMaterialRequest struct {
	Name        *string          `json:"name,omitempty"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
	UnitMeasure *string          `json:"unit_measure,omitempty"`
}

// MaterialResponse material en respuestas.
type MaterialResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UnitMeasure string          `json:"unit_measure"`
}

// CreateProcedureRequest body para POST /api/procedures.
type CreateProcedureRequest struct {
	Name string `json:"name"`
}

// ProcedureResponse procedimiento en respuestas.
type ProcedureResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	TIN   string `json:"tin"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas. FirstSaleDate vacío hasta su primera venta.
type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TIN           string `json:"tin"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	FirstSaleDate string `json:"first_sale_date,omitempty"` // YYYY-MM-DD
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// LocationResponse punto de venta en respuestas.
type LocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

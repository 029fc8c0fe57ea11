package repository

import (
	"time"

	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
)

// SaleFilter criterios opcionales para consultar ventas. Los campos vacíos/nil
// se omiten al componer la consulta (composición de predicados, no dispatch).
type SaleFilter struct {
	From          *time.Time
	To            *time.Time
	CustomerID    string
	LocationID    string
	ProductID     string
	CategoryID    string
	PaymentMethod string
	Limit         int
	Offset        int
}

// SaleRepository puerto de persistencia para ventas y sus líneas.
// Create y Delete del grafo completo se usan dentro de la transacción de venta.
type SaleRepository interface {
	Create(s *entity.Sale) error
	CreateLine(line *entity.SaleProduct) error
	GetByID(id string) (*entity.Sale, error)
	List(f SaleFilter) ([]*entity.Sale, error)
	Delete(id string) error
}

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByTIN(tin string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(c *entity.Customer) error
	// SetFirstSaleDate fija la fecha de primera venta solo si aún es NULL.
	SetFirstSaleDate(customerID string, date time.Time) error
	Delete(id string) error
}

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(id string) error
}

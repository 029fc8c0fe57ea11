package repository

import "github.com/atelier-soft/joyeria-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// GetByID y List cargan también la receta (materiales y procedimientos).
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	List(limit, offset int, activeOnly bool) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	Update(p *entity.Product) error
	UpdateStock(productID string, stock int) error
	AdjustStock(productID string, delta int) error
	ReplaceRecipe(productID string, materials []entity.ProductMaterial, procedures []entity.ProductProcedure) error
	Delete(id string) error
}

// MaterialRepository puerto de persistencia para materiales.
type MaterialRepository interface {
	Create(m *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByIDs(ids []string) (map[string]*entity.Material, error)
	List(limit, offset int) ([]*entity.Material, error)
	Update(m *entity.Material) error
	Delete(id string) error
}

// ProcedureRepository puerto de persistencia para procedimientos.
type ProcedureRepository interface {
	Create(p *entity.Procedure) error
	GetByID(id string) (*entity.Procedure, error)
	GetByIDs(ids []string) (map[string]*entity.Procedure, error)
	List(limit, offset int) ([]*entity.Procedure, error)
	Update(p *entity.Procedure) error
	Delete(id string) error
}

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(c *entity.Category) error
	Delete(id string) error
}

// LocationRepository puerto de persistencia para puntos de venta.
type LocationRepository interface {
	Create(l *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
}

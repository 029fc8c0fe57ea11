package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una pieza del catálogo de la joyería.
// El costo total se deriva de la receta (materiales + minutos de trabajo + procedimientos);
// los precios finales los fija el operador y pueden apartarse del sugerido.
type Product struct {
	ID                        string
	Name                      string
	Code                      string // código único de pieza
	CategoryID                string
	MinutesToMake             int
	FinalSellingPriceRetail   decimal.Decimal
	FinalSellingPriceWholesale decimal.Decimal
	Stock                     int
	LowStockAlert             int
	Active                    bool
	Materials                 []ProductMaterial  // receta: material + cantidad
	Procedures                []ProductProcedure // pasos de fabricación con costo
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// ProductMaterial cantidad de un material en la receta de un producto.
type ProductMaterial struct {
	MaterialID string
	Quantity   decimal.Decimal
}

// ProductProcedure costo de un procedimiento aplicado a un producto.
type ProductProcedure struct {
	ProcedureID string
	Cost        decimal.Decimal
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima (metal, piedra, insumo) con costo unitario.
// Las recetas de producto y las compras lo referencian.
type Material struct {
	ID          string
	Name        string
	UnitCost    decimal.Decimal
	UnitMeasure string // gr, unidad, metro, etc.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

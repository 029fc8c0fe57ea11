package entity

// Operaciones sobre el contador de stock de un producto.
const (
	StockOpAdd    = "ADD"
	StockOpRemove = "REMOVE"
	StockOpSet    = "SET"
)

// Estados de stock. Se recalculan en cada lectura, nunca se almacenan.
const (
	StockStatusNormal   = "NORMAL"
	StockStatusLow      = "LOW"
	StockStatusNegative = "NEGATIVE"
)

// ClassifyStock clasifica el stock contra el umbral de alerta del producto.
// El stock puede ser negativo (sobreventa/pedido pendiente); no es un error.
func ClassifyStock(stock, lowStockAlert int) string {
	switch {
	case stock < 0:
		return StockStatusNegative
	case stock <= lowStockAlert:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

// StockUpdate resultado de aplicar una operación de stock (antes/después/delta/estado).
type StockUpdate struct {
	ProductID     string
	Operation     string
	PreviousStock int
	NewStock      int
	Delta         int
	Status        string
}

package dto

// StockUpdateRequest body para POST /api/products/:id/stock.
// Operation: ADD | REMOVE | SET. Quantity debe ser >= 0 para SET y > 0 para ADD/REMOVE.
type StockUpdateRequest struct {
	Operation string `json:"operation"`
	Quantity  int    `json:"quantity"`
}

// StockUpdateResponse resultado de la operación: antes/después/delta/estado.
type StockUpdateResponse struct {
	ProductID     string `json:"product_id"`
	Operation     string `json:"operation"`
	PreviousStock int    `json:"previous_stock"`
	NewStock      int    `json:"new_stock"`
	Delta         int    `json:"delta"`
	Status        string `json:"status"` // NORMAL | LOW | NEGATIVE
}

package inventory

import (
	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// ApplyOperation aplica ADD/REMOVE/SET sobre el contador de stock.
// El contador no tiene cota inferior: quedar en negativo representa
// sobreventa/pedido pendiente y es un estado válido, no un error.
func ApplyOperation(previous int, op string, qty int) (newStock, delta int, err error) {
	switch op {
	case entity.StockOpAdd:
		if qty <= 0 {
			return 0, 0, domain.ErrInvalidInput
		}
		newStock = previous + qty
	case entity.StockOpRemove:
		if qty <= 0 {
			return 0, 0, domain.ErrInvalidInput
		}
		newStock = previous - qty
	case entity.StockOpSet:
		if qty < 0 {
			return 0, 0, domain.ErrInvalidInput
		}
		newStock = qty
	default:
		return 0, 0, domain.ErrInvalidInput
	}
	return newStock, newStock - previous, nil
}

// StockUseCase aplica operaciones de stock sobre un producto y clasifica el
// resultado contra su umbral de alerta.
type StockUseCase struct {
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{productRepo: productRepo}
}

// Apply ejecuta la operación y devuelve el registro antes/después/delta/estado.
func (uc *StockUseCase) Apply(productID string, in dto.StockUpdateRequest) (*dto.StockUpdateResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	newStock, delta, err := ApplyOperation(product.Stock, in.Operation, in.Quantity)
	if err != nil {
		return nil, err
	}
	if err := uc.productRepo.UpdateStock(productID, newStock); err != nil {
		return nil, err
	}
	return &dto.StockUpdateResponse{
		ProductID:     productID,
		Operation:     in.Operation,
		PreviousStock: product.Stock,
		NewStock:      newStock,
		Delta:         delta,
		Status:        entity.ClassifyStock(newStock, product.LowStockAlert),
	}, nil
}

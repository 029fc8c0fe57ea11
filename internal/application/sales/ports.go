package sales

import (
	"context"

	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que registrar o eliminar una venta
// (cabecera + líneas + ajustes de stock + fecha de primera venta) sea atómico:
// una lectura concurrente de stock nunca observa una venta aplicada a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// ReceiptGenerator produce el comprobante de venta en PDF.
// customer es nil para ventas de mostrador.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, customer *entity.Customer, location *entity.Location) ([]byte, error)
}

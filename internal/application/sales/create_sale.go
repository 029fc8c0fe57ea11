package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/application/pricing"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// SaleUseCase registra y elimina ventas de forma transaccional y las consulta.
// Los precios de línea son snapshots tomados al crear la venta; nunca se
// recalculan aunque el catálogo cambie después.
type SaleUseCase struct {
	txRunner     TxRunner
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	locationRepo repository.LocationRepository
	receiptGen   ReceiptGenerator
	pricingCfg   pricing.Config
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	locationRepo repository.LocationRepository,
	receiptGen ReceiptGenerator,
	pricingCfg pricing.Config,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		locationRepo: locationRepo,
		receiptGen:   receiptGen,
		pricingCfg:   pricingCfg,
	}
}

func validPaymentMethod(m string) bool {
	switch m {
	case entity.PaymentMethodCash, entity.PaymentMethodCard, entity.PaymentMethodTransfer:
		return true
	}
	return false
}

// CreateSale calcula los precios del carrito con el motor de precios, y en una
// sola transacción persiste la venta con sus líneas, descuenta stock por línea
// y fija la fecha de primera venta del cliente si aún no la tiene.
func (uc *SaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	// Validar punto de venta y cliente (fuera de la tx, solo lectura)
	loc, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	var customer *entity.Customer
	if in.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Cargar productos y armar las líneas para el motor de precios
	lines := make([]pricing.Line, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, pricing.Line{Product: product, Quantity: item.Quantity})
	}

	priced, err := pricing.Compute(pricing.Input{
		Lines:              lines,
		IsWholesale:        in.IsWholesale,
		PackagingCost:      in.PackagingCost,
		FinalPrice:         in.FinalPrice,
		DiscountPercentage: in.DiscountPercentage,
	}, uc.pricingCfg)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:                  uuid.New().String(),
		Date:                now,
		CustomerID:          in.CustomerID,
		LocationID:          in.LocationID,
		PaymentMethod:       in.PaymentMethod,
		IsWholesale:         in.IsWholesale,
		PackagingCost:       in.PackagingCost,
		SuggestedTotalPrice: priced.SuggestedGrandTotal,
		FinalTotalPrice:     priced.FinalPrice,
		DiscountPercentage:  priced.DiscountPercentage,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, pl := range priced.Lines {
		sale.Products = append(sale.Products, entity.SaleProduct{
			ID:                 uuid.New().String(),
			SaleID:             sale.ID,
			ProductID:          pl.ProductID,
			ProductName:        pl.ProductName,
			Quantity:           pl.Quantity,
			SuggestedUnitPrice: pl.SuggestedUnitPrice,
			ActualUnitPrice:    pl.ActualUnitPrice,
		})
	}

	// Transacción: venta + líneas + descuento de stock + fecha de primera venta
	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i := range sale.Products {
			line := &sale.Products[i]
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
			// REMOVE(quantity) por línea con delta relativo: dos ventas
			// concurrentes no se pierden el descuento. Puede quedar negativo.
			if err := productRepo.AdjustStock(line.ProductID, -line.Quantity); err != nil {
				return err
			}
		}
		// FirstSaleDate se fija exactamente una vez (el repo solo escribe si es NULL)
		if customer != nil && customer.FirstSaleDate == nil {
			if err := customerRepo.SetFirstSaleDate(customer.ID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// DeleteSale elimina una venta y revierte el stock de cada línea (ADD) en una
// sola transacción.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		_ repository.CustomerRepository,
	) error {
		for _, line := range sale.Products {
			// Delta relativo por línea. Si el producto se eliminó del catálogo
			// el UPDATE no toca filas y no hay stock que revertir.
			if err := productRepo.AdjustStock(line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return saleRepo.Delete(sale.ID)
	})
}

// GetSale obtiene una venta por ID con sus líneas.
func (uc *SaleUseCase) GetSale(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// Receipt genera el recibo PDF de una venta. El cliente puede ser nil
// (venta de mostrador); el generador imprime "Venta de mostrador" en su lugar.
func (uc *SaleUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	var customer *entity.Customer
	if sale.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(sale.CustomerID)
		if err != nil {
			return nil, err
		}
	}
	location, err := uc.locationRepo.GetByID(sale.LocationID)
	if err != nil {
		return nil, err
	}
	return uc.receiptGen.GenerateReceipt(ctx, sale, customer, location)
}

// ListSales lista ventas con filtros opcionales.
func (uc *SaleUseCase) ListSales(f repository.SaleFilter) (*dto.SaleListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	list, err := uc.saleRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:                  s.ID,
		Date:                s.Date.Format("2006-01-02"),
		CustomerID:          s.CustomerID,
		LocationID:          s.LocationID,
		PaymentMethod:       s.PaymentMethod,
		IsWholesale:         s.IsWholesale,
		PackagingCost:       s.PackagingCost,
		SuggestedTotalPrice: s.SuggestedTotalPrice,
		FinalTotalPrice:     s.FinalTotalPrice,
		DiscountPercentage:  s.DiscountPercentage,
		Lines:               make([]dto.SaleLineResponse, 0, len(s.Products)),
	}
	for _, l := range s.Products {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ID:                 l.ID,
			ProductID:          l.ProductID,
			ProductName:        l.ProductName,
			Quantity:           l.Quantity,
			SuggestedUnitPrice: l.SuggestedUnitPrice,
			ActualUnitPrice:    l.ActualUnitPrice,
		})
	}
	return resp
}

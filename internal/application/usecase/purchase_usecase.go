package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// PurchaseTxRunner ejecuta la función dentro de una transacción de BD con
// repositorios atados a esa tx. Compra, líneas y gasto enlazado se persisten
// como una sola unidad: nunca queda una compra sin su gasto (o viceversa).
type PurchaseTxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		expenseRepo repository.ExpenseRepository,
	) error) error
}

// PurchaseUseCase registra compras de materiales, opcionalmente con su gasto
// contable enlazado 1:1, y las consulta.
type PurchaseUseCase struct {
	txRunner     PurchaseTxRunner
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	materialRepo repository.MaterialRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner PurchaseTxRunner,
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	materialRepo repository.MaterialRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		materialRepo: materialRepo,
	}
}

// Create registra una compra con sus líneas. Cada línea guarda PriceAtTime,
// snapshot del precio pagado, independiente del costo vigente del material.
// Con CreateExpense se genera en la misma tx un gasto de categoría "materials"
// por el total de la compra, enlazado en ambas direcciones.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != "" {
		date, err = time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	// Validar materiales y acumular el total de la compra
	materialIDs := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity.Sign() <= 0 || item.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		materialIDs = append(materialIDs, item.MaterialID)
	}
	materials, err := uc.materialRepo.GetByIDs(materialIDs)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, item := range in.Items {
		if materials[item.MaterialID] == nil {
			return nil, domain.ErrNotFound
		}
		total = total.Add(item.Price.Mul(item.Quantity).Round(2))
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range in.Items {
		purchase.Materials = append(purchase.Materials, entity.PurchaseMaterial{
			ID:          uuid.New().String(),
			PurchaseID:  purchase.ID,
			MaterialID:  item.MaterialID,
			Quantity:    item.Quantity,
			PriceAtTime: item.Price,
		})
	}

	var expense *entity.Expense
	if in.CreateExpense {
		expense = &entity.Expense{
			ID:          uuid.New().String(),
			Description: fmt.Sprintf("Compra de materiales a %s", supplier.Name),
			Amount:      total,
			Date:        date,
			Category:    entity.ExpenseCategoryMaterials,
			PurchaseID:  purchase.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		purchase.ExpenseID = expense.ID
	}

	err = uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		expenseRepo repository.ExpenseRepository,
	) error {
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for i := range purchase.Materials {
			if err := purchaseRepo.CreateLine(&purchase.Materials[i]); err != nil {
				return err
			}
		}
		if expense != nil {
			if err := expenseRepo.Create(expense); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// GetByID obtiene una compra con sus líneas.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// List lista compras, opcionalmente acotadas por rango de fechas.
func (uc *PurchaseUseCase) List(from, to *time.Time, limit, offset int) ([]dto.PurchaseResponse, error) {
	list, err := uc.purchaseRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPurchaseResponse(p))
	}
	return out, nil
}

// Delete elimina una compra. El gasto enlazado, si existe, se conserva.
func (uc *PurchaseUseCase) Delete(id string) error {
	return uc.purchaseRepo.Delete(id)
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	total := decimal.Zero
	lines := make([]dto.PurchaseLineResponse, 0, len(p.Materials))
	for _, m := range p.Materials {
		total = total.Add(m.PriceAtTime.Mul(m.Quantity).Round(2))
		lines = append(lines, dto.PurchaseLineResponse{
			ID:          m.ID,
			MaterialID:  m.MaterialID,
			Quantity:    m.Quantity,
			PriceAtTime: m.PriceAtTime,
		})
	}
	return &dto.PurchaseResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Date:       p.Date.Format("2006-01-02"),
		Total:      total,
		ExpenseID:  p.ExpenseID,
		Lines:      lines,
	}
}

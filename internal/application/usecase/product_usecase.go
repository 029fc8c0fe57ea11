package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/costing"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para piezas del catálogo, más el desglose
// de costo y la clasificación de precios contra el sugerido.
type ProductUseCase struct {
	repo          repository.ProductRepository
	materialRepo  repository.MaterialRepository
	procedureRepo repository.ProcedureRepository
	costingCfg    costing.Config
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	materialRepo repository.MaterialRepository,
	procedureRepo repository.ProcedureRepository,
	costingCfg costing.Config,
) *ProductUseCase {
	return &ProductUseCase{
		repo:          repo,
		materialRepo:  materialRepo,
		procedureRepo: procedureRepo,
		costingCfg:    costingCfg,
	}
}

// Create crea una pieza nueva. El código debe ser único en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                         uuid.New().String(),
		Name:                       in.Name,
		Code:                       in.Code,
		CategoryID:                 in.CategoryID,
		MinutesToMake:              in.MinutesToMake,
		FinalSellingPriceRetail:    in.FinalSellingPriceRetail,
		FinalSellingPriceWholesale: in.FinalSellingPriceWholesale,
		Stock:                      in.Stock,
		LowStockAlert:              in.LowStockAlert,
		Active:                     true,
		Materials:                  toRecipeMaterials(in.Materials),
		Procedures:                 toRecipeProcedures(in.Procedures),
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene una pieza por ID con su receta.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza una pieza. El stock no se modifica por aquí: se maneja con
// las operaciones de stock y las ventas.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.MinutesToMake != nil {
		product.MinutesToMake = *in.MinutesToMake
	}
	if in.FinalSellingPriceRetail != nil {
		product.FinalSellingPriceRetail = *in.FinalSellingPriceRetail
	}
	if in.FinalSellingPriceWholesale != nil {
		product.FinalSellingPriceWholesale = *in.FinalSellingPriceWholesale
	}
	if in.LowStockAlert != nil {
		product.LowStockAlert = *in.LowStockAlert
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	// Cada lista de la receta se reemplaza solo si viene en el body; enviar
	// únicamente materiales no borra los procedimientos guardados.
	if in.Materials != nil || in.Procedures != nil {
		if in.Materials != nil {
			product.Materials = toRecipeMaterials(in.Materials)
		}
		if in.Procedures != nil {
			product.Procedures = toRecipeProcedures(in.Procedures)
		}
		if err := uc.repo.ReplaceRecipe(id, product.Materials, product.Procedures); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// List lista piezas con paginación.
func (uc *ProductUseCase) List(limit, offset int, activeOnly bool) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una pieza por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Cost computa el desglose de costo de la pieza (materiales + mano de obra +
// procedimientos), los precios sugeridos y la clasificación de precios.
// Una referencia rota en la receta se reporta como error de integridad.
func (uc *ProductUseCase) Cost(id string) (*dto.ProductCostResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	materialIDs := make([]string, 0, len(product.Materials))
	for _, pm := range product.Materials {
		materialIDs = append(materialIDs, pm.MaterialID)
	}
	materials, err := uc.materialRepo.GetByIDs(materialIDs)
	if err != nil {
		return nil, err
	}
	procedureIDs := make([]string, 0, len(product.Procedures))
	for _, pp := range product.Procedures {
		procedureIDs = append(procedureIDs, pp.ProcedureID)
	}
	procedures, err := uc.procedureRepo.GetByIDs(procedureIDs)
	if err != nil {
		return nil, err
	}

	b, err := costing.Calculate(product, materials, procedures, uc.costingCfg)
	if err != nil {
		return nil, err
	}

	retailDev := costing.DeviationPct(product.FinalSellingPriceRetail, b.SuggestedRetail)
	wholesaleDev := costing.DeviationPct(product.FinalSellingPriceWholesale, b.SuggestedWholesale)

	return &dto.ProductCostResponse{
		ProductID:             product.ID,
		MaterialCost:          b.MaterialCost,
		LaborCost:             b.LaborCost,
		ProcedureCost:         b.ProcedureCost,
		TotalCost:             b.TotalCost,
		SuggestedRetail:       b.SuggestedRetail,
		SuggestedWholesale:    b.SuggestedWholesale,
		RetailDeviationPct:    retailDev,
		WholesaleDeviationPct: wholesaleDev,
		PricingStatus:         costing.ClassifyPricing(retailDev, wholesaleDev, uc.costingCfg.UnderpricedThresholdPct),
	}, nil
}

func toRecipeMaterials(in []dto.ProductMaterialDTO) []entity.ProductMaterial {
	out := make([]entity.ProductMaterial, 0, len(in))
	for _, m := range in {
		out = append(out, entity.ProductMaterial{MaterialID: m.MaterialID, Quantity: m.Quantity})
	}
	return out
}

func toRecipeProcedures(in []dto.ProductProcedureDTO) []entity.ProductProcedure {
	out := make([]entity.ProductProcedure, 0, len(in))
	for _, p := range in {
		out = append(out, entity.ProductProcedure{ProcedureID: p.ProcedureID, Cost: p.Cost})
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	materials := make([]dto.ProductMaterialDTO, 0, len(p.Materials))
	for _, m := range p.Materials {
		materials = append(materials, dto.ProductMaterialDTO{MaterialID: m.MaterialID, Quantity: m.Quantity})
	}
	procedures := make([]dto.ProductProcedureDTO, 0, len(p.Procedures))
	for _, pr := range p.Procedures {
		procedures = append(procedures, dto.ProductProcedureDTO{ProcedureID: pr.ProcedureID, Cost: pr.Cost})
	}
	return &dto.ProductResponse{
		ID:                         p.ID,
		Name:                       p.Name,
		Code:                       p.Code,
		CategoryID:                 p.CategoryID,
		MinutesToMake:              p.MinutesToMake,
		FinalSellingPriceRetail:    p.FinalSellingPriceRetail,
		FinalSellingPriceWholesale: p.FinalSellingPriceWholesale,
		Stock:                      p.Stock,
		LowStockAlert:              p.LowStockAlert,
		StockStatus:                entity.ClassifyStock(p.Stock, p.LowStockAlert),
		Active:                     p.Active,
		Materials:                  materials,
		Procedures:                 procedures,
	}
}

package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/application/usecase"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/costing"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: se embebe la interfaz y solo se implementa lo que el caso
// de uso debe tocar; un método no esperado haría panic.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	repository.ProductRepository
	product      *entity.Product
	getByCodeErr error
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.product != nil && r.product.ID == id {
		return r.product, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	if r.getByCodeErr != nil {
		return nil, r.getByCodeErr
	}
	if r.product != nil && r.product.Code == code {
		return r.product, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) ReplaceRecipe(productID string, materials []entity.ProductMaterial, procedures []entity.ProductProcedure) error {
	r.product.Materials = materials
	r.product.Procedures = procedures
	return nil
}

func productFixture() (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{product: &entity.Product{
		ID:            "anillo",
		Name:          "Anillo oro 18k",
		Code:          "AN-001",
		MinutesToMake: 30,
		Materials: []entity.ProductMaterial{
			{MaterialID: "oro", Quantity: decimal.RequireFromString("2.5")},
		},
		Procedures: []entity.ProductProcedure{
			{ProcedureID: "pulido", Cost: decimal.RequireFromString("5.00")},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}}
	uc := usecase.NewProductUseCase(repo, nil, nil, costing.Config{})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update: la receta se reemplaza por lista, no en bloque
// ──────────────────────────────────────────────────────────────────────────────

// Enviar solo materiales no debe borrar los procedimientos guardados: el costo
// de la pieza (materiales + mano de obra + procedimientos) depende de ambos.
func TestUpdateProduct_SoloMaterialesConservaProcedimientos(t *testing.T) {
	uc, repo := productFixture()

	out, err := uc.Update("anillo", dto.UpdateProductRequest{
		Materials: []dto.ProductMaterialDTO{
			{MaterialID: "plata", Quantity: decimal.RequireFromString("4")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, repo.product.Materials, 1)
	assert.Equal(t, "plata", repo.product.Materials[0].MaterialID)
	require.Len(t, repo.product.Procedures, 1, "los procedimientos no deben vaciarse")
	assert.Equal(t, "pulido", repo.product.Procedures[0].ProcedureID)
	assert.Len(t, out.Procedures, 1)
}

func TestUpdateProduct_SoloProcedimientosConservaMateriales(t *testing.T) {
	uc, repo := productFixture()

	_, err := uc.Update("anillo", dto.UpdateProductRequest{
		Procedures: []dto.ProductProcedureDTO{
			{ProcedureID: "engaste", Cost: decimal.RequireFromString("12.00")},
		},
	})
	require.NoError(t, err)

	require.Len(t, repo.product.Procedures, 1)
	assert.Equal(t, "engaste", repo.product.Procedures[0].ProcedureID)
	require.Len(t, repo.product.Materials, 1, "los materiales no deben vaciarse")
	assert.Equal(t, "oro", repo.product.Materials[0].MaterialID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create: unicidad de código
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_CodigoDuplicado(t *testing.T) {
	uc, _ := productFixture()

	_, err := uc.Create(dto.CreateProductRequest{Name: "Otro anillo", Code: "AN-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Un fallo de lectura al verificar el código se propaga tal cual; no debe
// leerse como "no hay duplicado".
func TestCreateProduct_ErrorAlVerificarCodigoSePropaga(t *testing.T) {
	uc, repo := productFixture()
	repo.getByCodeErr = errors.New("conexión perdida")

	_, err := uc.Create(dto.CreateProductRequest{Name: "Dije", Code: "DJ-001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.getByCodeErr)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/application/pricing"
	"github.com/atelier-soft/joyeria-api/internal/application/sales"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — embeben la interfaz y sobreescriben solo lo que el caso
// de uso toca; un método no esperado haría panic y delataría el flujo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	repository.SaleRepository
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) CreateLine(line *entity.SaleProduct) error { return nil }

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.sales, id)
	return nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) AdjustStock(productID string, delta int) error {
	if p, ok := r.products[productID]; ok {
		p.Stock += delta
	}
	return nil
}

type fakeCustomerRepo struct {
	repository.CustomerRepository
	customers      map[string]*entity.Customer
	firstSaleCalls int
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) SetFirstSaleDate(customerID string, date time.Time) error {
	r.firstSaleCalls++
	c := r.customers[customerID]
	if c.FirstSaleDate == nil {
		c.FirstSaleDate = &date
	}
	return nil
}

type fakeLocationRepo struct {
	repository.LocationRepository
	locations map[string]*entity.Location
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.locations[id], nil
}

// fakeTxRunner ejecuta el callback directamente con los mismos fakes;
// la atomicidad real la cubren los tests de integración contra la DB.
type fakeTxRunner struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(r.saleRepo, r.productRepo, r.customerRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

type fixture struct {
	uc        *sales.SaleUseCase
	sales     *fakeSaleRepo
	products  *fakeProductRepo
	customers *fakeCustomerRepo
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"anillo": {
			ID:                      "anillo",
			Name:                    "Anillo solitario",
			Code:                    "AN-001",
			Stock:                   5,
			FinalSellingPriceRetail: d("100.00"),
		},
	}}
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"maria": {ID: "maria", Name: "María", TIN: "900123"},
	}}
	locations := &fakeLocationRepo{locations: map[string]*entity.Location{
		"centro": {ID: "centro", Name: "Local centro"},
	}}
	saleRepo := newFakeSaleRepo()
	runner := &fakeTxRunner{saleRepo: saleRepo, productRepo: products, customerRepo: customers}

	uc := sales.NewSaleUseCase(
		runner, saleRepo, products, customers, locations, nil,
		pricing.Config{MaxDiscountPct: d("50")},
	)
	return &fixture{uc: uc, sales: saleRepo, products: products, customers: customers}
}

func saleRequest() dto.CreateSaleRequest {
	pct := d("10")
	return dto.CreateSaleRequest{
		Items:              []dto.SaleItemRequest{{ProductID: "anillo", Quantity: 2}},
		CustomerID:         "maria",
		LocationID:         "centro",
		PaymentMethod:      entity.PaymentMethodCash,
		DiscountPercentage: &pct,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateSale
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaStockYCongelaSnapshots(t *testing.T) {
	f := newFixture()

	out, err := f.uc.CreateSale(context.Background(), saleRequest())
	require.NoError(t, err)

	// 2 unidades a 100.00 con 10% de descuento
	assert.True(t, out.SuggestedTotalPrice.Equal(d("200.00")), "sugerido: %s", out.SuggestedTotalPrice)
	assert.True(t, out.FinalTotalPrice.Equal(d("180.00")), "final: %s", out.FinalTotalPrice)
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].ActualUnitPrice.Equal(d("90.00")), "unitario: %s", out.Lines[0].ActualUnitPrice)
	assert.Equal(t, "Anillo solitario", out.Lines[0].ProductName,
		"el nombre de la pieza se congela en la línea")

	assert.Equal(t, 3, f.products.products["anillo"].Stock,
		"la venta debe descontar el stock por línea")
}

func TestCreateSale_FijaFechaPrimeraVentaSoloUnaVez(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateSale(context.Background(), saleRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, f.customers.firstSaleCalls)
	require.NotNil(t, f.customers.customers["maria"].FirstSaleDate)

	// Segunda venta del mismo cliente: la fecha ya está fijada
	_, err = f.uc.CreateSale(context.Background(), saleRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, f.customers.firstSaleCalls,
		"la fecha de primera venta no debe reescribirse")
}

func TestCreateSale_VentaDeMostradorSinCliente(t *testing.T) {
	f := newFixture()
	req := saleRequest()
	req.CustomerID = ""

	out, err := f.uc.CreateSale(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, out.CustomerID)
	assert.Zero(t, f.customers.firstSaleCalls)
}

func TestCreateSale_CarritoVacio(t *testing.T) {
	f := newFixture()
	req := saleRequest()
	req.Items = nil

	_, err := f.uc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreateSale_MetodoPagoInvalido(t *testing.T) {
	f := newFixture()
	req := saleRequest()
	req.PaymentMethod = "cheque"

	_, err := f.uc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ProductoInexistente(t *testing.T) {
	f := newFixture()
	req := saleRequest()
	req.Items = []dto.SaleItemRequest{{ProductID: "no-existe", Quantity: 1}}

	_, err := f.uc.CreateSale(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteSale
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteSale_RevierteStockPorLinea(t *testing.T) {
	f := newFixture()

	out, err := f.uc.CreateSale(context.Background(), saleRequest())
	require.NoError(t, err)
	require.Equal(t, 3, f.products.products["anillo"].Stock)

	require.NoError(t, f.uc.DeleteSale(context.Background(), out.ID))
	assert.Equal(t, 5, f.products.products["anillo"].Stock,
		"eliminar la venta debe devolver el stock")
	assert.Empty(t, f.sales.sales)
}

func TestDeleteSale_VentaInexistente(t *testing.T) {
	f := newFixture()
	err := f.uc.DeleteSale(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

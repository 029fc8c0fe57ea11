package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelier-soft/joyeria-api/internal/application/sales"
	"github.com/atelier-soft/joyeria-api/internal/application/usecase"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos de venta y hace Commit o Rollback.
// Lo usa el registro/eliminación de ventas: cabecera, líneas, stock y fecha de
// primera venta se confirman juntos o no se confirma nada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	productRepo := NewProductRepository(tx)
	customerRepo := NewCustomerRepository(tx)

	if err := fn(saleRepo, productRepo, customerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PurchaseRunner adapta el pool al contrato transaccional de compras.
type PurchaseRunner struct {
	pool *pgxpool.Pool
}

// NewPurchaseRunner construye el runner de compras.
func NewPurchaseRunner(pool *pgxpool.Pool) *PurchaseRunner {
	return &PurchaseRunner{pool: pool}
}

var _ usecase.PurchaseTxRunner = (*PurchaseRunner)(nil)

// Run inicia una transacción con los repos de compra y gasto: la compra y su
// gasto enlazado se persisten como unidad.
func (r *PurchaseRunner) Run(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	expenseRepo repository.ExpenseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPurchaseRepository(tx), NewExpenseRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

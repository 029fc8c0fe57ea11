package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste la cabecera de la compra. Las líneas se insertan con CreateLine.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, supplier_id, date, expense_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.SupplierID, purchase.Date, nullIfEmpty(purchase.ExpenseID),
		purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de compra con su snapshot de precio.
func (r *PurchaseRepo) CreateLine(line *entity.PurchaseMaterial) error {
	query := `
		INSERT INTO purchase_materials (id, purchase_id, material_id, quantity, price_at_time)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.PurchaseID, line.MaterialID, line.Quantity, line.PriceAtTime,
	)
	if err != nil {
		return fmt.Errorf("insert purchase line: %w", err)
	}
	return nil
}

// GetByID obtiene una compra con sus líneas.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `SELECT id, supplier_id, date, expense_id, created_at, updated_at FROM purchases WHERE id = $1`
	p, err := r.scanPurchase(r.q.QueryRow(context.Background(), query, id))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadLines(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListBySupplier lista compras de un proveedor con paginación.
func (r *PurchaseRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Purchase, error) {
	query := `SELECT id, supplier_id, date, expense_id, created_at, updated_at
		FROM purchases WHERE supplier_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
	return r.queryPurchases(query, supplierID, limit, offset)
}

// List lista compras, opcionalmente acotadas por rango de fechas.
func (r *PurchaseRepo) List(from, to *time.Time, limit, offset int) ([]*entity.Purchase, error) {
	query := `SELECT id, supplier_id, date, expense_id, created_at, updated_at FROM purchases`
	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))
	return r.queryPurchases(query, args...)
}

// Delete elimina una compra y sus líneas (cascada en DB).
func (r *PurchaseRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseRepo) queryPurchases(query string, args ...any) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var purchases []*entity.Purchase
	for rows.Next() {
		p, err := r.scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range purchases {
		if err := r.loadLines(p); err != nil {
			return nil, err
		}
	}
	return purchases, nil
}

func (r *PurchaseRepo) loadLines(p *entity.Purchase) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, purchase_id, material_id, quantity, price_at_time
		FROM purchase_materials WHERE purchase_id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load purchase lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m entity.PurchaseMaterial
		if err := rows.Scan(&m.ID, &m.PurchaseID, &m.MaterialID, &m.Quantity, &m.PriceAtTime); err != nil {
			return fmt.Errorf("scan purchase line: %w", err)
		}
		p.Materials = append(p.Materials, m)
	}
	return rows.Err()
}

func (r *PurchaseRepo) scanPurchase(row pgxScanner) (*entity.Purchase, error) {
	var p entity.Purchase
	var expenseID *string
	err := row.Scan(&p.ID, &p.SupplierID, &p.Date, &expenseID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan purchase: %w", err)
	}
	if expenseID != nil {
		p.ExpenseID = *expenseID
	}
	return &p, nil
}

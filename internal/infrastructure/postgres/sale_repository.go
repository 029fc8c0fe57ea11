package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, date, customer_id, location_id, payment_method, is_wholesale,
	packaging_cost, suggested_total_price, final_total_price, discount_percentage,
	created_at, updated_at`

// Create persiste la cabecera de la venta. Las líneas se insertan con CreateLine.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, nullIfEmpty(sale.CustomerID), sale.LocationID,
		sale.PaymentMethod, sale.IsWholesale, sale.PackagingCost,
		sale.SuggestedTotalPrice, sale.FinalTotalPrice, sale.DiscountPercentage,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta con sus snapshots de precio y nombre.
func (r *SaleRepo) CreateLine(line *entity.SaleProduct) error {
	query := `
		INSERT INTO sale_products (id, sale_id, product_id, product_name, quantity,
			suggested_unit_price, actual_unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.ProductID, line.ProductName, line.Quantity,
		line.SuggestedUnitPrice, line.ActualUnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := r.scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil || s == nil {
		return s, err
	}
	if err := r.loadLines(s); err != nil {
		return nil, err
	}
	return s, nil
}

// List consulta ventas componiendo los predicados presentes en el filtro.
// Cada campo no vacío añade una condición AND; el filtro vacío lista todo.
func (r *SaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, error) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.From != nil {
		conds = append(conds, "s.date >= "+arg(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "s.date <= "+arg(*f.To))
	}
	if f.CustomerID != "" {
		conds = append(conds, "s.customer_id = "+arg(f.CustomerID))
	}
	if f.LocationID != "" {
		conds = append(conds, "s.location_id = "+arg(f.LocationID))
	}
	if f.PaymentMethod != "" {
		conds = append(conds, "s.payment_method = "+arg(f.PaymentMethod))
	}
	if f.ProductID != "" {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM sale_products sp WHERE sp.sale_id = s.id AND sp.product_id = `+arg(f.ProductID)+`)`)
	}
	if f.CategoryID != "" {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM sale_products sp
			JOIN products p ON p.id = sp.product_id
			WHERE sp.sale_id = s.id AND p.category_id = `+arg(f.CategoryID)+`)`)
	}

	query := `SELECT ` + saleColumns + ` FROM sales s`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY s.date DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var sales []*entity.Sale
	for rows.Next() {
		s, err := r.scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range sales {
		if err := r.loadLines(s); err != nil {
			return nil, err
		}
	}
	return sales, nil
}

// Delete elimina la venta y sus líneas (cascada en DB).
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) loadLines(s *entity.Sale) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, product_id, product_name, quantity, suggested_unit_price, actual_unit_price
		FROM sale_products WHERE sale_id = $1`, s.ID)
	if err != nil {
		return fmt.Errorf("load sale lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.SaleProduct
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.ProductName, &l.Quantity,
			&l.SuggestedUnitPrice, &l.ActualUnitPrice); err != nil {
			return fmt.Errorf("scan sale line: %w", err)
		}
		s.Products = append(s.Products, l)
	}
	return rows.Err()
}

func (r *SaleRepo) scanSale(row pgxScanner) (*entity.Sale, error) {
	var s entity.Sale
	var customerID *string
	err := row.Scan(
		&s.ID, &s.Date, &customerID, &s.LocationID, &s.PaymentMethod, &s.IsWholesale,
		&s.PackagingCost, &s.SuggestedTotalPrice, &s.FinalTotalPrice, &s.DiscountPercentage,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	if customerID != nil {
		s.CustomerID = *customerID
	}
	return &s, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, code, category_id, minutes_to_make,
	final_selling_price_retail, final_selling_price_wholesale,
	stock, low_stock_alert, active, created_at, updated_at`

// Create persiste una pieza nueva junto con su receta.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Code, nullIfEmpty(product.CategoryID), product.MinutesToMake,
		product.FinalSellingPriceRetail, product.FinalSellingPriceWholesale,
		product.Stock, product.LowStockAlert, product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertRecipe(product.ID, product.Materials, product.Procedures)
}

// GetByID obtiene una pieza por ID con su receta cargada.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := r.scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadRecipe(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByCode obtiene una pieza por código de catálogo.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	p, err := r.scanProduct(r.q.QueryRow(context.Background(), query, code))
	if err != nil || p == nil {
		return p, err
	}
	if err := r.loadRecipe(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List lista piezas con paginación, cargando la receta de cada una.
func (r *ProductRepo) List(limit, offset int, activeOnly bool) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY code LIMIT $1 OFFSET $2`
	return r.queryProducts(query, limit, offset)
}

// ListByCategory lista piezas de una categoría con paginación.
func (r *ProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE category_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	return r.queryProducts(query, categoryID, limit, offset)
}

// Update actualiza la pieza. El stock no se toca aquí: se maneja con UpdateStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category_id = $3, minutes_to_make = $4,
			final_selling_price_retail = $5, final_selling_price_wholesale = $6,
			low_stock_alert = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.CategoryID), product.MinutesToMake,
		product.FinalSellingPriceRetail, product.FinalSellingPriceWholesale,
		product.LowStockAlert, product.Active, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el contador de stock (positivo, cero o negativo).
func (r *ProductRepo) UpdateStock(productID string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// AdjustStock aplica un delta relativo al contador en una sola sentencia, de
// modo que dos transacciones concurrentes no se pisen el descuento.
func (r *ProductRepo) AdjustStock(productID string, delta int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust product stock: %w", err)
	}
	return nil
}

// ReplaceRecipe reemplaza la receta completa (materiales y procedimientos).
func (r *ProductRepo) ReplaceRecipe(productID string, materials []entity.ProductMaterial, procedures []entity.ProductProcedure) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM product_materials WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete product materials: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM product_procedures WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete product procedures: %w", err)
	}
	return r.insertRecipe(productID, materials, procedures)
}

// Delete elimina la pieza y su receta (cascada en DB).
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) insertRecipe(productID string, materials []entity.ProductMaterial, procedures []entity.ProductProcedure) error {
	ctx := context.Background()
	for _, m := range materials {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_materials (id, product_id, material_id, quantity) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), productID, m.MaterialID, m.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert product material: %w", err)
		}
	}
	for _, p := range procedures {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_procedures (id, product_id, procedure_id, cost) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), productID, p.ProcedureID, p.Cost,
		)
		if err != nil {
			return fmt.Errorf("insert product procedure: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) loadRecipe(p *entity.Product) error {
	ctx := context.Background()
	rows, err := r.q.Query(ctx,
		`SELECT material_id, quantity FROM product_materials WHERE product_id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load product materials: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m entity.ProductMaterial
		if err := rows.Scan(&m.MaterialID, &m.Quantity); err != nil {
			return fmt.Errorf("scan product material: %w", err)
		}
		p.Materials = append(p.Materials, m)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.q.Query(ctx,
		`SELECT procedure_id, cost FROM product_procedures WHERE product_id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load product procedures: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pp entity.ProductProcedure
		if err := rows.Scan(&pp.ProcedureID, &pp.Cost); err != nil {
			return fmt.Errorf("scan product procedure: %w", err)
		}
		p.Procedures = append(p.Procedures, pp)
	}
	return rows.Err()
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var products []*entity.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := r.loadRecipe(p); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *ProductRepo) scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Code, &categoryID, &p.MinutesToMake,
		&p.FinalSellingPriceRetail, &p.FinalSellingPriceWholesale,
		&p.Stock, &p.LowStockAlert, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar los scan helpers.
type pgxScanner interface {
	Scan(dest ...any) error
}

// nullIfEmpty convierte "" en NULL para columnas FK opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

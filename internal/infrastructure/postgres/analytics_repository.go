package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para reportes y dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesByPeriod agrupa las ventas del rango por semana ISO, mes o año.
// La etiqueta del bucket la produce to_char: 2025-W03, 2025-01, 2025.
func (r *AnalyticsRepo) GetSalesByPeriod(
	ctx context.Context,
	bucket string,
	from, to time.Time,
) ([]repository.PeriodSalesResult, error) {
	var label string
	switch bucket {
	case repository.BucketWeek:
		label = `to_char(s.date, 'IYYY-"W"IW')`
	case repository.BucketMonth:
		label = `to_char(s.date, 'YYYY-MM')`
	case repository.BucketYear:
		label = `to_char(s.date, 'YYYY')`
	default:
		return nil, domain.ErrInvalidInput
	}

	query := fmt.Sprintf(`
	SELECT
	    %s                                   AS bucket,
	    COUNT(*)                             AS sale_count,
	    COALESCE(SUM(s.final_total_price), 0)     AS revenue,
	    COALESCE(SUM(s.suggested_total_price), 0) AS suggested_total,
	    COALESCE(SUM(s.discount_percentage), 0)   AS discount_pct_sum
	FROM sales s
	WHERE s.date BETWEEN $1 AND $2
	GROUP BY 1
	ORDER BY 1`, label)

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.PeriodSalesResult
	for rows.Next() {
		var row repository.PeriodSalesResult
		if err := rows.Scan(
			&row.Bucket,
			&row.SaleCount,
			&row.Revenue,
			&row.SuggestedTotal,
			&row.DiscountPctSum,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesByPeriod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesByDimension agrupa ventas del rango por la dimensión indicada.
// El ingreso se atribuye a nivel de línea (precio real × cantidad), así las
// dimensiones de producto/material reparten correctamente ventas mixtas.
// Las ventas de mostrador se consolidan bajo "Mostrador" en la dimensión cliente.
func (r *AnalyticsRepo) GetSalesByDimension(
	ctx context.Context,
	dimension string,
	from, to time.Time,
) ([]repository.DimensionSalesResult, error) {
	var idExpr, nameExpr, join string
	switch dimension {
	case repository.DimensionCustomer:
		idExpr = `COALESCE(c.id::TEXT, 'walk-in')`
		nameExpr = `COALESCE(c.name, 'Mostrador')`
		join = `LEFT JOIN customers c ON c.id = s.customer_id`
	case repository.DimensionProduct:
		idExpr = `sp.product_id::TEXT`
		nameExpr = `MAX(sp.product_name)`
	case repository.DimensionCategory:
		idExpr = `COALESCE(cat.id::TEXT, 'none')`
		nameExpr = `COALESCE(cat.name, 'Sin categoría')`
		join = `LEFT JOIN products p ON p.id = sp.product_id
		LEFT JOIN categories cat ON cat.id = p.category_id`
	case repository.DimensionLocation:
		idExpr = `l.id::TEXT`
		nameExpr = `l.name`
		join = `JOIN locations l ON l.id = s.location_id`
	case repository.DimensionMaterial:
		idExpr = `m.id::TEXT`
		nameExpr = `m.name`
		join = `JOIN product_materials pm ON pm.product_id = sp.product_id
		JOIN materials m ON m.id = pm.material_id`
	case repository.DimensionProcedure:
		idExpr = `pr.id::TEXT`
		nameExpr = `pr.name`
		join = `JOIN product_procedures pp ON pp.product_id = sp.product_id
		JOIN procedures pr ON pr.id = pp.procedure_id`
	case repository.DimensionSupplier:
		// Proveedores que han surtido algún material de la receta de la pieza vendida.
		idExpr = `sup.id::TEXT`
		nameExpr = `sup.name`
		join = `JOIN (
			SELECT DISTINCT pm.product_id, pu.supplier_id
			FROM product_materials pm
			JOIN purchase_materials pum ON pum.material_id = pm.material_id
			JOIN purchases pu ON pu.id = pum.purchase_id
		) ps ON ps.product_id = sp.product_id
		JOIN suppliers sup ON sup.id = ps.supplier_id`
	default:
		return nil, domain.ErrInvalidInput
	}

	groupBy := "1, 2"
	if dimension == repository.DimensionProduct {
		groupBy = "1" // nameExpr es MAX(), no entra al GROUP BY
	}

	query := fmt.Sprintf(`
	SELECT
	    %s                                                        AS dim_id,
	    %s                                                        AS dim_name,
	    COUNT(DISTINCT s.id)                                      AS sale_count,
	    COALESCE(SUM(sp.quantity), 0)                             AS units_sold,
	    COALESCE(SUM(sp.actual_unit_price * sp.quantity), 0)      AS revenue,
	    COALESCE(SUM(sp.suggested_unit_price * sp.quantity), 0)   AS suggested_total
	FROM sales s
	JOIN sale_products sp ON sp.sale_id = s.id
	%s
	WHERE s.date BETWEEN $1 AND $2
	GROUP BY %s
	ORDER BY revenue DESC`, idExpr, nameExpr, join, groupBy)

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSalesByDimension: %w", err)
	}
	defer rows.Close()

	var results []repository.DimensionSalesResult
	for rows.Next() {
		var row repository.DimensionSalesResult
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.SaleCount,
			&row.UnitsSold,
			&row.Revenue,
			&row.SuggestedTotal,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetSalesByDimension scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesTotals devuelve conteo, ingreso, total sugerido y suma de porcentajes
// de descuento del rango. COALESCE a cero si el período no tiene ventas.
func (r *AnalyticsRepo) GetSalesTotals(
	ctx context.Context,
	from, to time.Time,
) (count int, revenue, suggested, discountPctSum decimal.Decimal, err error) {
	const query = `
	SELECT
	    COUNT(*),
	    COALESCE(SUM(final_total_price),     0),
	    COALESCE(SUM(suggested_total_price), 0),
	    COALESCE(SUM(discount_percentage),   0)
	FROM sales
	WHERE date BETWEEN $1 AND $2`

	err = r.pool.QueryRow(ctx, query, from, to).
		Scan(&count, &revenue, &suggested, &discountPctSum)
	if err != nil {
		return 0, decimal.Zero, decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesTotals: %w", err)
	}
	return count, revenue, suggested, discountPctSum, nil
}

// GetExpensesTotal devuelve la suma de gastos del rango (cero si no hay).
func (r *AnalyticsRepo) GetExpensesTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.GetExpensesTotal: %w", err)
	}
	return total, nil
}

// GetTopProducts devuelve los `limit` productos con mayor ingreso del rango.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	from, to time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    sp.product_id::TEXT                                  AS product_id,
	    MAX(sp.product_name)                                 AS product_name,
	    SUM(sp.quantity)                                     AS units_sold,
	    SUM(sp.actual_unit_price * sp.quantity)              AS revenue
	FROM sale_products sp
	JOIN sales s ON s.id = sp.sale_id
	WHERE s.date BETWEEN $1 AND $2
	GROUP BY sp.product_id
	ORDER BY revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountStockAlerts cuenta piezas activas en estado LOW (0..umbral) y NEGATIVE (<0).
func (r *AnalyticsRepo) CountStockAlerts(ctx context.Context) (low, negative int, err error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE stock >= 0 AND stock <= low_stock_alert) AS low,
	    COUNT(*) FILTER (WHERE stock < 0)                               AS negative
	FROM products
	WHERE active`

	err = r.pool.QueryRow(ctx, query).Scan(&low, &negative)
	if err != nil {
		return 0, 0, fmt.Errorf("analytics.CountStockAlerts: %w", err)
	}
	return low, negative, nil
}

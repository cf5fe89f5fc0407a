package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para estadísticas de stock y movimientos.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// MonthlyStockChanges suma stock_change por año/mes (UTC) sobre todos los movimientos.
func (r *StatsRepo) MonthlyStockChanges(ctx context.Context) ([]repository.MonthlyChange, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR  FROM m.created_at AT TIME ZONE 'UTC')::INT AS year,
	    EXTRACT(MONTH FROM m.created_at AT TIME ZONE 'UTC')::INT AS month,
	    SUM(m.stock_change)::BIGINT                               AS total
	FROM movements m
	GROUP BY 1, 2
	ORDER BY 1, 2`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.MonthlyStockChanges: %w", err)
	}
	defer rows.Close()

	results := []repository.MonthlyChange{}
	for rows.Next() {
		var row repository.MonthlyChange
		if err := rows.Scan(&row.Year, &row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("stats.MonthlyStockChanges scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockCountByCategory cuenta los stocks activos por categoría.
// Los stocks cuya categoría no existe se agrupan con nombre vacío.
func (r *StatsRepo) StockCountByCategory(ctx context.Context) ([]repository.CategoryCount, error) {
	const query = `
	SELECT
	    s.category_id,
	    COALESCE(c.name, '') AS category_name,
	    COUNT(*)             AS total
	FROM stocks s
	LEFT JOIN categories c ON c.id::text = s.category_id
	WHERE s.status = 'Active'
	GROUP BY s.category_id, c.name
	ORDER BY category_name, s.category_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.StockCountByCategory: %w", err)
	}
	defer rows.Close()

	results := []repository.CategoryCount{}
	for rows.Next() {
		var row repository.CategoryCount
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Count); err != nil {
			return nil, fmt.Errorf("stats.StockCountByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// Valuation suma unidades y valor a precio de compra y de venta de los stocks activos.
// Usa COALESCE para devolver cero si no hay filas.
func (r *StatsRepo) Valuation(ctx context.Context, pattern string) (repository.ValuationResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(s.stock_count), 0)::BIGINT                    AS stock_count,
	    COALESCE(SUM(s.stock_count::NUMERIC * s.buying_price), 0)  AS buying_value,
	    COALESCE(SUM(s.stock_count::NUMERIC * s.selling_price), 0) AS selling_value
	FROM stocks s
	WHERE s.status = 'Active'
	  AND ($1 = '' OR s.code ~ $1 OR s.name ~ $1)`

	var res repository.ValuationResult
	err := r.pool.QueryRow(ctx, query, pattern).
		Scan(&res.StockCount, &res.BuyingValue, &res.SellingValue)
	if err != nil {
		return repository.ValuationResult{}, fmt.Errorf("stats.Valuation: %w", err)
	}
	return res, nil
}

// ListCritical devuelve los stocks activos en OutOfStock, Urgent o Critical.
func (r *StatsRepo) ListCritical(ctx context.Context) ([]*repository.StockDetail, error) {
	query := stockDetailSelect + `
	WHERE s.status = 'Active'
	  AND s.criticality_status IN ('OutOfStock', 'Urgent', 'Critical')
	ORDER BY s.code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.ListCritical: %w", err)
	}
	return collectStockDetails(rows)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `s.id, s.code, s.name, s.status, s.category_id, s.location_id,
	s.criticality_level, s.criticality_status, s.stock_count, s.buying_price, s.selling_price,
	s.qr_code, s.created_by, s.updated_by, s.created_at, s.updated_at`

const stockDetailSelect = `
	SELECT ` + stockColumns + `,
		COALESCE(c.name, ''), COALESCE(l.name, ''), COALESCE(u.name, '')
	FROM stocks s
	LEFT JOIN categories c ON c.id::text = s.category_id
	LEFT JOIN locations l ON l.id::text = s.location_id
	LEFT JOIN users u ON u.id = s.created_by`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserta un stock nuevo.
func (r *StockRepo) Create(ctx context.Context, s *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, code, name, status, category_id, location_id,
			criticality_level, criticality_status, stock_count, buying_price, selling_price,
			qr_code, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Code, s.Name, s.Status, s.CategoryID, s.LocationID,
		s.CriticalityLevel, s.CriticalityStatus, s.StockCount, s.BuyingPrice, s.SellingPrice,
		s.QRCode, s.CreatedBy, s.UpdatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// nil, nil si no existe.
func (r *StockRepo) GetForUpdate(ctx context.Context, id string) (*entity.Stock, error) {
	if !validID(id) {
		return nil, nil
	}
	var s entity.Stock
	err := scanStock(r.q.QueryRow(ctx, `SELECT `+stockColumns+` FROM stocks s WHERE s.id = $1 FOR UPDATE`, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// GetDetail obtiene el stock con los nombres de categoría, ubicación y autor.
func (r *StockRepo) GetDetail(ctx context.Context, id string) (*repository.StockDetail, error) {
	if !validID(id) {
		return nil, nil
	}
	var d repository.StockDetail
	err := scanStockDetail(r.q.QueryRow(ctx, stockDetailSelect+` WHERE s.id = $1`, id), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock detail: %w", err)
	}
	return &d, nil
}

// Update reescribe los campos mutables. created_by y created_at no se tocan.
func (r *StockRepo) Update(ctx context.Context, s *entity.Stock) error {
	query := `
		UPDATE stocks SET code = $2, name = $3, status = $4, category_id = $5, location_id = $6,
			criticality_level = $7, criticality_status = $8, stock_count = $9,
			buying_price = $10, selling_price = $11, qr_code = $12, updated_by = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.Code, s.Name, s.Status, s.CategoryID, s.LocationID,
		s.CriticalityLevel, s.CriticalityStatus, s.StockCount,
		s.BuyingPrice, s.SellingPrice, s.QRCode, s.UpdatedBy, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock %s: fila inexistente", s.ID)
	}
	return nil
}

// List filtra por estado y por expresión regular (operador ~) sobre code o name, ordenado por code.
func (r *StockRepo) List(ctx context.Context, f repository.StockFilter) ([]*repository.StockDetail, error) {
	query := stockDetailSelect + `
		WHERE ($1 = '' OR s.status = $1)
		  AND ($2 = '' OR s.code ~ $2 OR s.name ~ $2)
		ORDER BY s.code ASC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, f.Status, f.Pattern, limitArg(f.Limit))
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	return collectStockDetails(rows)
}

func collectStockDetails(rows pgx.Rows) ([]*repository.StockDetail, error) {
	defer rows.Close()
	list := []*repository.StockDetail{}
	for rows.Next() {
		var d repository.StockDetail
		if err := scanStockDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func scanStock(row pgx.Row, s *entity.Stock) error {
	return row.Scan(
		&s.ID, &s.Code, &s.Name, &s.Status, &s.CategoryID, &s.LocationID,
		&s.CriticalityLevel, &s.CriticalityStatus, &s.StockCount, &s.BuyingPrice, &s.SellingPrice,
		&s.QRCode, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
}

func scanStockDetail(row pgx.Row, d *repository.StockDetail) error {
	s := &d.Stock
	return row.Scan(
		&s.ID, &s.Code, &s.Name, &s.Status, &s.CategoryID, &s.LocationID,
		&s.CriticalityLevel, &s.CriticalityStatus, &s.StockCount, &s.BuyingPrice, &s.SellingPrice,
		&s.QRCode, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
		&d.CategoryName, &d.LocationName, &d.CreatedByName,
	)
}

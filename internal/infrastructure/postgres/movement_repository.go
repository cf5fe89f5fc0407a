package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementDetailSelect = `
	SELECT m.id, m.type, m.stock_change, m.stock_count_after, m.criticality_status_after,
		m.stock_id, m.created_by, m.created_at,
		s.code, s.name, s.stock_count, s.criticality_level, s.criticality_status, s.status,
		COALESCE(u.name, '')
	FROM movements m
	JOIN stocks s ON s.id = m.stock_id
	LEFT JOIN users u ON u.id = m.created_by`

// MovementRepo adaptador del libro de movimientos. Solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository crea el repositorio (pool o tx).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, type, stock_change, stock_count_after, criticality_status_after,
			stock_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Type, m.StockChange, m.StockCountAfter, m.CriticalityStatusAfter,
		m.StockID, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByStock lista los movimientos de un stock en orden de inserción.
func (r *MovementRepo) ListByStock(ctx context.Context, stockID string) ([]*repository.MovementDetail, error) {
	if !validID(stockID) {
		return []*repository.MovementDetail{}, nil
	}
	rows, err := r.q.Query(ctx, movementDetailSelect+`
		WHERE m.stock_id = $1
		ORDER BY m.created_at ASC, m.seq ASC`, stockID)
	if err != nil {
		return nil, fmt.Errorf("list movements by stock: %w", err)
	}
	return collectMovements(rows)
}

// ListRecent lista los últimos movimientos, del más reciente al más antiguo.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*repository.MovementDetail, error) {
	rows, err := r.q.Query(ctx, movementDetailSelect+`
		ORDER BY m.created_at DESC, m.seq DESC
		LIMIT $1`, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*repository.MovementDetail, error) {
	defer rows.Close()
	list := []*repository.MovementDetail{}
	for rows.Next() {
		var d repository.MovementDetail
		m := &d.Movement
		if err := rows.Scan(
			&m.ID, &m.Type, &m.StockChange, &m.StockCountAfter, &m.CriticalityStatusAfter,
			&m.StockID, &m.CreatedBy, &m.CreatedAt,
			&d.Stock.Code, &d.Stock.Name, &d.Stock.StockCount, &d.Stock.CriticalityLevel,
			&d.Stock.CriticalityStatus, &d.Stock.Status,
			&d.CreatedByName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

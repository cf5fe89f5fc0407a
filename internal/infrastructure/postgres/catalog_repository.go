package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre una tabla de catálogo
// (categories o locations; ambas comparten columnas).
type CatalogRepo struct {
	q     Querier
	table string
}

// NewCatalogRepository construye el adaptador para el catálogo indicado.
// table debe ser entity.CatalogCategories o entity.CatalogLocations.
func NewCatalogRepository(q Querier, table string) (*CatalogRepo, error) {
	switch table {
	case entity.CatalogCategories, entity.CatalogLocations:
	default:
		return nil, fmt.Errorf("catálogo desconocido: %q", table)
	}
	return &CatalogRepo{q: q, table: table}, nil
}

func (r *CatalogRepo) selectSQL() string {
	return `SELECT id, name, status, created_by, updated_by, created_at, updated_at FROM ` + r.table
}

// Create persiste un ítem nuevo. domain.ErrConflict si el nombre ya existe.
func (r *CatalogRepo) Create(ctx context.Context, item *entity.CatalogItem) error {
	query := `
		INSERT INTO ` + r.table + ` (id, name, status, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Status, nullable(item.CreatedBy), nullable(item.UpdatedBy),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*entity.CatalogItem, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, r.selectSQL()+` WHERE id = $1`, id)
}

// GetByName obtiene un ítem por nombre exacto.
func (r *CatalogRepo) GetByName(ctx context.Context, name string) (*entity.CatalogItem, error) {
	return r.findOne(ctx, r.selectSQL()+` WHERE name = $1`, name)
}

func (r *CatalogRepo) findOne(ctx context.Context, query, arg string) (*entity.CatalogItem, error) {
	item, err := scanCatalogItem(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table, err)
	}
	return item, nil
}

// Update actualiza nombre y estado.
func (r *CatalogRepo) Update(ctx context.Context, item *entity.CatalogItem) error {
	query := `UPDATE ` + r.table + ` SET name = $2, status = $3, updated_by = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, item.ID, item.Name, item.Status, nullable(item.UpdatedBy), item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	return nil
}

// List lista ordenado por nombre; status vacío = todos.
func (r *CatalogRepo) List(ctx context.Context, status string) ([]*entity.CatalogItem, error) {
	rows, err := r.q.Query(ctx, r.selectSQL()+` WHERE ($1 = '' OR status = $1) ORDER BY name ASC`, status)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	list := []*entity.CatalogItem{}
	for rows.Next() {
		item, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func scanCatalogItem(row pgx.Row) (*entity.CatalogItem, error) {
	var c entity.CatalogItem
	var createdBy, updatedBy *string
	if err := row.Scan(&c.ID, &c.Name, &c.Status, &createdBy, &updatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CreatedBy = deref(createdBy)
	c.UpdatedBy = deref(updatedBy)
	return &c, nil
}

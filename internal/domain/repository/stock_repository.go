package repository

import (
	"context"

	"github.com/jhoicas/stoqr-api/internal/domain/entity"
)

// StockFilter criterios de listado de stocks.
type StockFilter struct {
	Status  string // vacío = cualquier estado
	Pattern string // expresión regular sobre code o name; vacío = sin filtro
	Limit   int    // <= 0 sin límite
}

// StockDetail stock enriquecido con los nombres de sus referencias.
type StockDetail struct {
	entity.Stock
	CategoryName  string
	LocationName  string
	CreatedByName string
}

// StockRepository define el puerto de persistencia de stocks.
// Las implementaciones pueden estar atadas al pool o a una transacción.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetDetail(ctx context.Context, id string) (*StockDetail, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	// Devuelve nil, nil si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Stock, error)
	Update(ctx context.Context, stock *entity.Stock) error
	List(ctx context.Context, filter StockFilter) ([]*StockDetail, error)
}

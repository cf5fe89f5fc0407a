package repository

import (
	"context"

	"github.com/jhoicas/stoqr-api/internal/domain/entity"
)

// MovementStock proyección del stock que acompaña a cada movimiento listado.
type MovementStock struct {
	Code              string
	Name              string
	StockCount        int64
	CriticalityLevel  int64
	CriticalityStatus string
	Status            string
}

// MovementDetail movimiento enriquecido con su stock y el nombre del autor.
type MovementDetail struct {
	entity.Movement
	Stock         MovementStock
	CreatedByName string
}

// MovementRepository puerto del libro de movimientos. Solo inserción y lectura:
// un movimiento nunca se modifica ni se elimina.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByStock ordena por created_at ascendente.
	ListByStock(ctx context.Context, stockID string) ([]*MovementDetail, error)
	// ListRecent ordena por created_at descendente.
	ListRecent(ctx context.Context, limit int) ([]*MovementDetail, error)
}

package inventory

import (
	"context"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// MovementRecorder expone la lectura del libro de movimientos. La escritura ocurre
// únicamente dentro de las transacciones del StockLedger.
type MovementRecorder struct {
	movRepo repository.MovementRepository
}

// NewMovementRecorder construye el caso de uso de lectura de movimientos.
func NewMovementRecorder(movRepo repository.MovementRepository) *MovementRecorder {
	return &MovementRecorder{movRepo: movRepo}
}

// ListByStock devuelve los movimientos de un stock en orden de registro.
func (uc *MovementRecorder) ListByStock(ctx context.Context, stockID string) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListByStock(ctx, stockID)
	if err != nil {
		return nil, domain.Dependency("listar movimientos del stock", err)
	}
	return toMovementList(list), nil
}

// ListRecent devuelve los últimos limit movimientos, del más reciente al más antiguo.
// limit <= 0 devuelve una lista vacía.
func (uc *MovementRecorder) ListRecent(ctx context.Context, limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		return &dto.MovementListResponse{Items: []dto.MovementResponse{}}, nil
	}
	list, err := uc.movRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, domain.Dependency("listar movimientos recientes", err)
	}
	return toMovementList(list), nil
}

func toMovementList(list []*repository.MovementDetail) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:                     m.ID,
			Type:                   m.Type,
			StockChange:            m.StockChange,
			StockCountAfter:        m.StockCountAfter,
			CriticalityStatusAfter: m.CriticalityStatusAfter,
			StockID:                m.StockID,
			Stock: dto.MovementStockResponse{
				Code:              m.Stock.Code,
				Name:              m.Stock.Name,
				StockCount:        m.Stock.StockCount,
				CriticalityLevel:  m.Stock.CriticalityLevel,
				CriticalityStatus: m.Stock.CriticalityStatus,
				Status:            m.Stock.Status,
			},
			CreatedBy:     m.CreatedBy,
			CreatedByName: m.CreatedByName,
			CreatedAt:     m.CreatedAt,
		})
	}
	return &dto.MovementListResponse{Items: items}
}

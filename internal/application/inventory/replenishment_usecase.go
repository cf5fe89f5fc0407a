package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/inventory"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición a partir de la criticidad de cada stock.
type ReplenishmentUseCase struct {
	statsRepo repository.StatsRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(statsRepo repository.StatsRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{statsRepo: statsRepo}
}

// GenerateReplenishmentList devuelve los stocks activos en OutOfStock, Urgent o Critical con la
// cantidad a pedir para llegar al primer conteo Good y su costo estimado a precio de compra.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	rawItems, err := uc.statsRepo.ListCritical(ctx)
	if err != nil {
		return nil, domain.Dependency("listar stocks críticos", err)
	}
	if len(rawItems) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(rawItems))
	for _, item := range rawItems {
		target := inventory.GoodThreshold(item.CriticalityLevel)
		qty := target - item.StockCount
		if qty < 0 {
			qty = 0
		}
		unitCost := decimal.NewFromInt(item.BuyingPrice)
		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			StockID:            item.ID,
			Code:               item.Code,
			Name:               item.Name,
			CategoryName:       item.CategoryName,
			LocationName:       item.LocationName,
			CriticalityStatus:  item.CriticalityStatus,
			CriticalityLevel:   item.CriticalityLevel,
			CurrentStock:       item.StockCount,
			TargetStock:        target,
			SuggestedOrderQty:  qty,
			UnitCost:           unitCost,
			EstimatedOrderCost: unitCost.Mul(decimal.NewFromInt(qty)),
		})
	}

	// Primero el nivel más urgente; a igual nivel, el mayor déficit; luego por código.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		ra, rb := inventory.CriticalityRank(a.CriticalityStatus), inventory.CriticalityRank(b.CriticalityStatus)
		if ra != rb {
			return ra < rb
		}
		if a.SuggestedOrderQty != b.SuggestedOrderQty {
			return a.SuggestedOrderQty > b.SuggestedOrderQty
		}
		return a.Code < b.Code
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

// Package analytics contiene los casos de uso de estadísticas del inventario:
// serie mensual de movimientos, distribución por categoría y valorización.
package analytics

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"sort"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// MaxMonths cantidad de meses que conserva la serie mensual.
const MaxMonths = 12

// StatsUseCase agrega movimientos y stocks. Solo lectura.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// MonthlySeries devuelve el acumulado de stock_change por mes (UTC), últimos 12 meses.
func (uc *StatsUseCase) MonthlySeries(ctx context.Context) (*dto.MonthlySeriesDTO, error) {
	changes, err := uc.statsRepo.MonthlyStockChanges(ctx)
	if err != nil {
		return nil, domain.Dependency("serie mensual", err)
	}
	series := BuildMonthlySeries(changes)
	return &series, nil
}

// BuildMonthlySeries ordena los meses cronológicamente, calcula el total acumulado
// sobre toda la historia y conserva solo los últimos MaxMonths meses.
func BuildMonthlySeries(changes []repository.MonthlyChange) dto.MonthlySeriesDTO {
	sorted := append([]repository.MonthlyChange(nil), changes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Month < sorted[j].Month
	})

	labels := make([]string, 0, len(sorted))
	values := make([]int64, 0, len(sorted))
	var running int64
	for _, c := range sorted {
		running += c.Total
		labels = append(labels, fmt.Sprintf("%04d-%02d", c.Year, c.Month))
		values = append(values, running)
	}
	if len(labels) > MaxMonths {
		labels = labels[len(labels)-MaxMonths:]
		values = values[len(values)-MaxMonths:]
	}
	return dto.MonthlySeriesDTO{Labels: labels, Values: values}
}

// CategoryBreakdown cuenta los stocks activos por categoría, con un color por barra.
func (uc *StatsUseCase) CategoryBreakdown(ctx context.Context) (*dto.CategoryBreakdownDTO, error) {
	counts, err := uc.statsRepo.StockCountByCategory(ctx)
	if err != nil {
		return nil, domain.Dependency("distribución por categoría", err)
	}
	labels := make([]string, 0, len(counts))
	data := make([]int64, 0, len(counts))
	colors := make([]string, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.CategoryName)
		data = append(data, c.Count)
		colors = append(colors, randomColor())
	}
	return &dto.CategoryBreakdownDTO{
		Labels:   labels,
		Datasets: []dto.ChartDatasetDTO{{Data: data, BackgroundColor: colors}},
	}, nil
}

// ValuationSummary suma conteos y valores de los stocks activos que coinciden con pattern
// (expresión regular sobre código o nombre; vacío = todos).
func (uc *StatsUseCase) ValuationSummary(ctx context.Context, pattern string) (*dto.ValuationSummaryDTO, error) {
	if pattern != "" {
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, domain.NewValidationError("s", "expresión regular inválida")
		}
	}
	v, err := uc.statsRepo.Valuation(ctx, pattern)
	if err != nil {
		return nil, domain.Dependency("valorización", err)
	}
	return &dto.ValuationSummaryDTO{
		StockCount:   v.StockCount,
		BuyingValue:  v.BuyingValue,
		SellingValue: v.SellingValue,
		Profit:       v.SellingValue.Sub(v.BuyingValue),
	}, nil
}

// randomColor es cosmético; no necesita ser determinista.
func randomColor() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", rand.Intn(256), rand.Intn(256), rand.Intn(256))
}

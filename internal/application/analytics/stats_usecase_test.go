package analytics_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stoqr-api/internal/application/analytics"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

type stubStatsRepo struct {
	monthly     []repository.MonthlyChange
	categories  []repository.CategoryCount
	valuation   repository.ValuationResult
	lastPattern string
	err         error
}

func (s *stubStatsRepo) MonthlyStockChanges(context.Context) ([]repository.MonthlyChange, error) {
	return s.monthly, s.err
}

func (s *stubStatsRepo) StockCountByCategory(context.Context) ([]repository.CategoryCount, error) {
	return s.categories, s.err
}

func (s *stubStatsRepo) Valuation(_ context.Context, pattern string) (repository.ValuationResult, error) {
	s.lastPattern = pattern
	return s.valuation, s.err
}

func (s *stubStatsRepo) ListCritical(context.Context) ([]*repository.StockDetail, error) {
	return nil, s.err
}

func TestBuildMonthlySeries_AcumuladoCronologico(t *testing.T) {
	series := analytics.BuildMonthlySeries([]repository.MonthlyChange{
		{Year: 2024, Month: 3, Total: -2},
		{Year: 2023, Month: 12, Total: 10},
		{Year: 2024, Month: 1, Total: 5},
	})
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-03"}, series.Labels)
	assert.Equal(t, []int64{10, 15, 13}, series.Values)
}

func TestBuildMonthlySeries_Vacia(t *testing.T) {
	series := analytics.BuildMonthlySeries(nil)
	assert.Empty(t, series.Labels)
	assert.Empty(t, series.Values)
}

func TestBuildMonthlySeries_ConservaUltimos12ConArrastre(t *testing.T) {
	var changes []repository.MonthlyChange
	// 15 meses consecutivos desde 2023-01, cada uno suma 1.
	for i := 0; i < 15; i++ {
		changes = append(changes, repository.MonthlyChange{Year: 2023 + i/12, Month: i%12 + 1, Total: 1})
	}
	series := analytics.BuildMonthlySeries(changes)

	require.Len(t, series.Labels, analytics.MaxMonths)
	assert.Equal(t, "2023-04", series.Labels[0])
	assert.Equal(t, "2024-03", series.Labels[11])
	// El primer valor visible incluye los 3 meses descartados.
	assert.Equal(t, int64(4), series.Values[0])
	assert.Equal(t, int64(15), series.Values[11])
}

func TestMonthlySeries_FalloDeRepositorio(t *testing.T) {
	uc := analytics.NewStatsUseCase(&stubStatsRepo{err: errors.New("sin conexión")})
	_, err := uc.MonthlySeries(context.Background())
	assert.ErrorIs(t, err, domain.ErrDependency)
}

func TestCategoryBreakdown_FormatoDeGrafico(t *testing.T) {
	uc := analytics.NewStatsUseCase(&stubStatsRepo{categories: []repository.CategoryCount{
		{CategoryID: "c1", CategoryName: "Ferretería", Count: 3},
		{CategoryID: "c2", CategoryName: "Pinturas", Count: 1},
	}})
	out, err := uc.CategoryBreakdown(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Ferretería", "Pinturas"}, out.Labels)
	require.Len(t, out.Datasets, 1)
	assert.Equal(t, []int64{3, 1}, out.Datasets[0].Data)
	require.Len(t, out.Datasets[0].BackgroundColor, 2)

	rgb := regexp.MustCompile(`^rgb\(\d{1,3},\d{1,3},\d{1,3}\)$`)
	for _, c := range out.Datasets[0].BackgroundColor {
		assert.Regexp(t, rgb, c)
	}
}

func TestValuationSummary_CalculaGanancia(t *testing.T) {
	repo := &stubStatsRepo{valuation: repository.ValuationResult{
		StockCount:   12,
		BuyingValue:  decimal.NewFromInt(1000),
		SellingValue: decimal.NewFromInt(1500),
	}}
	uc := analytics.NewStatsUseCase(repo)

	out, err := uc.ValuationSummary(context.Background(), "^AB")
	require.NoError(t, err)
	assert.Equal(t, "^AB", repo.lastPattern)
	assert.Equal(t, int64(12), out.StockCount)
	assert.True(t, decimal.NewFromInt(500).Equal(out.Profit))
}

func TestValuationSummary_PatronInvalido(t *testing.T) {
	uc := analytics.NewStatsUseCase(&stubStatsRepo{})
	_, err := uc.ValuationSummary(context.Background(), "[")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

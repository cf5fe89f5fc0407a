package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlyChange suma de stock_change de los movimientos de un mes (UTC).
type MonthlyChange struct {
	Year  int
	Month int
	Total int64
}

// CategoryCount cantidad de stocks activos de una categoría.
type CategoryCount struct {
	CategoryID   string
	CategoryName string
	Count        int64
}

// ValuationResult totales crudos de valorización de stocks activos.
type ValuationResult struct {
	StockCount   int64
	BuyingValue  decimal.Decimal // Σ stock_count * buying_price
	SellingValue decimal.Decimal // Σ stock_count * selling_price
}

// StatsRepository consultas de lectura para estadísticas. No modifica datos.
type StatsRepository interface {
	// MonthlyStockChanges agrupa todos los movimientos por año/mes, en orden cronológico.
	MonthlyStockChanges(ctx context.Context) ([]MonthlyChange, error)
	// StockCountByCategory cuenta stocks activos por categoría.
	StockCountByCategory(ctx context.Context) ([]CategoryCount, error)
	// Valuation suma conteos y valores de stocks activos; pattern vacío = todos.
	Valuation(ctx context.Context, pattern string) (ValuationResult, error)
	// ListCritical devuelve stocks activos en OutOfStock, Urgent o Critical.
	ListCritical(ctx context.Context) ([]*StockDetail, error)
}

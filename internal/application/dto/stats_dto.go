package dto

import "github.com/shopspring/decimal"

// MonthlySeriesDTO respuesta de GET /api/v1/movements/stats.
// Values es el acumulado de stock_change hasta cada mes (máximo 12 meses).
type MonthlySeriesDTO struct {
	Labels []string `json:"labels"` // "YYYY-MM"
	Values []int64  `json:"values"`
}

// ChartDatasetDTO serie de un gráfico.
type ChartDatasetDTO struct {
	Data            []int64  `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// CategoryBreakdownDTO respuesta de GET /api/v1/stocks/categories.
type CategoryBreakdownDTO struct {
	Labels   []string          `json:"labels"`
	Datasets []ChartDatasetDTO `json:"datasets"`
}

// ValuationSummaryDTO respuesta de GET /api/v1/stocks/stats.
type ValuationSummaryDTO struct {
	StockCount   int64           `json:"stock_count"`
	BuyingValue  decimal.Decimal `json:"buying_value"`
	SellingValue decimal.Decimal `json:"selling_value"`
	Profit       decimal.Decimal `json:"profit"` // SellingValue - BuyingValue
}

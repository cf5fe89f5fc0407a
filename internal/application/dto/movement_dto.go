package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementStockResponse proyección del stock dentro de un movimiento.
type MovementStockResponse struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	StockCount        int64  `json:"stock_count"`
	CriticalityLevel  int64  `json:"criticality_level"`
	CriticalityStatus string `json:"criticality_status"`
	Status            string `json:"status"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID                     string                `json:"id"`
	Type                   string                `json:"type"`
	StockChange            int64                 `json:"stock_change"`
	StockCountAfter        int64                 `json:"stock_count_after"`
	CriticalityStatusAfter string                `json:"criticality_status_after"`
	StockID                string                `json:"stock_id"`
	Stock                  MovementStockResponse `json:"stock"`
	CreatedBy              string                `json:"created_by"`
	CreatedByName          string                `json:"created_by_name,omitempty"`
	CreatedAt              time.Time             `json:"created_at"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un stock activo
// en OutOfStock, Urgent o Critical.
type ReplenishmentSuggestionDTO struct {
	StockID            string          `json:"stock_id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	CategoryName       string          `json:"category_name"`
	LocationName       string          `json:"location_name"`
	CriticalityStatus  string          `json:"criticality_status"`
	CriticalityLevel   int64           `json:"criticality_level"`
	CurrentStock       int64           `json:"current_stock"`
	TargetStock        int64           `json:"target_stock"`        // primer conteo en Good
	SuggestedOrderQty  int64           `json:"suggested_order_qty"` // TargetStock - CurrentStock
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
	Priority           int             `json:"priority"` // 1 = más urgente
}

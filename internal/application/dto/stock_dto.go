package dto

import "time"

// StockRequest entrada de creación y de actualización completa de un stock.
// Los numéricos son punteros para distinguir "ausente" de cero. El tope de cantidades
// mantiene C*150 dentro de int64 al derivar la criticidad.
type StockRequest struct {
	Code             string `json:"code" validate:"required,min=3,max=10,alphanum"`
	Name             string `json:"name" validate:"required,max=100"`
	CategoryID       string `json:"category_id" validate:"required"`
	LocationID       string `json:"location_id" validate:"required"`
	CriticalityLevel *int64 `json:"criticality_level" validate:"required,min=0,max=1000000000"`
	StockCount       *int64 `json:"stock_count" validate:"required,min=0,max=1000000000"`
	BuyingPrice      *int64 `json:"buying_price" validate:"required,gt=0"`
	SellingPrice     *int64 `json:"selling_price" validate:"required,gt=0"`
}

// AdjustCountRequest body de PATCH /api/v1/stocks/:id (delta con signo).
type AdjustCountRequest struct {
	StockChange *int64 `json:"stockchange" validate:"required,min=-1000000000,max=1000000000"`
}

// StockResponse salida de un stock.
type StockResponse struct {
	ID                string    `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	CategoryID        string    `json:"category_id"`
	CategoryName      string    `json:"category_name,omitempty"`
	LocationID        string    `json:"location_id"`
	LocationName      string    `json:"location_name,omitempty"`
	CriticalityLevel  int64     `json:"criticality_level"`
	CriticalityStatus string    `json:"criticality_status"`
	StockCount        int64     `json:"stock_count"`
	BuyingPrice       int64     `json:"buying_price"`
	SellingPrice      int64     `json:"selling_price"`
	QRCode            string    `json:"qr_code"`
	CreatedBy         string    `json:"created_by"`
	CreatedByName     string    `json:"created_by_name,omitempty"`
	UpdatedBy         string    `json:"updated_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StockListResponse lista de stocks ordenada por código.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
}

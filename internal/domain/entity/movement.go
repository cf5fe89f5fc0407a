package entity

import "time"

// Tipos de movimiento del libro de stock.
const (
	MovementTypeCreate   = "Create"
	MovementTypeUpdate   = "Update"
	MovementTypeIncrease = "Increase"
	MovementTypeDecrease = "Decrease"
	MovementTypeDelete   = "Delete"
)

// Movement es un registro inmutable del libro: uno por cada operación que afecta un stock.
type Movement struct {
	ID                     string
	Type                   string
	StockChange            int64 // delta aplicado, con signo
	StockCountAfter        int64 // foto del conteo tras la operación
	CriticalityStatusAfter string
	StockID                string
	CreatedBy              string // UserID
	CreatedAt              time.Time
}

package entity

import "time"

// Estados de un stock. La baja es lógica: nunca se elimina la fila.
const (
	StockStatusActive   = "Active"
	StockStatusInactive = "Inactive"
)

// Niveles de criticidad derivados de StockCount y CriticalityLevel.
const (
	CriticalityOutOfStock = "OutOfStock"
	CriticalityUrgent     = "Urgent"
	CriticalityCritical   = "Critical"
	CriticalityNormal     = "Normal"
	CriticalityGood       = "Good"
)

// Stock representa un ítem de inventario con su conteo actual y precios.
// CriticalityStatus siempre es consistente con StockCount y CriticalityLevel.
type Stock struct {
	ID                string
	Code              string // normalizado: mayúsculas ASCII, 3-10 caracteres
	Name              string
	Status            string // Active, Inactive
	CategoryID        string
	LocationID        string
	CriticalityLevel  int64 // umbral configurado (>= 0)
	CriticalityStatus string
	StockCount        int64 // nunca negativo
	BuyingPrice       int64
	SellingPrice      int64
	QRCode            string // data URL PNG de host + Code
	CreatedBy         string // UserID
	UpdatedBy         string // UserID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive indica si el stock es visible en consultas y listados.
func (s *Stock) IsActive() bool {
	return s.Status == StockStatusActive
}

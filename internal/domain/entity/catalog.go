package entity

import "time"

// Estados de un ítem de catálogo.
const (
	CatalogStatusActive   = "Active"
	CatalogStatusInactive = "Inactive"
)

// Catálogos soportados (nombre de tabla).
const (
	CatalogCategories = "categories"
	CatalogLocations  = "locations"
)

// CatalogItem representa una categoría o una ubicación referenciada por los stocks.
// Name es único dentro de su catálogo.
type CatalogItem struct {
	ID        string
	Name      string
	Status    string // Active, Inactive
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

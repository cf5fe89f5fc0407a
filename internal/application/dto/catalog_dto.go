package dto

import "time"

// CreateCatalogRequest entrada para crear una categoría o ubicación.
type CreateCatalogRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateCatalogRequest entrada para actualizar una categoría o ubicación.
// Status vacío conserva el estado actual.
type UpdateCatalogRequest struct {
	Name   string `json:"name" validate:"required,max=50"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// CatalogResponse salida de una categoría o ubicación.
type CatalogResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CatalogListResponse lista de categorías o ubicaciones ordenada por nombre.
type CatalogListResponse struct {
	Items []CatalogResponse `json:"items"`
}

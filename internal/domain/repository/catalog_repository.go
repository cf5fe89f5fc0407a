package repository

import (
	"context"

	"github.com/jhoicas/stoqr-api/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia para categorías y ubicaciones.
// Una instancia sirve a un único catálogo.
type CatalogRepository interface {
	// Create devuelve domain.ErrConflict si el nombre ya existe.
	Create(ctx context.Context, item *entity.CatalogItem) error
	GetByID(ctx context.Context, id string) (*entity.CatalogItem, error)
	GetByName(ctx context.Context, name string) (*entity.CatalogItem, error)
	Update(ctx context.Context, item *entity.CatalogItem) error
	// List ordena por nombre; status vacío = todos.
	List(ctx context.Context, status string) ([]*entity.CatalogItem, error)
}

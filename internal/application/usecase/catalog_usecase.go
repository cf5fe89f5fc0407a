package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/validation"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// CatalogUseCase casos de uso CRUD para categorías o ubicaciones (una instancia por catálogo).
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Create crea un ítem activo. domain.ErrConflict si el nombre ya existe.
func (uc *CatalogUseCase) Create(ctx context.Context, actorID string, in dto.CreateCatalogRequest) (*dto.CatalogResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, repoErr("buscar por nombre", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now().UTC()
	item := &entity.CatalogItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    entity.CatalogStatusActive,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, repoErr("crear", err)
	}
	return toCatalogResponse(item), nil
}

// GetByID obtiene un ítem por ID. domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*dto.CatalogResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("obtener", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toCatalogResponse(item), nil
}

// Update cambia nombre y, si viene, estado. El nombre debe seguir siendo único.
func (uc *CatalogUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateCatalogRequest) (*dto.CatalogResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("obtener", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, repoErr("buscar por nombre", err)
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrConflict
	}
	item.Name = in.Name
	if in.Status != "" {
		item.Status = in.Status
	}
	item.UpdatedBy = actorID
	item.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, repoErr("actualizar", err)
	}
	return toCatalogResponse(item), nil
}

// List lista los ítems ordenados por nombre; status vacío = todos.
func (uc *CatalogUseCase) List(ctx context.Context, status string) (*dto.CatalogListResponse, error) {
	list, err := uc.repo.List(ctx, status)
	if err != nil {
		return nil, repoErr("listar", err)
	}
	items := make([]dto.CatalogResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toCatalogResponse(it))
	}
	return &dto.CatalogListResponse{Items: items}, nil
}

func toCatalogResponse(c *entity.CatalogItem) *dto.CatalogResponse {
	if c == nil {
		return nil
	}
	return &dto.CatalogResponse{
		ID:        c.ID,
		Name:      c.Name,
		Status:    c.Status,
		CreatedBy: c.CreatedBy,
		UpdatedBy: c.UpdatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/usecase"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
)

func TestCatalog_CreateYNombreDuplicado(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newMemCatalogRepo())
	ctx := context.Background()

	out, err := uc.Create(ctx, "u1", dto.CreateCatalogRequest{Name: "Ferretería"})
	require.NoError(t, err)
	assert.Equal(t, entity.CatalogStatusActive, out.Status)
	assert.Equal(t, "u1", out.CreatedBy)

	_, err = uc.Create(ctx, "u1", dto.CreateCatalogRequest{Name: "Ferretería"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCatalog_CreateValidaNombre(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newMemCatalogRepo())
	_, err := uc.Create(context.Background(), "u1", dto.CreateCatalogRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "u1", dto.CreateCatalogRequest{Name: strings.Repeat("x", 51)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_UpdateUnicidadExcluyeAlPropio(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newMemCatalogRepo())
	ctx := context.Background()
	a, err := uc.Create(ctx, "u1", dto.CreateCatalogRequest{Name: "Estante A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "u1", dto.CreateCatalogRequest{Name: "Estante B"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "u2", a.ID, dto.UpdateCatalogRequest{Name: "Estante A", Status: entity.CatalogStatusInactive})
	require.NoError(t, err)
	assert.Equal(t, entity.CatalogStatusInactive, out.Status)
	assert.Equal(t, "u2", out.UpdatedBy)

	_, err = uc.Update(ctx, "u2", a.ID, dto.UpdateCatalogRequest{Name: "Estante B"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Update(ctx, "u2", "no-existe", dto.UpdateCatalogRequest{Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalog_ListOrdenadoYFiltrado(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newMemCatalogRepo())
	ctx := context.Background()
	for _, name := range []string{"Pinturas", "Eléctricos", "Adhesivos"} {
		_, err := uc.Create(ctx, "u1", dto.CreateCatalogRequest{Name: name})
		require.NoError(t, err)
	}
	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	assert.Equal(t, "Adhesivos", all.Items[0].Name)

	_, err = uc.Update(ctx, "u1", all.Items[0].ID, dto.UpdateCatalogRequest{Name: "Adhesivos", Status: entity.CatalogStatusInactive})
	require.NoError(t, err)
	active, err := uc.List(ctx, entity.CatalogStatusActive)
	require.NoError(t, err)
	assert.Len(t, active.Items, 2)
}

func TestCatalog_GetByIDInexistente(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newMemCatalogRepo())
	_, err := uc.GetByID(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

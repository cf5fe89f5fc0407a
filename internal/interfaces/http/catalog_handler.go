package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/usecase"
)

// CatalogHandler maneja las peticiones HTTP de un catálogo (categorías o ubicaciones).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría o ubicación
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        catalog  path  string                     true  "categories | locations"
// @Param        body     body  dto.CreateCatalogRequest  true  "Nombre"
// @Success      201   {object}  dto.CatalogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/{catalog} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría o ubicación por ID
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        catalog  path  string  true  "categories | locations"
// @Param        id       path  string  true  "ID"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/{catalog}/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría o ubicación
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        catalog  path  string                     true  "categories | locations"
// @Param        id       path  string                     true  "ID"
// @Param        body     body  dto.UpdateCatalogRequest  true  "Nombre y estado"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/{catalog}/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar categorías o ubicaciones
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        catalog  path   string  true   "categories | locations"
// @Param        status   query  string  false  "Active | Inactive (vacío = todos)"
// @Success      200  {object}  dto.CatalogListResponse
// @Router       /api/v1/{catalog} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

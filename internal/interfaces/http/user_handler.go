package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/usecase"
)

// UserHandler maneja consulta y edición de usuarios (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

func actorFrom(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

// Self godoc
// @Summary      Usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/v1/users/self [get]
func (h *UserHandler) Self(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios (Admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Description  Rol y estado solo los cambia un Admin; un usuario no Admin solo se edita a sí mismo.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "name, email, role, status"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar contraseña
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                     true  "ID del usuario"
// @Param        body  body  dto.ChangePasswordRequest  true  "password"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id}/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangePassword(c.UserContext(), actorFrom(c), c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

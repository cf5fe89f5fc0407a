package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/auth"
	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/domain"
)

// AuthHandler maneja registro, login y usuario actual.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/users [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		// Email inexistente y password incorrecto responden igual.
		if errors.Is(err, domain.ErrUserNotFound) {
			err = domain.ErrUnauthorized
		}
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/auth [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

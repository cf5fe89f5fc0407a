package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// HeaderAuthToken header alternativo al Authorization (token sin prefijo Bearer).
const HeaderAuthToken = "x-auth-token"

// AuthMiddleware valida el JWT (Authorization: Bearer o x-auth-token) y carga los claims en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errResp := extractToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		userID, name, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, name)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		if tok := strings.TrimSpace(c.Get(HeaderAuthToken)); tok != "" {
			return tok, nil
		}
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return tokenString, nil
}

// RequireRole permite el paso solo si el rol del token está en roles.
// Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permisos para este recurso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUserName devuelve el nombre del usuario autenticado.
func GetUserName(c *fiber.Ctx) string {
	return localString(c, LocalUserName)
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

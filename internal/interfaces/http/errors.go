package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/domain"
)

// writeError traduce un error de los casos de uso a status HTTP y cuerpo {code, message, fields}.
func writeError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	var validationErr *domain.ValidationError
	var underflowErr *domain.StockUnderflowError
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: validationErr.Fields}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"}
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: "el nombre ya existe"}
	case errors.As(err, &underflowErr):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INVALID_STATE", Message: underflowErr.Error()}
	case errors.Is(err, domain.ErrInvalidStateTransition):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "INVALID_STATE", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"}
	case errors.Is(err, domain.ErrDependency):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "DEPENDENCY", Message: "fallo de una dependencia externa"}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

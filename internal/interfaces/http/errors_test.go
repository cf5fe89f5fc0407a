package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stoqr-api/internal/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", domain.NewValidationError("code", "requerido"), fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"usuario no encontrado", domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"nombre duplicado", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"email duplicado", domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
		{"underflow", &domain.StockUnderflowError{Code: "ABC", MaxDecrease: 3}, fiber.StatusConflict, "INVALID_STATE"},
		{"estado inválido", domain.ErrInvalidStateTransition, fiber.StatusConflict, "INVALID_STATE"},
		{"no autorizado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"prohibido", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"dependencia", domain.Dependency("crear stock", errors.New("conexión rechazada")), fiber.StatusBadGateway, "DEPENDENCY"},
		{"envuelto", fmt.Errorf("capa: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"desconocido", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := mapError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestMapError_UnderflowInformaMaximo(t *testing.T) {
	_, body := mapError(&domain.StockUnderflowError{Code: "ABC", MaxDecrease: 3})
	assert.Contains(t, body.Message, "3")
	assert.Contains(t, body.Message, "ABC")
}

func TestMapError_ValidationIncluyeCampos(t *testing.T) {
	_, body := mapError(domain.NewValidationError("stock_count", "debe ser al menos 0"))
	if assert.Len(t, body.Fields, 1) {
		assert.Equal(t, "stock_count", body.Fields[0].Field)
	}
}

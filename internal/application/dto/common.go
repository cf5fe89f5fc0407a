package dto

import "github.com/jhoicas/stoqr-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Fields solo se incluye en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// TokenResponse salida de login y registro.
type TokenResponse struct {
	Token string `json:"token"`
}

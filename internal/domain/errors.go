package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrConflict               = errors.New("conflicto con el estado actual")
	ErrInvalidStateTransition = errors.New("transición de estado inválida")
	ErrDependency             = errors.New("fallo de dependencia externa")
)

// FieldError describe un campo rechazado por validación.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los campos inválidos de una entrada. Unwrap → ErrInvalidInput.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye un ValidationError de un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// StockUnderflowError se devuelve cuando un ajuste dejaría el stock en negativo.
// MaxDecrease es la mayor disminución permitida (el stock actual).
type StockUnderflowError struct {
	Code        string
	MaxDecrease int64
}

func (e *StockUnderflowError) Error() string {
	return fmt.Sprintf("del stock con código %s se pueden descontar como máximo %d unidades", e.Code, e.MaxDecrease)
}

func (e *StockUnderflowError) Unwrap() error { return ErrInvalidStateTransition }

// DependencyError envuelve fallos de persistencia o del codificador QR.
type DependencyError struct {
	Op  string
	Err error
}

// Dependency envuelve err como DependencyError; devuelve nil si err es nil.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DependencyError{Op: op, Err: err}
}

func (e *DependencyError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DependencyError) Unwrap() []error { return []error{ErrDependency, e.Err} }

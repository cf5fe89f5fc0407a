// Package validation ejecuta las reglas declarativas (tags `validate`) de los
// requests y las traduce a *domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stoqr-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los campos se reportan con su nombre JSON, que es el que conoce el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	// decimal.Decimal como numérico para que min/gt funcionen.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Struct valida s. Devuelve nil, un *domain.ValidationError con un FieldError por
// campo rechazado, o un error de programación si s no es un struct.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validación: %w", err)
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return &domain.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		if isText {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("debe tener como máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "alphanum":
		return "solo admite letras y números"
	case "email":
		return "debe ser un email válido"
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "no es válido"
}

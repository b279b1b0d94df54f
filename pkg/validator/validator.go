// Package validator expone una única instancia de go-playground/validator
// para validar los tags `validate:` de los DTOs de entrada.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO y devuelve el error original del validador.
func Struct(s any) error {
	return validate.Struct(s)
}

// Message convierte un error de validación en un mensaje legible por campo.
// Para errores que no son de validación devuelve err.Error() tal cual.
func Message(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" es requerido")
		case "email":
			parts = append(parts, fe.Field()+" no es un email válido")
		case "oneof":
			parts = append(parts, fe.Field()+" debe ser uno de: "+fe.Param())
		case "min":
			parts = append(parts, fe.Field()+" no cumple el mínimo ("+fe.Param()+")")
		case "max":
			parts = append(parts, fe.Field()+" excede el máximo ("+fe.Param()+")")
		default:
			parts = append(parts, fe.Field()+" es inválido")
		}
	}
	return strings.Join(parts, "; ")
}

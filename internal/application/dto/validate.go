package dto

import "github.com/go-playground/validator/v10"

// validate instancia única del validador de structs (tags `validate`).
var validate = validator.New()

// Validate aplica las reglas declaradas en los tags del DTO.
// Devuelve validator.ValidationErrors si alguna falla.
func Validate(s any) error {
	return validate.Struct(s)
}

package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/DuDupedrosa/krt-bank/internal/apperr"
	"github.com/DuDupedrosa/krt-bank/internal/cpf"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// The cpf tag checks the national-ID check digits on top of the
	// shape rules (len, numeric) declared alongside it.
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpf.Validate(fl.Field().String())
	})
	return v
}

// Struct validates obj against its struct tags and returns one entry per
// failing field, or nil when the input is well formed.
func Struct(obj any) []apperr.FieldError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors []apperr.FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, apperr.FieldError{
			Field:   fe.Field(),
			Message: errorMsg(fe),
		})
	}
	return fieldErrors
}

func errorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "len":
		return "Value must be exactly " + fe.Param() + " characters long"
	case "numeric":
		return "Value must contain only numbers"
	case "cpf":
		return "Invalid CPF check digits"
	case "uuid4":
		return "Invalid identifier format"
	default:
		return "Invalid value"
	}
}

package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// New builds the validator used by the entity constructors.
// - Error messages use JSON tag names.
// - Registers the "senha" password-strength rule.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// Senha carries json:"-" so it never serializes; keep the
			// details key lowercase anyway.
			return strings.ToLower(fld.Name)
		}
		return name
	})
	_ = v.RegisterValidation("senha", senhaRule)
	return v
}

// senhaRule enforces the password policy: at least 6 characters, one upper
// case letter, one digit and one special character.
func senhaRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 6 {
		return false
	}
	var upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
			special = true
		}
	}
	return upper && digit && special
}

// ToDetails converts validation errors into a map[field]message suitable for
// the envelope's error.details object.
func ToDetails(err error) map[string]any {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]any{"payload": "dados inválidos"}
	}
	out := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório"
	case "email":
		return "deve ser um email válido"
	case "min":
		return "deve ter pelo menos " + fe.Param() + " caracteres"
	case "max":
		return "deve ter no máximo " + fe.Param() + " caracteres"
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "oneof":
		return "deve ser um dos valores: " + strings.ReplaceAll(strings.Trim(fe.Param(), "'"), "' '", ", ")
	case "senha":
		return "deve ter pelo menos 6 caracteres, uma letra maiúscula, um número e um caractere especial"
	case "datetime":
		return "deve estar no formato " + fe.Param()
	default:
		return "é inválido"
	}
}

package entity

import (
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/validation"
)

// validate is shared by every entity constructor. Entities are validated at
// construction, before they ever reach a service or repository.
var validate = validation.New()

func checkStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return apperror.Validation("Erro na validação de dados", validation.ToDetails(err))
	}
	return nil
}

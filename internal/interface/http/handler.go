package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

// idParam reads a positive integer route parameter. The rules middleware
// already rejected anything else, so a failure here is a wiring bug.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.Fail(c, apperror.Validation("Erro na validação de dados", map[string]any{
			"message": "O parâmetro '" + name + "' é obrigatório!",
		}))
		return 0, false
	}
	return id, true
}

// bindBody decodes the wrapped request schema, translating a decode
// failure into the validation envelope.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Fail(c, apperror.Validation("Erro na validação de dados", map[string]any{
			"message": "O corpo da requisição deve ser um JSON válido!",
		}))
		return false
	}
	return true
}

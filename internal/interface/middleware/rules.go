package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/response"
)

// RequireBody returns a middleware that checks the presence of the given
// dotted paths in the JSON body, in declared order, failing fast on the
// first missing one. Only presence is checked here; semantic validation
// belongs to the entity constructors.
//
// Example: RequireBody("funcionario", "funcionario.email", "funcionario.cargo.idCargo")
func RequireBody(paths ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil || len(bytes.TrimSpace(raw)) == 0 {
			response.Abort(c, apperror.Validation("Erro na validação de dados", map[string]any{
				"message": "O corpo da requisição é obrigatório!",
			}))
			return
		}
		// hand the body back so the handler can bind its schema
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			response.Abort(c, apperror.Validation("Erro na validação de dados", map[string]any{
				"message": "O corpo da requisição deve ser um JSON válido!",
			}))
			return
		}

		for _, path := range paths {
			if !hasPath(body, path) {
				response.Abort(c, apperror.Validation("Erro na validação de dados", map[string]any{
					"message": "O campo '" + path + "' é obrigatório!",
				}))
				return
			}
		}
		c.Next()
	}
}

// hasPath walks a dotted path through nested JSON objects, reporting
// whether the final key is present (null counts as present).
func hasPath(body map[string]any, path string) bool {
	keys := strings.Split(path, ".")
	current := body
	for i, key := range keys {
		value, ok := current[key]
		if !ok {
			return false
		}
		if i == len(keys)-1 {
			return true
		}
		next, ok := value.(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	return true
}

// RequireIDParam checks that the named route parameter is a positive
// integer before the handler runs.
func RequireIDParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param(name))
		if err != nil || id <= 0 {
			response.Abort(c, apperror.Validation("Erro na validação de dados", map[string]any{
				"message": "O parâmetro '" + name + "' é obrigatório!",
			}))
			return
		}
		c.Next()
	}
}

package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
)

// storageErr maps unexpected repository failures onto the API taxonomy.
// Pool exhaustion (acquisition deadline) becomes 503 instead of 500.
func storageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.Unavailable("Serviço temporariamente indisponível", err)
	}
	if errors.Is(err, repository.ErrInvalidField) {
		return apperror.Validation("Campo inválido para busca", nil)
	}
	return apperror.Internal("Erro interno do servidor", err)
}

func detail(format string, args ...any) map[string]any {
	return map[string]any{"message": fmt.Sprintf(format, args...)}
}

package repository

import (
	"context"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
)

// TarefaRepository defines the storage operations for Tarefa records.
type TarefaRepository interface {
	Create(ctx context.Context, t *entity.Tarefa) (int, error)
	FindAll(ctx context.Context) ([]entity.Tarefa, error)
	FindByID(ctx context.Context, id int) (*entity.Tarefa, error)
	FindByField(ctx context.Context, field string, value any) ([]entity.Tarefa, error)
	FindByProjetoID(ctx context.Context, projetoID int) ([]entity.Tarefa, error)
	Update(ctx context.Context, t *entity.Tarefa) error
	Delete(ctx context.Context, id int) error
	// MarcarComoConcluida sets concluida without touching other columns.
	// Completing an already-completed tarefa is a no-op, not an error.
	MarcarComoConcluida(ctx context.Context, id int) error
}

package repository

import (
	"context"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
)

// FuncionarioRepository defines the storage operations for Funcionario
// records. Reads join the Cargo so callers get the role name.
type FuncionarioRepository interface {
	Create(ctx context.Context, f *entity.Funcionario) (int, error)
	FindAll(ctx context.Context) ([]entity.Funcionario, error)
	FindByID(ctx context.Context, id int) (*entity.Funcionario, error)
	FindByField(ctx context.Context, field string, value any) ([]entity.Funcionario, error)
	// GetByEmail returns the funcionario with its stored senha hash, for
	// credential verification by the service.
	GetByEmail(ctx context.Context, email string) (*entity.Funcionario, error)
	Update(ctx context.Context, f *entity.Funcionario) error
	Delete(ctx context.Context, id int) error
}

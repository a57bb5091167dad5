package repository

import (
	"context"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
)

// ProjetoRepository defines the storage operations for Projeto records.
// Reads join the owning Usuario so callers get usuario_nome.
type ProjetoRepository interface {
	Create(ctx context.Context, p *entity.Projeto) (int, error)
	FindAll(ctx context.Context) ([]entity.Projeto, error)
	FindByID(ctx context.Context, id int) (*entity.Projeto, error)
	FindByField(ctx context.Context, field string, value any) ([]entity.Projeto, error)
	FindByUsuarioID(ctx context.Context, usuarioID int) ([]entity.Projeto, error)
	Update(ctx context.Context, p *entity.Projeto) error
	Delete(ctx context.Context, id int) error
}

package repository

import (
	"context"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
)

// UsuarioRepository defines the storage operations for Usuario records.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) (int, error)
	FindAll(ctx context.Context) ([]entity.Usuario, error)
	FindByID(ctx context.Context, id int) (*entity.Usuario, error)
	FindByField(ctx context.Context, field string, value any) ([]entity.Usuario, error)
	// GetByEmail returns the usuario with its stored senha hash, for
	// credential verification by the service.
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
	Delete(ctx context.Context, id int) error
}

package repository

import (
	"context"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
)

// CargoRepository defines the storage operations for Cargo records.
type CargoRepository interface {
	Create(ctx context.Context, c *entity.Cargo) (int, error)
	FindAll(ctx context.Context) ([]entity.Cargo, error)
	FindByID(ctx context.Context, id int) (*entity.Cargo, error)
	// FindByField performs an equality lookup restricted to an allow-list
	// of column names.
	FindByField(ctx context.Context, field string, value any) ([]entity.Cargo, error)
	Update(ctx context.Context, c *entity.Cargo) error
	Delete(ctx context.Context, id int) error
}

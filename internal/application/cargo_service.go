package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
)

type CargoService struct {
	Repo   repository.CargoRepository
	Logger *logrus.Logger
}

func NewCargoService(repo repository.CargoRepository, logger *logrus.Logger) *CargoService {
	return &CargoService{Repo: repo, Logger: logger}
}

// Create rejects a duplicate nome before inserting. The UNIQUE constraint
// backs this check up, so a concurrent duplicate still lands on the same
// Conflict response.
func (s *CargoService) Create(ctx context.Context, nome string) (*entity.Cargo, error) {
	cargo, err := entity.NewCargo(nome)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByField(ctx, "nomeCargo", cargo.Nome)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(existing) > 0 {
		return nil, apperror.Conflict("Cargo já existe", detail("O cargo %s já existe", cargo.Nome))
	}

	if _, err := s.Repo.Create(ctx, cargo); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Cargo já existe", detail("O cargo %s já existe", cargo.Nome))
		}
		return nil, storageErr(err)
	}
	return cargo, nil
}

func (s *CargoService) FindAll(ctx context.Context) ([]entity.Cargo, error) {
	cargos, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return cargos, nil
}

func (s *CargoService) FindByID(ctx context.Context, id int) (*entity.Cargo, error) {
	cargo, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Cargo não encontrado", detail("Não existe cargo com id %d", id))
		}
		return nil, storageErr(err)
	}
	return cargo, nil
}

func (s *CargoService) Update(ctx context.Context, id int, nome string) (*entity.Cargo, error) {
	cargo, err := entity.NewCargo(nome)
	if err != nil {
		return nil, err
	}
	cargo.ID = id

	if err := s.Repo.Update(ctx, cargo); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound("Cargo não encontrado", detail("Não existe cargo com id %d", id))
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperror.Conflict("Cargo já existe", detail("O cargo %s já existe", cargo.Nome))
		default:
			return nil, storageErr(err)
		}
	}
	return cargo, nil
}

func (s *CargoService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Cargo não encontrado", detail("Não existe cargo com id %d", id))
		}
		return storageErr(err)
	}
	return nil
}

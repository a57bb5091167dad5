package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
)

type TarefaService struct {
	Repo        repository.TarefaRepository
	ProjetoRepo repository.ProjetoRepository
	Logger      *logrus.Logger
}

func NewTarefaService(repo repository.TarefaRepository, projetoRepo repository.ProjetoRepository, logger *logrus.Logger) *TarefaService {
	return &TarefaService{Repo: repo, ProjetoRepo: projetoRepo, Logger: logger}
}

type TarefaInput struct {
	Titulo     string
	Concluida  bool
	DataLimite string
	ProjetoID  int
}

// Create validates that the owning projeto exists before inserting.
func (s *TarefaService) Create(ctx context.Context, in TarefaInput) (*entity.Tarefa, error) {
	t, err := entity.NewTarefa(in.Titulo, in.Concluida, in.DataLimite, in.ProjetoID)
	if err != nil {
		return nil, err
	}

	projetos, err := s.ProjetoRepo.FindByField(ctx, "id", t.ProjetoID)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(projetos) == 0 {
		return nil, apperror.Validation("Projeto não encontrado", detail("O projeto com ID %d não existe", t.ProjetoID))
	}

	if _, err := s.Repo.Create(ctx, t); err != nil {
		return nil, storageErr(err)
	}
	return t, nil
}

func (s *TarefaService) FindAll(ctx context.Context) ([]entity.Tarefa, error) {
	tarefas, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return tarefas, nil
}

func (s *TarefaService) FindByID(ctx context.Context, id int) (*entity.Tarefa, error) {
	t, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Tarefa não encontrada", detail("Não existe tarefa com id %d", id))
		}
		return nil, storageErr(err)
	}
	return t, nil
}

func (s *TarefaService) FindByProjetoID(ctx context.Context, projetoID int) ([]entity.Tarefa, error) {
	projetos, err := s.ProjetoRepo.FindByField(ctx, "id", projetoID)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(projetos) == 0 {
		return nil, apperror.NotFound("Projeto não encontrado", detail("Não existe projeto com id %d", projetoID))
	}

	tarefas, err := s.Repo.FindByProjetoID(ctx, projetoID)
	if err != nil {
		return nil, storageErr(err)
	}
	return tarefas, nil
}

func (s *TarefaService) Update(ctx context.Context, id int, in TarefaInput) (*entity.Tarefa, error) {
	t, err := entity.NewTarefa(in.Titulo, in.Concluida, in.DataLimite, in.ProjetoID)
	if err != nil {
		return nil, err
	}
	t.ID = id

	if err := s.Repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Tarefa não encontrada", detail("Não existe tarefa com id %d", id))
		}
		return nil, storageErr(err)
	}
	return t, nil
}

func (s *TarefaService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Tarefa não encontrada", detail("Não existe tarefa com id %d", id))
		}
		return storageErr(err)
	}
	return nil
}

// MarcarComoConcluida completes a tarefa. Completing an already-completed
// tarefa succeeds and leaves the stored state unchanged; only an unknown id
// is an error.
func (s *TarefaService) MarcarComoConcluida(ctx context.Context, id int) error {
	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Tarefa não encontrada", detail("Não existe tarefa com id %d", id))
		}
		return storageErr(err)
	}
	if err := s.Repo.MarcarComoConcluida(ctx, id); err != nil {
		return storageErr(err)
	}
	return nil
}

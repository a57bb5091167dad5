package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
)

type ProjetoService struct {
	Repo        repository.ProjetoRepository
	UsuarioRepo repository.UsuarioRepository
	Logger      *logrus.Logger
}

func NewProjetoService(repo repository.ProjetoRepository, usuarioRepo repository.UsuarioRepository, logger *logrus.Logger) *ProjetoService {
	return &ProjetoService{Repo: repo, UsuarioRepo: usuarioRepo, Logger: logger}
}

type ProjetoInput struct {
	Nome       string
	Descricao  string
	DataInicio string
	Status     string
	UsuarioID  int
}

// Create validates that the owning usuario exists before inserting.
func (s *ProjetoService) Create(ctx context.Context, in ProjetoInput) (*entity.Projeto, error) {
	p, err := entity.NewProjeto(in.Nome, in.Descricao, in.DataInicio, in.Status, in.UsuarioID)
	if err != nil {
		return nil, err
	}

	usuarios, err := s.UsuarioRepo.FindByField(ctx, "id", p.UsuarioID)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(usuarios) == 0 {
		return nil, apperror.Validation("Usuário não encontrado", detail("O usuário com ID %d não existe", p.UsuarioID))
	}

	if _, err := s.Repo.Create(ctx, p); err != nil {
		return nil, storageErr(err)
	}
	p.UsuarioNome = usuarios[0].Nome
	return p, nil
}

func (s *ProjetoService) FindAll(ctx context.Context) ([]entity.Projeto, error) {
	projetos, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return projetos, nil
}

func (s *ProjetoService) FindByID(ctx context.Context, id int) (*entity.Projeto, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Projeto não encontrado", detail("Não existe projeto com id %d", id))
		}
		return nil, storageErr(err)
	}
	return p, nil
}

// FindByUsuarioID lists a usuario's projetos, 404 when the usuario itself is
// unknown.
func (s *ProjetoService) FindByUsuarioID(ctx context.Context, usuarioID int) ([]entity.Projeto, error) {
	usuarios, err := s.UsuarioRepo.FindByField(ctx, "id", usuarioID)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(usuarios) == 0 {
		return nil, apperror.NotFound("Usuário não encontrado", detail("Não existe usuário com id %d", usuarioID))
	}

	projetos, err := s.Repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, storageErr(err)
	}
	return projetos, nil
}

func (s *ProjetoService) Update(ctx context.Context, id int, in ProjetoInput) (*entity.Projeto, error) {
	p, err := entity.NewProjeto(in.Nome, in.Descricao, in.DataInicio, in.Status, in.UsuarioID)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Projeto não encontrado", detail("Não existe projeto com id %d", id))
		}
		return nil, storageErr(err)
	}
	return p, nil
}

func (s *ProjetoService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Projeto não encontrado", detail("Não existe projeto com id %d", id))
		}
		return storageErr(err)
	}
	return nil
}

package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/helpers"
)

type FuncionarioService struct {
	Repo      repository.FuncionarioRepository
	CargoRepo repository.CargoRepository
	Tokens    *helpers.TokenManager
	Logger    *logrus.Logger
}

func NewFuncionarioService(repo repository.FuncionarioRepository, cargoRepo repository.CargoRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *FuncionarioService {
	return &FuncionarioService{Repo: repo, CargoRepo: cargoRepo, Tokens: tokens, Logger: logger}
}

type FuncionarioInput struct {
	Nome                 string
	Email                string
	Senha                string
	RecebeValeTransporte bool
	CargoID              int
}

// Create validates the referenced cargo and the email uniqueness before any
// insert happens. Senha is stored as a bcrypt hash.
func (s *FuncionarioService) Create(ctx context.Context, in FuncionarioInput) (*entity.Funcionario, error) {
	f, err := entity.NewFuncionario(in.Nome, in.Email, in.Senha, in.RecebeValeTransporte, in.CargoID)
	if err != nil {
		return nil, err
	}
	if f.Senha == "" {
		return nil, apperror.Validation("Erro na validação de dados", map[string]any{"senha": "é obrigatório"})
	}

	cargos, err := s.CargoRepo.FindByField(ctx, "idCargo", f.Cargo.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(cargos) == 0 {
		return nil, apperror.Validation("O cargo informado não existe", detail("O cargo %d não foi encontrado", f.Cargo.ID))
	}

	existing, err := s.Repo.FindByField(ctx, "email", f.Email)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(existing) > 0 {
		return nil, apperror.Conflict("Funcionário já existe", detail("O email %s já está cadastrado", f.Email))
	}

	hashed, err := helpers.HashSenha(f.Senha)
	if err != nil {
		return nil, apperror.Internal("Erro interno do servidor", err)
	}
	f.Senha = hashed

	if _, err := s.Repo.Create(ctx, f); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Funcionário já existe", detail("O email %s já está cadastrado", f.Email))
		}
		return nil, storageErr(err)
	}
	f.Senha = ""
	f.Cargo = cargos[0]
	return f, nil
}

// Login verifies the credential and issues a token embedding role, display
// name and identity id. Every failure collapses into the same generic 401:
// the caller never learns whether the email exists.
func (s *FuncionarioService) Login(ctx context.Context, email, senha string) (*entity.Funcionario, string, error) {
	invalid := apperror.Auth("Usuário ou senha inválidos", map[string]any{"message": "Não foi possível realizar autenticação"})

	f, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", invalid
		}
		return nil, "", storageErr(err)
	}
	if !helpers.CheckSenha(f.Senha, senha) {
		return nil, "", invalid
	}

	token, err := s.Tokens.Issue(map[string]any{
		"email":         f.Email,
		"role":          f.Cargo.Nome,
		"name":          f.Nome,
		"idFuncionario": f.ID,
	})
	if err != nil {
		s.Logger.WithError(err).WithField("email", f.Email).Error("falha ao gerar token")
		return nil, "", apperror.Internal("Erro interno do servidor", err)
	}

	f.Senha = ""
	return f, token, nil
}

func (s *FuncionarioService) FindAll(ctx context.Context) ([]entity.Funcionario, error) {
	funcionarios, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return funcionarios, nil
}

func (s *FuncionarioService) FindByID(ctx context.Context, id int) (*entity.Funcionario, error) {
	f, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Funcionário não encontrado", detail("Não existe funcionário com id %d", id))
		}
		return nil, storageErr(err)
	}
	return f, nil
}

// Update re-hashes the senha when one is supplied; an empty senha keeps the
// stored hash.
func (s *FuncionarioService) Update(ctx context.Context, id int, in FuncionarioInput) (*entity.Funcionario, error) {
	f, err := entity.NewFuncionario(in.Nome, in.Email, in.Senha, in.RecebeValeTransporte, in.CargoID)
	if err != nil {
		return nil, err
	}
	f.ID = id

	if f.Senha != "" {
		hashed, err := helpers.HashSenha(f.Senha)
		if err != nil {
			return nil, apperror.Internal("Erro interno do servidor", err)
		}
		f.Senha = hashed
	}

	if err := s.Repo.Update(ctx, f); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound("Funcionário não encontrado", detail("Não existe funcionário com id %d", id))
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperror.Conflict("Funcionário já existe", detail("O email %s já está cadastrado", f.Email))
		default:
			return nil, storageErr(err)
		}
	}
	f.Senha = ""
	return f, nil
}

func (s *FuncionarioService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Funcionário não encontrado", detail("Não existe funcionário com id %d", id))
		}
		return storageErr(err)
	}
	return nil
}

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

type UsuarioService struct {
	Repo   repository.UsuarioRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewUsuarioService(repo repository.UsuarioRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *UsuarioService {
	return &UsuarioService{Repo: repo, Tokens: tokens, Logger: logger}
}

type UsuarioInput struct {
	Nome  string
	Email string
	Senha string
}

// Create rejects a duplicate email before inserting, backed by the UNIQUE
// constraint for concurrent creates.
func (s *UsuarioService) Create(ctx context.Context, in UsuarioInput) (*entity.Usuario, error) {
	u, err := entity.NewUsuario(in.Nome, in.Email, in.Senha)
	if err != nil {
		return nil, err
	}
	if u.Senha == "" {
		return nil, apperror.Validation("Erro na validação de dados", map[string]any{"senha": "é obrigatório"})
	}

	existing, err := s.Repo.FindByField(ctx, "email", u.Email)
	if err != nil {
		return nil, storageErr(err)
	}
	if len(existing) > 0 {
		return nil, apperror.Conflict("Usuário já existe", detail("O email %s já está cadastrado", u.Email))
	}

	hashed, err := helpers.HashSenha(u.Senha)
	if err != nil {
		return nil, apperror.Internal("Erro interno do servidor", err)
	}
	u.Senha = hashed

	if _, err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("Usuário já existe", detail("O email %s já está cadastrado", u.Email))
		}
		return nil, storageErr(err)
	}
	u.Senha = ""
	return u, nil
}

// Login mirrors the funcionario flow without a role claim. Unknown email and
// wrong senha produce the same generic 401.
func (s *UsuarioService) Login(ctx context.Context, email, senha string) (*entity.Usuario, string, error) {
	invalid := apperror.Auth("Usuário ou senha inválidos", map[string]any{"message": "Não foi possível realizar autenticação"})

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", invalid
		}
		return nil, "", storageErr(err)
	}
	if !helpers.CheckSenha(u.Senha, senha) {
		return nil, "", invalid
	}

	token, err := s.Tokens.Issue(map[string]any{
		"email": u.Email,
		"nome":  u.Nome,
		"id":    u.ID,
	})
	if err != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Error("falha ao gerar token")
		return nil, "", apperror.Internal("Erro interno do servidor", err)
	}

	u.Senha = ""
	return u, token, nil
}

func (s *UsuarioService) FindAll(ctx context.Context) ([]entity.Usuario, error) {
	usuarios, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	return usuarios, nil
}

func (s *UsuarioService) FindByID(ctx context.Context, id int) (*entity.Usuario, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Usuário não encontrado", detail("Não existe usuário com id %d", id))
		}
		return nil, storageErr(err)
	}
	return u, nil
}

// Update keeps the stored senha when the input carries none.
func (s *UsuarioService) Update(ctx context.Context, id int, in UsuarioInput) (*entity.Usuario, error) {
	u, err := entity.NewUsuario(in.Nome, in.Email, in.Senha)
	if err != nil {
		return nil, err
	}
	u.ID = id

	if u.Senha != "" {
		hashed, err := helpers.HashSenha(u.Senha)
		if err != nil {
			return nil, apperror.Internal("Erro interno do servidor", err)
		}
		u.Senha = hashed
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound("Usuário não encontrado", detail("Não existe usuário com id %d", id))
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperror.Conflict("Usuário já existe", detail("O email %s já está cadastrado", u.Email))
		default:
			return nil, storageErr(err)
		}
	}
	u.Senha = ""
	return u, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("Usuário não encontrado", detail("Não existe usuário com id %d", id))
		}
		return storageErr(err)
	}
	return nil
}

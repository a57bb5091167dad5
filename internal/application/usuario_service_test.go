package application

import (
	"context"
	"testing"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/helpers"
)

func TestUsuarioCreate_DuplicateEmail(t *testing.T) {
	repo := &stubUsuarioRepo{
		findByFieldFn: func(_ context.Context, field string, value any) ([]entity.Usuario, error) {
			return []entity.Usuario{{ID: 1, Email: "ana@empresa.com"}}, nil
		},
		createFn: func(_ context.Context, u *entity.Usuario) (int, error) {
			t.Fatalf("create must not run for a duplicate email")
			return 0, nil
		},
	}
	svc := NewUsuarioService(repo, testTokens(), testLogger())

	_, err := svc.Create(context.Background(), UsuarioInput{Nome: "Ana", Email: "ana@empresa.com", Senha: "Senha@123"})
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUsuarioCreate_InvalidEmail(t *testing.T) {
	svc := NewUsuarioService(&stubUsuarioRepo{}, testTokens(), testLogger())

	_, err := svc.Create(context.Background(), UsuarioInput{Nome: "Ana", Email: "nao-e-email", Senha: "Senha@123"})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUsuarioLogin_ClaimsWithoutRole(t *testing.T) {
	hash, err := helpers.HashSenha("Senha@123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubUsuarioRepo{
		getByEmailFn: func(_ context.Context, email string) (*entity.Usuario, error) {
			return &entity.Usuario{ID: 5, Nome: "Ana", Email: email, Senha: hash}, nil
		},
	}
	tokens := testTokens()
	svc := NewUsuarioService(repo, tokens, testLogger())

	u, token, err := svc.Login(context.Background(), "ana@empresa.com", "Senha@123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Senha != "" {
		t.Fatalf("senha hash leaked after login")
	}

	claims, err := tokens.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims["nome"] != "Ana" {
		t.Fatalf("nome claim missing: %v", claims["nome"])
	}
	if _, hasRole := claims["role"]; hasRole {
		t.Fatalf("usuario token must not carry a role claim")
	}
}

func TestUsuarioLogin_UnknownEmailIsGeneric(t *testing.T) {
	svc := NewUsuarioService(&stubUsuarioRepo{}, testTokens(), testLogger())

	_, _, err := svc.Login(context.Background(), "ninguem@empresa.com", "Senha@123")
	if ae := apperror.From(err); ae.Status != 401 || ae.Message != "Usuário ou senha inválidos" {
		t.Fatalf("expected generic 401, got %v", err)
	}
}

func TestUsuarioUpdate_NotFound(t *testing.T) {
	mutated := false
	repo := &stubUsuarioRepo{
		updateFn: func(_ context.Context, u *entity.Usuario) error {
			return repository.ErrNotFound
		},
		createFn: func(_ context.Context, u *entity.Usuario) (int, error) {
			mutated = true
			return 0, nil
		},
	}
	svc := NewUsuarioService(repo, testTokens(), testLogger())

	_, err := svc.Update(context.Background(), 99, UsuarioInput{Nome: "Ana", Email: "ana@empresa.com"})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if mutated {
		t.Fatalf("nothing may be created on a failed update")
	}
}

func TestUsuarioUpdate_EmptySenhaKeepsHash(t *testing.T) {
	var sent string
	repo := &stubUsuarioRepo{
		updateFn: func(_ context.Context, u *entity.Usuario) error {
			sent = u.Senha
			return nil
		},
	}
	svc := NewUsuarioService(repo, testTokens(), testLogger())

	if _, err := svc.Update(context.Background(), 5, UsuarioInput{Nome: "Ana", Email: "ana@empresa.com"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if sent != "" {
		t.Fatalf("empty senha input must reach the repo empty, got %q", sent)
	}
}

package application

import (
	"context"
	"testing"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/pkg/apperror"
)

func TestCargoCreate_OK(t *testing.T) {
	created := false
	repo := &stubCargoRepo{
		createFn: func(_ context.Context, c *entity.Cargo) (int, error) {
			created = true
			c.ID = 7
			return 7, nil
		},
	}
	svc := NewCargoService(repo, testLogger())

	cargo, err := svc.Create(context.Background(), "Analista")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created {
		t.Fatalf("repo create not called")
	}
	if cargo.Nome != "Analista" {
		t.Fatalf("unexpected nome: %q", cargo.Nome)
	}
}

func TestCargoCreate_Duplicate(t *testing.T) {
	repo := &stubCargoRepo{
		findByFieldFn: func(_ context.Context, field string, value any) ([]entity.Cargo, error) {
			if field != "nomeCargo" {
				t.Fatalf("unexpected lookup field %q", field)
			}
			return []entity.Cargo{{ID: 1, Nome: "Analista"}}, nil
		},
		createFn: func(_ context.Context, c *entity.Cargo) (int, error) {
			t.Fatalf("create must not run for a duplicate nome")
			return 0, nil
		},
	}
	svc := NewCargoService(repo, testLogger())

	_, err := svc.Create(context.Background(), "Analista")
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if ae := apperror.From(err); ae.Message != "Cargo já existe" {
		t.Fatalf("unexpected message: %q", ae.Message)
	}
}

func TestCargoCreate_DuplicateRace(t *testing.T) {
	// existence check passes but the UNIQUE constraint fires on insert
	repo := &stubCargoRepo{
		createFn: func(_ context.Context, c *entity.Cargo) (int, error) {
			return 0, repository.ErrDuplicate
		},
	}
	svc := NewCargoService(repo, testLogger())

	_, err := svc.Create(context.Background(), "Analista")
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCargoCreate_NomeTooShort(t *testing.T) {
	svc := NewCargoService(&stubCargoRepo{}, testLogger())

	_, err := svc.Create(context.Background(), "A")
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCargoFindByID_NotFound(t *testing.T) {
	svc := NewCargoService(&stubCargoRepo{}, testLogger())

	_, err := svc.FindByID(context.Background(), 99)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if ae := apperror.From(err); ae.Status != 404 {
		t.Fatalf("expected 404, got %d", ae.Status)
	}
}

func TestCargoDelete_NotFound(t *testing.T) {
	repo := &stubCargoRepo{
		deleteFn: func(_ context.Context, id int) error { return repository.ErrNotFound },
	}
	svc := NewCargoService(repo, testLogger())

	if err := svc.Delete(context.Background(), 99); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

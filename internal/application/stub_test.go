package application

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Stub repositories. Unset functions return the zero value so each test only
// wires the calls it cares about.

type stubCargoRepo struct {
	createFn      func(ctx context.Context, c *entity.Cargo) (int, error)
	findAllFn     func(ctx context.Context) ([]entity.Cargo, error)
	findByIDFn    func(ctx context.Context, id int) (*entity.Cargo, error)
	findByFieldFn func(ctx context.Context, field string, value any) ([]entity.Cargo, error)
	updateFn      func(ctx context.Context, c *entity.Cargo) error
	deleteFn      func(ctx context.Context, id int) error
}

func (s *stubCargoRepo) Create(ctx context.Context, c *entity.Cargo) (int, error) {
	if s.createFn != nil {
		return s.createFn(ctx, c)
	}
	return 1, nil
}

func (s *stubCargoRepo) FindAll(ctx context.Context) ([]entity.Cargo, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubCargoRepo) FindByID(ctx context.Context, id int) (*entity.Cargo, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubCargoRepo) FindByField(ctx context.Context, field string, value any) ([]entity.Cargo, error) {
	if s.findByFieldFn != nil {
		return s.findByFieldFn(ctx, field, value)
	}
	return nil, nil
}

func (s *stubCargoRepo) Update(ctx context.Context, c *entity.Cargo) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, c)
	}
	return nil
}

func (s *stubCargoRepo) Delete(ctx context.Context, id int) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubFuncionarioRepo struct {
	createFn      func(ctx context.Context, f *entity.Funcionario) (int, error)
	findAllFn     func(ctx context.Context) ([]entity.Funcionario, error)
	findByIDFn    func(ctx context.Context, id int) (*entity.Funcionario, error)
	findByFieldFn func(ctx context.Context, field string, value any) ([]entity.Funcionario, error)
	getByEmailFn  func(ctx context.Context, email string) (*entity.Funcionario, error)
	updateFn      func(ctx context.Context, f *entity.Funcionario) error
	deleteFn      func(ctx context.Context, id int) error
}

func (s *stubFuncionarioRepo) Create(ctx context.Context, f *entity.Funcionario) (int, error) {
	if s.createFn != nil {
		return s.createFn(ctx, f)
	}
	return 1, nil
}

func (s *stubFuncionarioRepo) FindAll(ctx context.Context) ([]entity.Funcionario, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubFuncionarioRepo) FindByID(ctx context.Context, id int) (*entity.Funcionario, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubFuncionarioRepo) FindByField(ctx context.Context, field string, value any) ([]entity.Funcionario, error) {
	if s.findByFieldFn != nil {
		return s.findByFieldFn(ctx, field, value)
	}
	return nil, nil
}

func (s *stubFuncionarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Funcionario, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (s *stubFuncionarioRepo) Update(ctx context.Context, f *entity.Funcionario) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, f)
	}
	return nil
}

func (s *stubFuncionarioRepo) Delete(ctx context.Context, id int) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubUsuarioRepo struct {
	createFn      func(ctx context.Context, u *entity.Usuario) (int, error)
	findAllFn     func(ctx context.Context) ([]entity.Usuario, error)
	findByIDFn    func(ctx context.Context, id int) (*entity.Usuario, error)
	findByFieldFn func(ctx context.Context, field string, value any) ([]entity.Usuario, error)
	getByEmailFn  func(ctx context.Context, email string) (*entity.Usuario, error)
	updateFn      func(ctx context.Context, u *entity.Usuario) error
	deleteFn      func(ctx context.Context, id int) error
}

func (s *stubUsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int, error) {
	if s.createFn != nil {
		return s.createFn(ctx, u)
	}
	return 1, nil
}

func (s *stubUsuarioRepo) FindAll(ctx context.Context) ([]entity.Usuario, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubUsuarioRepo) FindByID(ctx context.Context, id int) (*entity.Usuario, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubUsuarioRepo) FindByField(ctx context.Context, field string, value any) ([]entity.Usuario, error) {
	if s.findByFieldFn != nil {
		return s.findByFieldFn(ctx, field, value)
	}
	return nil, nil
}

func (s *stubUsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (s *stubUsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, u)
	}
	return nil
}

func (s *stubUsuarioRepo) Delete(ctx context.Context, id int) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubProjetoRepo struct {
	createFn          func(ctx context.Context, p *entity.Projeto) (int, error)
	findAllFn         func(ctx context.Context) ([]entity.Projeto, error)
	findByIDFn        func(ctx context.Context, id int) (*entity.Projeto, error)
	findByFieldFn     func(ctx context.Context, field string, value any) ([]entity.Projeto, error)
	findByUsuarioIDFn func(ctx context.Context, usuarioID int) ([]entity.Projeto, error)
	updateFn          func(ctx context.Context, p *entity.Projeto) error
	deleteFn          func(ctx context.Context, id int) error
}

func (s *stubProjetoRepo) Create(ctx context.Context, p *entity.Projeto) (int, error) {
	if s.createFn != nil {
		return s.createFn(ctx, p)
	}
	return 1, nil
}

func (s *stubProjetoRepo) FindAll(ctx context.Context) ([]entity.Projeto, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubProjetoRepo) FindByID(ctx context.Context, id int) (*entity.Projeto, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubProjetoRepo) FindByField(ctx context.Context, field string, value any) ([]entity.Projeto, error) {
	if s.findByFieldFn != nil {
		return s.findByFieldFn(ctx, field, value)
	}
	return nil, nil
}

func (s *stubProjetoRepo) FindByUsuarioID(ctx context.Context, usuarioID int) ([]entity.Projeto, error) {
	if s.findByUsuarioIDFn != nil {
		return s.findByUsuarioIDFn(ctx, usuarioID)
	}
	return nil, nil
}

func (s *stubProjetoRepo) Update(ctx context.Context, p *entity.Projeto) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, p)
	}
	return nil
}

func (s *stubProjetoRepo) Delete(ctx context.Context, id int) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubTarefaRepo struct {
	createFn          func(ctx context.Context, t *entity.Tarefa) (int, error)
	findAllFn         func(ctx context.Context) ([]entity.Tarefa, error)
	findByIDFn        func(ctx context.Context, id int) (*entity.Tarefa, error)
	findByFieldFn     func(ctx context.Context, field string, value any) ([]entity.Tarefa, error)
	findByProjetoIDFn func(ctx context.Context, projetoID int) ([]entity.Tarefa, error)
	updateFn          func(ctx context.Context, t *entity.Tarefa) error
	deleteFn          func(ctx context.Context, id int) error
	concluirFn        func(ctx context.Context, id int) error
}

func (s *stubTarefaRepo) Create(ctx context.Context, t *entity.Tarefa) (int, error) {
	if s.createFn != nil {
		return s.createFn(ctx, t)
	}
	return 1, nil
}

func (s *stubTarefaRepo) FindAll(ctx context.Context) ([]entity.Tarefa, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s *stubTarefaRepo) FindByID(ctx context.Context, id int) (*entity.Tarefa, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (s *stubTarefaRepo) FindByField(ctx context.Context, field string, value any) ([]entity.Tarefa, error) {
	if s.findByFieldFn != nil {
		return s.findByFieldFn(ctx, field, value)
	}
	return nil, nil
}

func (s *stubTarefaRepo) FindByProjetoID(ctx context.Context, projetoID int) ([]entity.Tarefa, error) {
	if s.findByProjetoIDFn != nil {
		return s.findByProjetoIDFn(ctx, projetoID)
	}
	return nil, nil
}

func (s *stubTarefaRepo) Update(ctx context.Context, t *entity.Tarefa) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, t)
	}
	return nil
}

func (s *stubTarefaRepo) Delete(ctx context.Context, id int) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubTarefaRepo) MarcarComoConcluida(ctx context.Context, id int) error {
	if s.concluirFn != nil {
		return s.concluirFn(ctx, id)
	}
	return nil
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
)

var funcionarioFields = map[string]string{
	"idFuncionario":        "f.id",
	"nomeFuncionario":      "f.nome",
	"email":                "f.email",
	"recebeValeTransporte": "f.recebe_vale_transporte",
	"idCargo":              "f.cargo_id",
}

type FuncionarioRepository struct {
	pool *pgxpool.Pool
}

func NewFuncionarioRepository(pool *pgxpool.Pool) *FuncionarioRepository {
	return &FuncionarioRepository{pool: pool}
}

const funcionarioSelect = `
	SELECT f.id, f.nome, f.email, f.senha, f.recebe_vale_transporte, c.id, c.nome
	FROM funcionarios f
	JOIN cargos c ON c.id = f.cargo_id
`

func scanFuncionario(row interface{ Scan(...any) error }) (*entity.Funcionario, error) {
	f := &entity.Funcionario{}
	err := row.Scan(&f.ID, &f.Nome, &f.Email, &f.Senha, &f.RecebeValeTransporte, &f.Cargo.ID, &f.Cargo.Nome)
	if err != nil {
		return nil, mapErr(err)
	}
	return f, nil
}

func (r *FuncionarioRepository) Create(ctx context.Context, f *entity.Funcionario) (int, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO funcionarios (nome, email, senha, recebe_vale_transporte, cargo_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, f.Nome, f.Email, f.Senha, f.RecebeValeTransporte, f.Cargo.ID)
	if err := row.Scan(&f.ID); err != nil {
		return 0, mapErr(err)
	}
	return f.ID, nil
}

func (r *FuncionarioRepository) FindAll(ctx context.Context) ([]entity.Funcionario, error) {
	rows, err := r.pool.Query(ctx, funcionarioSelect+` ORDER BY f.id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	funcionarios := make([]entity.Funcionario, 0)
	for rows.Next() {
		f, err := scanFuncionario(rows)
		if err != nil {
			return nil, err
		}
		f.Senha = "" // hashes never leave the repository except via GetByEmail
		funcionarios = append(funcionarios, *f)
	}
	return funcionarios, rows.Err()
}

func (r *FuncionarioRepository) FindByID(ctx context.Context, id int) (*entity.Funcionario, error) {
	f, err := scanFuncionario(r.pool.QueryRow(ctx, funcionarioSelect+` WHERE f.id = $1`, id))
	if err != nil {
		return nil, err
	}
	f.Senha = ""
	return f, nil
}

func (r *FuncionarioRepository) FindByField(ctx context.Context, field string, value any) ([]entity.Funcionario, error) {
	column, ok := funcionarioFields[field]
	if !ok {
		return nil, repository.ErrInvalidField
	}
	rows, err := r.pool.Query(ctx, funcionarioSelect+` WHERE `+column+` = $1`, value)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	funcionarios := make([]entity.Funcionario, 0)
	for rows.Next() {
		f, err := scanFuncionario(rows)
		if err != nil {
			return nil, err
		}
		f.Senha = ""
		funcionarios = append(funcionarios, *f)
	}
	return funcionarios, rows.Err()
}

func (r *FuncionarioRepository) GetByEmail(ctx context.Context, email string) (*entity.Funcionario, error) {
	return scanFuncionario(r.pool.QueryRow(ctx, funcionarioSelect+` WHERE f.email = $1`, email))
}

// Update keeps the stored senha when the entity carries none.
func (r *FuncionarioRepository) Update(ctx context.Context, f *entity.Funcionario) error {
	var (
		res interface{ RowsAffected() int64 }
		err error
	)
	if f.Senha != "" {
		res, err = r.pool.Exec(ctx, `
			UPDATE funcionarios
			SET nome = $1, email = $2, senha = $3, recebe_vale_transporte = $4, cargo_id = $5
			WHERE id = $6
		`, f.Nome, f.Email, f.Senha, f.RecebeValeTransporte, f.Cargo.ID, f.ID)
	} else {
		res, err = r.pool.Exec(ctx, `
			UPDATE funcionarios
			SET nome = $1, email = $2, recebe_vale_transporte = $3, cargo_id = $4
			WHERE id = $5
		`, f.Nome, f.Email, f.RecebeValeTransporte, f.Cargo.ID, f.ID)
	}
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FuncionarioRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM funcionarios WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.FuncionarioRepository = (*FuncionarioRepository)(nil)

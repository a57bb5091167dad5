package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
)

var usuarioFields = map[string]string{
	"id":    "id",
	"nome":  "nome",
	"email": "email",
}

type UsuarioRepository struct {
	pool *pgxpool.Pool
}

func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepository {
	return &UsuarioRepository{pool: pool}
}

func (r *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario) (int, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (nome, email, senha)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Nome, u.Email, u.Senha)
	if err := row.Scan(&u.ID); err != nil {
		return 0, mapErr(err)
	}
	return u.ID, nil
}

func (r *UsuarioRepository) FindAll(ctx context.Context) ([]entity.Usuario, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nome, email FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	usuarios := make([]entity.Usuario, 0)
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email); err != nil {
			return nil, mapErr(err)
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id int) (*entity.Usuario, error) {
	u := &entity.Usuario{}
	row := r.pool.QueryRow(ctx, `SELECT id, nome, email FROM usuarios WHERE id = $1`, id)
	if err := row.Scan(&u.ID, &u.Nome, &u.Email); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (r *UsuarioRepository) FindByField(ctx context.Context, field string, value any) ([]entity.Usuario, error) {
	column, ok := usuarioFields[field]
	if !ok {
		return nil, repository.ErrInvalidField
	}
	rows, err := r.pool.Query(ctx, `SELECT id, nome, email FROM usuarios WHERE `+column+` = $1`, value)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	usuarios := make([]entity.Usuario, 0)
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email); err != nil {
			return nil, mapErr(err)
		}
		usuarios = append(usuarios, u)
	}
	return usuarios, rows.Err()
}

func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	u := &entity.Usuario{}
	row := r.pool.QueryRow(ctx, `SELECT id, nome, email, senha FROM usuarios WHERE email = $1`, email)
	if err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

// Update keeps the stored senha when the entity carries none.
func (r *UsuarioRepository) Update(ctx context.Context, u *entity.Usuario) error {
	var (
		res interface{ RowsAffected() int64 }
		err error
	)
	if u.Senha != "" {
		res, err = r.pool.Exec(ctx, `
			UPDATE usuarios SET nome = $1, email = $2, senha = $3 WHERE id = $4
		`, u.Nome, u.Email, u.Senha, u.ID)
	} else {
		res, err = r.pool.Exec(ctx, `
			UPDATE usuarios SET nome = $1, email = $2 WHERE id = $3
		`, u.Nome, u.Email, u.ID)
	}
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UsuarioRepository = (*UsuarioRepository)(nil)

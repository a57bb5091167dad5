package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
)

var projetoFields = map[string]string{
	"id":         "p.id",
	"nome":       "p.nome",
	"status":     "p.status",
	"usuario_id": "p.usuario_id",
}

type ProjetoRepository struct {
	pool *pgxpool.Pool
}

func NewProjetoRepository(pool *pgxpool.Pool) *ProjetoRepository {
	return &ProjetoRepository{pool: pool}
}

const projetoSelect = `
	SELECT p.id, p.nome, p.descricao, p.data_inicio, p.status, p.usuario_id, u.nome
	FROM projetos p
	JOIN usuarios u ON u.id = p.usuario_id
`

func scanProjeto(row interface{ Scan(...any) error }) (*entity.Projeto, error) {
	p := &entity.Projeto{}
	var dataInicio *time.Time
	err := row.Scan(&p.ID, &p.Nome, &p.Descricao, &dataInicio, &p.Status, &p.UsuarioID, &p.UsuarioNome)
	if err != nil {
		return nil, mapErr(err)
	}
	p.DataInicio = dateString(dataInicio)
	return p, nil
}

func (r *ProjetoRepository) Create(ctx context.Context, p *entity.Projeto) (int, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projetos (nome, descricao, data_inicio, status, usuario_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.Nome, p.Descricao, dateParam(p.DataInicio), p.Status, p.UsuarioID)
	if err := row.Scan(&p.ID); err != nil {
		return 0, mapErr(err)
	}
	return p.ID, nil
}

func (r *ProjetoRepository) FindAll(ctx context.Context) ([]entity.Projeto, error) {
	return r.query(ctx, projetoSelect+` ORDER BY p.id`)
}

func (r *ProjetoRepository) FindByID(ctx context.Context, id int) (*entity.Projeto, error) {
	return scanProjeto(r.pool.QueryRow(ctx, projetoSelect+` WHERE p.id = $1`, id))
}

func (r *ProjetoRepository) FindByField(ctx context.Context, field string, value any) ([]entity.Projeto, error) {
	column, ok := projetoFields[field]
	if !ok {
		return nil, repository.ErrInvalidField
	}
	return r.query(ctx, projetoSelect+` WHERE `+column+` = $1`, value)
}

func (r *ProjetoRepository) FindByUsuarioID(ctx context.Context, usuarioID int) ([]entity.Projeto, error) {
	return r.query(ctx, projetoSelect+` WHERE p.usuario_id = $1 ORDER BY p.id`, usuarioID)
}

func (r *ProjetoRepository) query(ctx context.Context, sql string, args ...any) ([]entity.Projeto, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	projetos := make([]entity.Projeto, 0)
	for rows.Next() {
		p, err := scanProjeto(rows)
		if err != nil {
			return nil, err
		}
		projetos = append(projetos, *p)
	}
	return projetos, rows.Err()
}

func (r *ProjetoRepository) Update(ctx context.Context, p *entity.Projeto) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE projetos
		SET nome = $1, descricao = $2, data_inicio = $3, status = $4, usuario_id = $5
		WHERE id = $6
	`, p.Nome, p.Descricao, dateParam(p.DataInicio), p.Status, p.UsuarioID, p.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjetoRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM projetos WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProjetoRepository = (*ProjetoRepository)(nil)

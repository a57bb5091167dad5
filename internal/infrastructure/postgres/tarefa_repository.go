package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
)

var tarefaFields = map[string]string{
	"id":         "id",
	"titulo":     "titulo",
	"concluida":  "concluida",
	"projeto_id": "projeto_id",
}

type TarefaRepository struct {
	pool *pgxpool.Pool
}

func NewTarefaRepository(pool *pgxpool.Pool) *TarefaRepository {
	return &TarefaRepository{pool: pool}
}

const tarefaSelect = `SELECT id, titulo, concluida, data_limite, projeto_id FROM tarefas`

func scanTarefa(row interface{ Scan(...any) error }) (*entity.Tarefa, error) {
	t := &entity.Tarefa{}
	var dataLimite *time.Time
	err := row.Scan(&t.ID, &t.Titulo, &t.Concluida, &dataLimite, &t.ProjetoID)
	if err != nil {
		return nil, mapErr(err)
	}
	t.DataLimite = dateString(dataLimite)
	return t, nil
}

func (r *TarefaRepository) Create(ctx context.Context, t *entity.Tarefa) (int, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tarefas (titulo, concluida, data_limite, projeto_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, t.Titulo, t.Concluida, dateParam(t.DataLimite), t.ProjetoID)
	if err := row.Scan(&t.ID); err != nil {
		return 0, mapErr(err)
	}
	return t.ID, nil
}

func (r *TarefaRepository) FindAll(ctx context.Context) ([]entity.Tarefa, error) {
	return r.query(ctx, tarefaSelect+` ORDER BY id`)
}

func (r *TarefaRepository) FindByID(ctx context.Context, id int) (*entity.Tarefa, error) {
	return scanTarefa(r.pool.QueryRow(ctx, tarefaSelect+` WHERE id = $1`, id))
}

func (r *TarefaRepository) FindByField(ctx context.Context, field string, value any) ([]entity.Tarefa, error) {
	column, ok := tarefaFields[field]
	if !ok {
		return nil, repository.ErrInvalidField
	}
	return r.query(ctx, tarefaSelect+` WHERE `+column+` = $1`, value)
}

func (r *TarefaRepository) FindByProjetoID(ctx context.Context, projetoID int) ([]entity.Tarefa, error) {
	return r.query(ctx, tarefaSelect+` WHERE projeto_id = $1 ORDER BY id`, projetoID)
}

func (r *TarefaRepository) query(ctx context.Context, sql string, args ...any) ([]entity.Tarefa, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	tarefas := make([]entity.Tarefa, 0)
	for rows.Next() {
		t, err := scanTarefa(rows)
		if err != nil {
			return nil, err
		}
		tarefas = append(tarefas, *t)
	}
	return tarefas, rows.Err()
}

func (r *TarefaRepository) Update(ctx context.Context, t *entity.Tarefa) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tarefas
		SET titulo = $1, concluida = $2, data_limite = $3, projeto_id = $4
		WHERE id = $5
	`, t.Titulo, t.Concluida, dateParam(t.DataLimite), t.ProjetoID, t.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TarefaRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tarefas WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// MarcarComoConcluida is idempotent: the row keeps concluida = TRUE no
// matter how many times it runs. Existence is checked by the service.
func (r *TarefaRepository) MarcarComoConcluida(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `UPDATE tarefas SET concluida = TRUE WHERE id = $1`, id)
	return mapErr(err)
}

var _ repository.TarefaRepository = (*TarefaRepository)(nil)

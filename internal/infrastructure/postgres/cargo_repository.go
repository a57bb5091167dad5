package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/entity"
	"github.com/TodeschiniDeveloper/gestao-projetos-api/internal/domain/repository"
)

// cargoFields maps the JSON field names accepted by dynamic lookups to the
// actual columns. Anything else is rejected before touching SQL.
var cargoFields = map[string]string{
	"idCargo":   "id",
	"nomeCargo": "nome",
}

type CargoRepository struct {
	pool *pgxpool.Pool
}

func NewCargoRepository(pool *pgxpool.Pool) *CargoRepository {
	return &CargoRepository{pool: pool}
}

func (r *CargoRepository) Create(ctx context.Context, c *entity.Cargo) (int, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cargos (nome)
		VALUES ($1)
		RETURNING id
	`, c.Nome)
	if err := row.Scan(&c.ID); err != nil {
		return 0, mapErr(err)
	}
	return c.ID, nil
}

func (r *CargoRepository) FindAll(ctx context.Context) ([]entity.Cargo, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nome FROM cargos ORDER BY id`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	cargos := make([]entity.Cargo, 0)
	for rows.Next() {
		var c entity.Cargo
		if err := rows.Scan(&c.ID, &c.Nome); err != nil {
			return nil, mapErr(err)
		}
		cargos = append(cargos, c)
	}
	return cargos, rows.Err()
}

func (r *CargoRepository) FindByID(ctx context.Context, id int) (*entity.Cargo, error) {
	c := &entity.Cargo{}
	row := r.pool.QueryRow(ctx, `SELECT id, nome FROM cargos WHERE id = $1`, id)
	if err := row.Scan(&c.ID, &c.Nome); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

func (r *CargoRepository) FindByField(ctx context.Context, field string, value any) ([]entity.Cargo, error) {
	column, ok := cargoFields[field]
	if !ok {
		return nil, repository.ErrInvalidField
	}
	rows, err := r.pool.Query(ctx, `SELECT id, nome FROM cargos WHERE `+column+` = $1`, value)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	cargos := make([]entity.Cargo, 0)
	for rows.Next() {
		var c entity.Cargo
		if err := rows.Scan(&c.ID, &c.Nome); err != nil {
			return nil, mapErr(err)
		}
		cargos = append(cargos, c)
	}
	return cargos, rows.Err()
}

func (r *CargoRepository) Update(ctx context.Context, c *entity.Cargo) error {
	res, err := r.pool.Exec(ctx, `UPDATE cargos SET nome = $1 WHERE id = $2`, c.Nome, c.ID)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CargoRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM cargos WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CargoRepository = (*CargoRepository)(nil)

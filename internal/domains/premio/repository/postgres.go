package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"premios-backend/internal/domains/premio"
	"premios-backend/pkg/cache"
)

// postgresRepository implements premio.Repository with pgx and a
// read-through cache on GetByID.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) premio.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	premioColumns  = "id, nome, ano_edicao, data_inicio, data_fim, status"
	premioCacheTTL = 5 * time.Minute
)

func premioCacheKey(id int64) string {
	return fmt.Sprintf("premio:%d", id)
}

func scanPremio(row pgx.Row) (*premio.Premio, error) {
	var p premio.Premio
	err := row.Scan(&p.ID, &p.Nome, &p.AnoEdicao, &p.DataInicio, &p.DataFim, &p.Status)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *premio.Premio) (*premio.Premio, error) {
	query := `
        INSERT INTO premios (nome, ano_edicao, data_inicio, data_fim, status)
        VALUES ($1, $2, $3, $4, TRUE)
        RETURNING ` + premioColumns

	created, err := scanPremio(r.pool.QueryRow(ctx, query, p.Nome, p.AnoEdicao, p.DataInicio, p.DataFim))
	if err != nil {
		return nil, translatePgError(err, "criar prêmio")
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*premio.Premio, error) {
	key := premioCacheKey(id)

	var cached premio.Premio
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + premioColumns + ` FROM premios WHERE id = $1`

	p, err := scanPremio(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, premio.ErrPremioNotFound
		}
		return nil, fmt.Errorf("failed to get premio by id: %w", err)
	}

	_ = r.cache.Set(ctx, key, p, premioCacheTTL)
	return p, nil
}

func (r *postgresRepository) FindByNomeAndAno(ctx context.Context, nome string, anoEdicao int) (*premio.Premio, error) {
	query := `SELECT ` + premioColumns + ` FROM premios WHERE nome = $1 AND ano_edicao = $2`

	p, err := scanPremio(r.pool.QueryRow(ctx, query, nome, anoEdicao))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find premio by nome and ano: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, apenasAtivos bool) ([]premio.Premio, error) {
	query := `SELECT ` + premioColumns + ` FROM premios`
	if apenasAtivos {
		query += ` WHERE status = TRUE`
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list premios: %w", err)
	}
	defer rows.Close()

	return collectPremios(rows)
}

func (r *postgresRepository) GetByAno(ctx context.Context, anoEdicao int) ([]premio.Premio, error) {
	query := `SELECT ` + premioColumns + ` FROM premios WHERE ano_edicao = $1 AND status = TRUE ORDER BY id`

	rows, err := r.pool.Query(ctx, query, anoEdicao)
	if err != nil {
		return nil, fmt.Errorf("failed to list premios by ano: %w", err)
	}
	defer rows.Close()

	return collectPremios(rows)
}

func collectPremios(rows pgx.Rows) ([]premio.Premio, error) {
	premios := []premio.Premio{}
	for rows.Next() {
		var p premio.Premio
		if err := rows.Scan(&p.ID, &p.Nome, &p.AnoEdicao, &p.DataInicio, &p.DataFim, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan premio: %w", err)
		}
		premios = append(premios, p)
	}
	return premios, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *premio.Premio) (*premio.Premio, error) {
	query := `
        UPDATE premios
        SET nome = $2, ano_edicao = $3, data_inicio = $4, data_fim = $5, status = $6
        WHERE id = $1
        RETURNING ` + premioColumns

	updated, err := scanPremio(r.pool.QueryRow(ctx, query,
		p.ID, p.Nome, p.AnoEdicao, p.DataInicio, p.DataFim, p.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, premio.ErrPremioNotFound
		}
		return nil, translatePgError(err, "atualizar prêmio")
	}

	_ = r.cache.Delete(ctx, premioCacheKey(p.ID))
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE premios SET status = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to inactivate premio: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return premio.ErrPremioNotFound
	}

	_ = r.cache.Delete(ctx, premioCacheKey(id))
	return nil
}

func (r *postgresRepository) GetProjetos(ctx context.Context, premioID int64) ([]premio.ProjetoResumo, error) {
	query := `
        SELECT id, titulo, situacao, nota, status
        FROM projetos
        WHERE premio_id = $1 AND status = TRUE
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, premioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projetos of premio: %w", err)
	}
	defer rows.Close()

	projetos := []premio.ProjetoResumo{}
	for rows.Next() {
		var p premio.ProjetoResumo
		if err := rows.Scan(&p.ID, &p.Titulo, &p.Situacao, &p.Nota, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan projeto: %w", err)
		}
		projetos = append(projetos, p)
	}
	return projetos, rows.Err()
}

func (r *postgresRepository) CountProjetos(ctx context.Context, premioID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projetos WHERE premio_id = $1 AND status = TRUE`,
		premioID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projetos of premio: %w", err)
	}
	return count, nil
}

func translatePgError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return premio.ErrNomeAnoJaCadastrado
		case "23514":
			return premio.ErrDatasInvalidas
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

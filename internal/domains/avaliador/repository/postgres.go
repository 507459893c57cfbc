package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"premios-backend/internal/domains/avaliador"
)

// postgresRepository implements avaliador.Repository with pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) avaliador.Repository {
	return &postgresRepository{pool: pool}
}

const avaliadorColumns = "id, nome, cpf, email, status"

func scanAvaliador(row pgx.Row) (*avaliador.Avaliador, error) {
	var a avaliador.Avaliador
	err := row.Scan(&a.ID, &a.Nome, &a.CPF, &a.Email, &a.Status)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *avaliador.Avaliador) (*avaliador.Avaliador, error) {
	query := `
        INSERT INTO avaliadores (nome, cpf, email, status)
        VALUES ($1, $2, $3, TRUE)
        RETURNING ` + avaliadorColumns

	created, err := scanAvaliador(r.pool.QueryRow(ctx, query, a.Nome, a.CPF, a.Email))
	if err != nil {
		return nil, translateUniqueViolation(err, "criar avaliador")
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*avaliador.Avaliador, error) {
	query := `SELECT ` + avaliadorColumns + ` FROM avaliadores WHERE id = $1`

	a, err := scanAvaliador(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, avaliador.ErrAvaliadorNotFound
		}
		return nil, fmt.Errorf("failed to get avaliador by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) FindByCPF(ctx context.Context, cpf string) (*avaliador.Avaliador, error) {
	return r.findBy(ctx, "cpf", cpf)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*avaliador.Avaliador, error) {
	return r.findBy(ctx, "email", email)
}

func (r *postgresRepository) findBy(ctx context.Context, column, value string) (*avaliador.Avaliador, error) {
	query := `SELECT ` + avaliadorColumns + ` FROM avaliadores WHERE ` + column + ` = $1`

	a, err := scanAvaliador(r.pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find avaliador by %s: %w", column, err)
	}
	return a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]avaliador.Avaliador, error) {
	query := `SELECT ` + avaliadorColumns + ` FROM avaliadores WHERE status = TRUE ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list avaliadores: %w", err)
	}
	defer rows.Close()

	avaliadores := []avaliador.Avaliador{}
	for rows.Next() {
		var a avaliador.Avaliador
		if err := rows.Scan(&a.ID, &a.Nome, &a.CPF, &a.Email, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan avaliador: %w", err)
		}
		avaliadores = append(avaliadores, a)
	}
	return avaliadores, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *avaliador.Avaliador) (*avaliador.Avaliador, error) {
	query := `
        UPDATE avaliadores
        SET nome = $2, cpf = $3, email = $4, status = $5
        WHERE id = $1
        RETURNING ` + avaliadorColumns

	updated, err := scanAvaliador(r.pool.QueryRow(ctx, query, a.ID, a.Nome, a.CPF, a.Email, a.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, avaliador.ErrAvaliadorNotFound
		}
		return nil, translateUniqueViolation(err, "atualizar avaliador")
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE avaliadores SET status = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to inactivate avaliador: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return avaliador.ErrAvaliadorNotFound
	}
	return nil
}

func (r *postgresRepository) GetProjetos(ctx context.Context, avaliadorID int64) ([]avaliador.ProjetoResumo, error) {
	query := `
        SELECT id, titulo, situacao, nota, status
        FROM projetos
        WHERE avaliador_id = $1 AND status = TRUE
        ORDER BY id`

	rows, err := r.pool.Query(ctx, query, avaliadorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projetos of avaliador: %w", err)
	}
	defer rows.Close()

	projetos := []avaliador.ProjetoResumo{}
	for rows.Next() {
		var p avaliador.ProjetoResumo
		if err := rows.Scan(&p.ID, &p.Titulo, &p.Situacao, &p.Nota, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan projeto: %w", err)
		}
		projetos = append(projetos, p)
	}
	return projetos, rows.Err()
}

func (r *postgresRepository) CountProjetos(ctx context.Context, avaliadorID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projetos WHERE avaliador_id = $1 AND status = TRUE`,
		avaliadorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projetos of avaliador: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) MediaNotas(ctx context.Context, avaliadorID int64) (*float64, error) {
	var media *float64
	err := r.pool.QueryRow(ctx,
		`SELECT AVG(nota) FROM projetos WHERE avaliador_id = $1`,
		avaliadorID,
	).Scan(&media)
	if err != nil {
		return nil, fmt.Errorf("failed to average notas of avaliador: %w", err)
	}
	return media, nil
}

func translateUniqueViolation(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "cpf") {
			return avaliador.ErrCPFJaCadastrado
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return avaliador.ErrEmailJaCadastrado
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"premios-backend/internal/domains/autor"
	"premios-backend/pkg/cache"
	"premios-backend/pkg/database"
)

// postgresRepository implements autor.Repository with pgx.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) autor.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const autorColumns = "id, nome, cpf, email, status"

func scanAutor(row pgx.Row) (*autor.Autor, error) {
	var a autor.Autor
	err := row.Scan(&a.ID, &a.Nome, &a.CPF, &a.Email, &a.Status)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *autor.Autor) (*autor.Autor, error) {
	query := `
        INSERT INTO autores (nome, cpf, email, status)
        VALUES ($1, $2, $3, TRUE)
        RETURNING ` + autorColumns

	created, err := scanAutor(r.pool.QueryRow(ctx, query, a.Nome, a.CPF, a.Email))
	if err != nil {
		return nil, translateUniqueViolation(err, "criar autor")
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*autor.Autor, error) {
	query := `SELECT ` + autorColumns + ` FROM autores WHERE id = $1`

	a, err := scanAutor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, autor.ErrAutorNotFound
		}
		return nil, fmt.Errorf("failed to get autor by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) FindByCPF(ctx context.Context, cpf string) (*autor.Autor, error) {
	return r.findBy(ctx, "cpf", cpf)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*autor.Autor, error) {
	return r.findBy(ctx, "email", email)
}

func (r *postgresRepository) findBy(ctx context.Context, column, value string) (*autor.Autor, error) {
	query := `SELECT ` + autorColumns + ` FROM autores WHERE ` + column + ` = $1`

	a, err := scanAutor(r.pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find autor by %s: %w", column, err)
	}
	return a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]autor.Autor, error) {
	query := `SELECT ` + autorColumns + ` FROM autores WHERE status = TRUE ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list autores: %w", err)
	}
	defer rows.Close()

	autores := []autor.Autor{}
	for rows.Next() {
		var a autor.Autor
		if err := rows.Scan(&a.ID, &a.Nome, &a.CPF, &a.Email, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan autor: %w", err)
		}
		autores = append(autores, a)
	}
	return autores, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *autor.Autor) (*autor.Autor, error) {
	query := `
        UPDATE autores
        SET nome = $2, cpf = $3, email = $4, status = $5
        WHERE id = $1
        RETURNING ` + autorColumns

	updated, err := scanAutor(r.pool.QueryRow(ctx, query, a.ID, a.Nome, a.CPF, a.Email, a.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, autor.ErrAutorNotFound
		}
		return nil, translateUniqueViolation(err, "atualizar autor")
	}
	return updated, nil
}

// Delete inactivates the author and every project linked to it in one
// transaction, then drops stale projeto cache entries.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            UPDATE projetos SET status = FALSE
            WHERE id IN (SELECT projeto_id FROM projeto_autores WHERE autor_id = $1)
        `, id)
		if err != nil {
			return fmt.Errorf("failed to inactivate projetos of autor: %w", err)
		}

		tag, err := tx.Exec(ctx, `UPDATE autores SET status = FALSE WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to inactivate autor: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return autor.ErrAutorNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Linked projects changed status, so their cached copies are stale.
	_ = r.cache.DeletePattern(ctx, "projeto:*")

	return nil
}

func (r *postgresRepository) GetProjetos(ctx context.Context, autorID int64) ([]autor.ProjetoResumo, error) {
	query := `
        SELECT p.id, p.titulo, p.situacao, p.nota, p.status
        FROM projetos p
        JOIN projeto_autores pa ON pa.projeto_id = p.id
        WHERE pa.autor_id = $1 AND p.status = TRUE
        ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query, autorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projetos of autor: %w", err)
	}
	defer rows.Close()

	projetos := []autor.ProjetoResumo{}
	for rows.Next() {
		var p autor.ProjetoResumo
		if err := rows.Scan(&p.ID, &p.Titulo, &p.Situacao, &p.Nota, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan projeto: %w", err)
		}
		projetos = append(projetos, p)
	}
	return projetos, rows.Err()
}

func (r *postgresRepository) CountProjetos(ctx context.Context, autorID int64) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM projetos p
        JOIN projeto_autores pa ON pa.projeto_id = p.id
        WHERE pa.autor_id = $1 AND p.status = TRUE`

	var count int64
	if err := r.pool.QueryRow(ctx, query, autorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projetos of autor: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) MediaNotas(ctx context.Context, autorID int64) (*float64, error) {
	query := `
        SELECT AVG(p.nota)
        FROM projetos p
        JOIN projeto_autores pa ON pa.projeto_id = p.id
        WHERE pa.autor_id = $1`

	var media *float64
	if err := r.pool.QueryRow(ctx, query, autorID).Scan(&media); err != nil {
		return nil, fmt.Errorf("failed to average notas of autor: %w", err)
	}
	return media, nil
}

// translateUniqueViolation maps PostgreSQL 23505 on the natural keys to
// the domain conflict errors, so the check-then-write race still ends in
// a clean 409 instead of a 500.
func translateUniqueViolation(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "cpf") {
			return autor.ErrCPFJaCadastrado
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return autor.ErrEmailJaCadastrado
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

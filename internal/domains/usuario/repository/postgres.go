package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"premios-backend/internal/domains/usuario"
)

// postgresRepository implements usuario.Repository with pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) usuario.Repository {
	return &postgresRepository{pool: pool}
}

const usuarioColumns = "id, nome, email, senha, role, created_at, updated_at"

func scanUsuario(row pgx.Row) (*usuario.Usuario, error) {
	var u usuario.Usuario
	err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *usuario.Usuario) (*usuario.Usuario, error) {
	query := `
        INSERT INTO usuarios (nome, email, senha, role)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + usuarioColumns

	created, err := scanUsuario(r.pool.QueryRow(ctx, query, u.Nome, u.Email, u.Senha, u.Role))
	if err != nil {
		return nil, translateUniqueViolation(err, "criar usuário")
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`

	u, err := scanUsuario(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usuario.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("failed to get usuario by id: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1`

	u, err := scanUsuario(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find usuario by email: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *usuario.Usuario) (*usuario.Usuario, error) {
	query := `
        UPDATE usuarios
        SET nome = $2, email = $3, senha = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + usuarioColumns

	updated, err := scanUsuario(r.pool.QueryRow(ctx, query, u.ID, u.Nome, u.Email, u.Senha))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usuario.ErrUsuarioNotFound
		}
		return nil, translateUniqueViolation(err, "atualizar usuário")
	}
	return updated, nil
}

func translateUniqueViolation(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usuario.ErrEmailJaCadastrado
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

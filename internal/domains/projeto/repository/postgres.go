package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"premios-backend/internal/domains/autor"
	"premios-backend/internal/domains/avaliador"
	"premios-backend/internal/domains/premio"
	"premios-backend/internal/domains/projeto"
	"premios-backend/pkg/cache"
	"premios-backend/pkg/database"
)

// postgresRepository implements projeto.Repository with pgx and a
// read-through cache on GetByID.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) projeto.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	projetoColumns = `id, titulo, area_tematica, resumo, situacao, nota,
        parecer_descritivo, premio_id, avaliador_id, status, data_cadastro`
	projetoCacheTTL = 5 * time.Minute
)

func projetoCacheKey(id int64) string {
	return fmt.Sprintf("projeto:%d", id)
}

func scanProjeto(row pgx.Row) (*projeto.Projeto, error) {
	var p projeto.Projeto
	err := row.Scan(&p.ID, &p.Titulo, &p.AreaTematica, &p.Resumo, &p.Situacao,
		&p.Nota, &p.ParecerDescritivo, &p.PremioID, &p.AvaliadorID, &p.Status, &p.DataCadastro)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *projeto.Projeto, autorIDs []int64) (*projeto.Projeto, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*projeto.Projeto, error) {
		query := `
            INSERT INTO projetos (titulo, area_tematica, resumo, situacao, nota,
                parecer_descritivo, premio_id, avaliador_id, status, data_cadastro)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, $9)
            RETURNING ` + projetoColumns

		inserted, err := scanProjeto(tx.QueryRow(ctx, query,
			p.Titulo, p.AreaTematica, p.Resumo, p.Situacao, p.Nota,
			p.ParecerDescritivo, p.PremioID, p.AvaliadorID, p.DataCadastro))
		if err != nil {
			return nil, translatePgError(err, "criar projeto")
		}

		for _, autorID := range autorIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO projeto_autores (projeto_id, autor_id) VALUES ($1, $2)`,
				inserted.ID, autorID)
			if err != nil {
				return nil, translatePgError(err, "vincular autor")
			}
		}
		return inserted, nil
	})
	if err != nil {
		return nil, err
	}

	return r.reload(ctx, created.ID)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*projeto.Projeto, error) {
	key := projetoCacheKey(id)

	var cached projeto.Projeto
	if found, err := r.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	query := `SELECT ` + projetoColumns + ` FROM projetos WHERE id = $1`

	p, err := scanProjeto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, projeto.ErrProjetoNotFound
		}
		return nil, fmt.Errorf("failed to get projeto by id: %w", err)
	}

	projetos := []projeto.Projeto{*p}
	if err := r.attachRelations(ctx, projetos); err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, key, &projetos[0], projetoCacheTTL)
	return &projetos[0], nil
}

func (r *postgresRepository) FindByTituloAndPremio(ctx context.Context, titulo string, premioID int64) (*projeto.Projeto, error) {
	query := `SELECT ` + projetoColumns + ` FROM projetos WHERE titulo = $1 AND premio_id = $2`

	p, err := scanProjeto(r.pool.QueryRow(ctx, query, titulo, premioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find projeto by titulo and premio: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, apenasAtivos bool) ([]projeto.Projeto, error) {
	return r.list(ctx, "", apenasAtivos)
}

func (r *postgresRepository) GetByArea(ctx context.Context, area projeto.AreaTematica, apenasAtivos bool) ([]projeto.Projeto, error) {
	return r.list(ctx, "area_tematica = $1", apenasAtivos, area)
}

func (r *postgresRepository) GetBySituacao(ctx context.Context, situacao projeto.Situacao, apenasAtivos bool) ([]projeto.Projeto, error) {
	return r.list(ctx, "situacao = $1", apenasAtivos, situacao)
}

func (r *postgresRepository) GetByAutor(ctx context.Context, autorID int64, apenasAtivos bool) ([]projeto.Projeto, error) {
	return r.list(ctx,
		"id IN (SELECT projeto_id FROM projeto_autores WHERE autor_id = $1)",
		apenasAtivos, autorID)
}

func (r *postgresRepository) GetByPremio(ctx context.Context, premioID int64, apenasAtivos bool) ([]projeto.Projeto, error) {
	return r.list(ctx, "premio_id = $1", apenasAtivos, premioID)
}

func (r *postgresRepository) GetByAvaliador(ctx context.Context, avaliadorID int64, apenasAtivos bool) ([]projeto.Projeto, error) {
	return r.list(ctx, "avaliador_id = $1", apenasAtivos, avaliadorID)
}

func (r *postgresRepository) list(ctx context.Context, filter string, apenasAtivos bool, args ...interface{}) ([]projeto.Projeto, error) {
	conditions := []string{}
	if filter != "" {
		conditions = append(conditions, filter)
	}
	if apenasAtivos {
		conditions = append(conditions, "status = TRUE")
	}

	query := `SELECT ` + projetoColumns + ` FROM projetos`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projetos: %w", err)
	}
	defer rows.Close()

	projetos := []projeto.Projeto{}
	for rows.Next() {
		var p projeto.Projeto
		err := rows.Scan(&p.ID, &p.Titulo, &p.AreaTematica, &p.Resumo, &p.Situacao,
			&p.Nota, &p.ParecerDescritivo, &p.PremioID, &p.AvaliadorID, &p.Status, &p.DataCadastro)
		if err != nil {
			return nil, fmt.Errorf("failed to scan projeto: %w", err)
		}
		projetos = append(projetos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRelations(ctx, projetos); err != nil {
		return nil, err
	}
	return projetos, nil
}

// attachRelations loads autores, premio and avaliador for a batch of
// projects with one query per relation.
func (r *postgresRepository) attachRelations(ctx context.Context, projetos []projeto.Projeto) error {
	if len(projetos) == 0 {
		return nil
	}

	projetoIDs := make([]int64, 0, len(projetos))
	premioIDs := make([]int64, 0, len(projetos))
	avaliadorIDs := make([]int64, 0, len(projetos))
	for _, p := range projetos {
		projetoIDs = append(projetoIDs, p.ID)
		premioIDs = append(premioIDs, p.PremioID)
		if p.AvaliadorID != nil {
			avaliadorIDs = append(avaliadorIDs, *p.AvaliadorID)
		}
	}

	autoresPorProjeto, err := r.loadAutores(ctx, projetoIDs)
	if err != nil {
		return err
	}

	premios, err := r.loadPremios(ctx, premioIDs)
	if err != nil {
		return err
	}

	avaliadores, err := r.loadAvaliadores(ctx, avaliadorIDs)
	if err != nil {
		return err
	}

	for i := range projetos {
		p := &projetos[i]
		p.Autores = autoresPorProjeto[p.ID]
		if p.Autores == nil {
			p.Autores = []autor.Autor{}
		}
		if pr, ok := premios[p.PremioID]; ok {
			premioCopy := pr
			p.Premio = &premioCopy
		}
		if p.AvaliadorID != nil {
			if av, ok := avaliadores[*p.AvaliadorID]; ok {
				avaliadorCopy := av
				p.Avaliador = &avaliadorCopy
			}
		}
	}
	return nil
}

func (r *postgresRepository) loadAutores(ctx context.Context, projetoIDs []int64) (map[int64][]autor.Autor, error) {
	query := `
        SELECT pa.projeto_id, a.id, a.nome, a.cpf, a.email, a.status
        FROM projeto_autores pa
        JOIN autores a ON a.id = pa.autor_id
        WHERE pa.projeto_id = ANY($1)
        ORDER BY a.id`

	rows, err := r.pool.Query(ctx, query, projetoIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load autores of projetos: %w", err)
	}
	defer rows.Close()

	result := map[int64][]autor.Autor{}
	for rows.Next() {
		var projetoID int64
		var a autor.Autor
		if err := rows.Scan(&projetoID, &a.ID, &a.Nome, &a.CPF, &a.Email, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan autor of projeto: %w", err)
		}
		result[projetoID] = append(result[projetoID], a)
	}
	return result, rows.Err()
}

func (r *postgresRepository) loadPremios(ctx context.Context, premioIDs []int64) (map[int64]premio.Premio, error) {
	query := `
        SELECT id, nome, ano_edicao, data_inicio, data_fim, status
        FROM premios
        WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, premioIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load premios of projetos: %w", err)
	}
	defer rows.Close()

	result := map[int64]premio.Premio{}
	for rows.Next() {
		var p premio.Premio
		if err := rows.Scan(&p.ID, &p.Nome, &p.AnoEdicao, &p.DataInicio, &p.DataFim, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan premio of projeto: %w", err)
		}
		result[p.ID] = p
	}
	return result, rows.Err()
}

func (r *postgresRepository) loadAvaliadores(ctx context.Context, avaliadorIDs []int64) (map[int64]avaliador.Avaliador, error) {
	if len(avaliadorIDs) == 0 {
		return map[int64]avaliador.Avaliador{}, nil
	}

	query := `
        SELECT id, nome, cpf, email, status
        FROM avaliadores
        WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, avaliadorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load avaliadores of projetos: %w", err)
	}
	defer rows.Close()

	result := map[int64]avaliador.Avaliador{}
	for rows.Next() {
		var a avaliador.Avaliador
		if err := rows.Scan(&a.ID, &a.Nome, &a.CPF, &a.Email, &a.Status); err != nil {
			return nil, fmt.Errorf("failed to scan avaliador of projeto: %w", err)
		}
		result[a.ID] = a
	}
	return result, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *projeto.Projeto, autorIDs []int64) (*projeto.Projeto, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
            UPDATE projetos
            SET titulo = $2, area_tematica = $3, resumo = $4, situacao = $5,
                nota = $6, parecer_descritivo = $7, premio_id = $8,
                avaliador_id = $9, status = $10
            WHERE id = $1`

		tag, err := tx.Exec(ctx, query,
			p.ID, p.Titulo, p.AreaTematica, p.Resumo, p.Situacao,
			p.Nota, p.ParecerDescritivo, p.PremioID, p.AvaliadorID, p.Status)
		if err != nil {
			return translatePgError(err, "atualizar projeto")
		}
		if tag.RowsAffected() == 0 {
			return projeto.ErrProjetoNotFound
		}

		if autorIDs == nil {
			return nil
		}

		// Full replace of the author set.
		if _, err := tx.Exec(ctx, `DELETE FROM projeto_autores WHERE projeto_id = $1`, p.ID); err != nil {
			return fmt.Errorf("failed to clear autores of projeto: %w", err)
		}
		for _, autorID := range autorIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO projeto_autores (projeto_id, autor_id) VALUES ($1, $2)`,
				p.ID, autorID)
			if err != nil {
				return translatePgError(err, "vincular autor")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = r.cache.Delete(ctx, projetoCacheKey(p.ID))
	return r.reload(ctx, p.ID)
}

func (r *postgresRepository) Evaluate(ctx context.Context, id int64, nota float64, parecer string, situacao projeto.Situacao) (*projeto.Projeto, error) {
	query := `
        UPDATE projetos
        SET nota = $2, parecer_descritivo = $3, situacao = $4
        WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, nota, parecer, situacao)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate projeto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, projeto.ErrProjetoNotFound
	}

	_ = r.cache.Delete(ctx, projetoCacheKey(id))
	return r.reload(ctx, id)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE projetos SET status = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to inactivate projeto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return projeto.ErrProjetoNotFound
	}

	_ = r.cache.Delete(ctx, projetoCacheKey(id))
	return nil
}

func (r *postgresRepository) AddAutor(ctx context.Context, projetoID, autorID int64) (*projeto.Projeto, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projeto_autores (projeto_id, autor_id) VALUES ($1, $2)`,
		projetoID, autorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, projeto.ErrAutorJaVinculado
		}
		return nil, translatePgError(err, "vincular autor")
	}

	_ = r.cache.Delete(ctx, projetoCacheKey(projetoID))
	return r.reload(ctx, projetoID)
}

func (r *postgresRepository) RemoveAutor(ctx context.Context, projetoID, autorID int64) (*projeto.Projeto, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM projeto_autores WHERE projeto_id = $1 AND autor_id = $2`,
		projetoID, autorID)
	if err != nil {
		return nil, fmt.Errorf("failed to desvincular autor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, projeto.ErrAutorNaoVinculado
	}

	_ = r.cache.Delete(ctx, projetoCacheKey(projetoID))
	return r.reload(ctx, projetoID)
}

func (r *postgresRepository) CountBySituacaoAndPremio(ctx context.Context, premioID int64, situacao projeto.Situacao) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projetos WHERE premio_id = $1 AND situacao = $2 AND status = TRUE`,
		premioID, situacao,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projetos by situacao: %w", err)
	}
	return count, nil
}

// reload fetches the project with fresh relations, bypassing the cache.
func (r *postgresRepository) reload(ctx context.Context, id int64) (*projeto.Projeto, error) {
	query := `SELECT ` + projetoColumns + ` FROM projetos WHERE id = $1`

	p, err := scanProjeto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, projeto.ErrProjetoNotFound
		}
		return nil, fmt.Errorf("failed to reload projeto: %w", err)
	}

	projetos := []projeto.Projeto{*p}
	if err := r.attachRelations(ctx, projetos); err != nil {
		return nil, err
	}
	return &projetos[0], nil
}

func translatePgError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return projeto.ErrTituloPremioJaCadastrado
		case "23503":
			switch {
			case strings.Contains(pgErr.ConstraintName, "premio"):
				return projeto.ErrPremioInvalido
			case strings.Contains(pgErr.ConstraintName, "avaliador"):
				return projeto.ErrAvaliadorInvalido
			case strings.Contains(pgErr.ConstraintName, "autor"):
				return projeto.ErrAutorInvalido
			}
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

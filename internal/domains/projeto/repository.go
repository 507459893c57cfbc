package projeto

import "context"

// Repository defines data access for the Projeto entity. All reads
// return projects with autores, premio and avaliador loaded.
type Repository interface {
	// Create inserts the project and its author links in one
	// transaction. Errors: ErrTituloPremioJaCadastrado,
	// ErrPremioInvalido, ErrAvaliadorInvalido, ErrAutorInvalido on
	// constraint violations.
	Create(ctx context.Context, p *Projeto, autorIDs []int64) (*Projeto, error)

	// GetByID returns the project regardless of status.
	// Errors: ErrProjetoNotFound.
	GetByID(ctx context.Context, id int64) (*Projeto, error)

	// FindByTituloAndPremio matches active and inactive projects alike
	// and returns (nil, nil) when no project carries the pair.
	FindByTituloAndPremio(ctx context.Context, titulo string, premioID int64) (*Projeto, error)

	// GetAll lists projects; apenasAtivos restricts to status = TRUE.
	GetAll(ctx context.Context, apenasAtivos bool) ([]Projeto, error)

	GetByArea(ctx context.Context, area AreaTematica, apenasAtivos bool) ([]Projeto, error)
	GetBySituacao(ctx context.Context, situacao Situacao, apenasAtivos bool) ([]Projeto, error)
	GetByAutor(ctx context.Context, autorID int64, apenasAtivos bool) ([]Projeto, error)
	GetByPremio(ctx context.Context, premioID int64, apenasAtivos bool) ([]Projeto, error)
	GetByAvaliador(ctx context.Context, avaliadorID int64, apenasAtivos bool) ([]Projeto, error)

	// Update persists the project fields; a non-nil autorIDs replaces
	// the author set inside the same transaction.
	Update(ctx context.Context, p *Projeto, autorIDs []int64) (*Projeto, error)

	// Evaluate persists nota, parecer and situacao only.
	Evaluate(ctx context.Context, id int64, nota float64, parecer string, situacao Situacao) (*Projeto, error)

	// Delete soft-deletes the project. No cascade.
	Delete(ctx context.Context, id int64) error

	// AddAutor links an author. Errors: ErrAutorJaVinculado.
	AddAutor(ctx context.Context, projetoID, autorID int64) (*Projeto, error)

	// RemoveAutor unlinks an author. Errors: ErrAutorNaoVinculado.
	RemoveAutor(ctx context.Context, projetoID, autorID int64) (*Projeto, error)

	// CountBySituacaoAndPremio counts active projects of a prize in a
	// given stage.
	CountBySituacaoAndPremio(ctx context.Context, premioID int64, situacao Situacao) (int64, error)
}

package premio

import "context"

// Repository defines data access for the Premio entity.
type Repository interface {
	Create(ctx context.Context, p *Premio) (*Premio, error)

	// GetByID returns the prize regardless of status.
	// Errors: ErrPremioNotFound.
	GetByID(ctx context.Context, id int64) (*Premio, error)

	// FindByNomeAndAno matches active and inactive prizes alike and
	// returns (nil, nil) when no prize carries the pair.
	FindByNomeAndAno(ctx context.Context, nome string, anoEdicao int) (*Premio, error)

	// GetAll lists prizes; apenasAtivos restricts to status = TRUE.
	GetAll(ctx context.Context, apenasAtivos bool) ([]Premio, error)

	// GetByAno lists active prizes of an edition year.
	GetByAno(ctx context.Context, anoEdicao int) ([]Premio, error)

	Update(ctx context.Context, p *Premio) (*Premio, error)

	// Delete soft-deletes the prize.
	Delete(ctx context.Context, id int64) error

	// GetProjetos lists the prize's active projects.
	GetProjetos(ctx context.Context, premioID int64) ([]ProjetoResumo, error)

	// CountProjetos counts the prize's active projects.
	CountProjetos(ctx context.Context, premioID int64) (int64, error)
}

package avaliador

import "context"

// Repository defines data access for the Avaliador entity.
type Repository interface {
	Create(ctx context.Context, a *Avaliador) (*Avaliador, error)

	// GetByID returns the evaluator regardless of status.
	// Errors: ErrAvaliadorNotFound.
	GetByID(ctx context.Context, id int64) (*Avaliador, error)

	// FindByCPF returns (nil, nil) when no evaluator carries the CPF.
	FindByCPF(ctx context.Context, cpf string) (*Avaliador, error)

	// FindByEmail returns (nil, nil) when no evaluator carries the email.
	FindByEmail(ctx context.Context, email string) (*Avaliador, error)

	// GetAll lists active evaluators.
	GetAll(ctx context.Context) ([]Avaliador, error)

	Update(ctx context.Context, a *Avaliador) (*Avaliador, error)

	// Delete soft-deletes the evaluator. Assigned projects keep their
	// status and their avaliador_id.
	Delete(ctx context.Context, id int64) error

	// GetProjetos lists the evaluator's active projects.
	GetProjetos(ctx context.Context, avaliadorID int64) ([]ProjetoResumo, error)

	// CountProjetos counts the evaluator's active projects.
	CountProjetos(ctx context.Context, avaliadorID int64) (int64, error)

	// MediaNotas averages nota over the evaluator's projects; nil when none.
	MediaNotas(ctx context.Context, avaliadorID int64) (*float64, error)
}

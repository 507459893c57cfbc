package autor

import "context"

// Repository defines data access for the Autor entity.
type Repository interface {
	// Create inserts a new author.
	// Errors: ErrCPFJaCadastrado / ErrEmailJaCadastrado on unique violation.
	Create(ctx context.Context, a *Autor) (*Autor, error)

	// GetByID returns the author regardless of status.
	// Errors: ErrAutorNotFound.
	GetByID(ctx context.Context, id int64) (*Autor, error)

	// FindByCPF returns (nil, nil) when no author carries the CPF.
	FindByCPF(ctx context.Context, cpf string) (*Autor, error)

	// FindByEmail returns (nil, nil) when no author carries the email.
	FindByEmail(ctx context.Context, email string) (*Autor, error)

	// GetAll lists active authors.
	GetAll(ctx context.Context) ([]Autor, error)

	// Update persists all fields of a.
	Update(ctx context.Context, a *Autor) (*Autor, error)

	// Delete soft-deletes the author and, in the same transaction,
	// inactivates every project linked to it.
	Delete(ctx context.Context, id int64) error

	// GetProjetos lists the author's active projects.
	GetProjetos(ctx context.Context, autorID int64) ([]ProjetoResumo, error)

	// CountProjetos counts the author's active projects.
	CountProjetos(ctx context.Context, autorID int64) (int64, error)

	// MediaNotas averages nota over the author's projects.
	// Returns nil when the author has no projects.
	MediaNotas(ctx context.Context, autorID int64) (*float64, error)
}

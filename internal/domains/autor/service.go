package autor

import "context"

// Service defines business logic for the Autor domain.
type Service interface {
	// Create registers a new author after checking CPF/email uniqueness.
	Create(ctx context.Context, req *CreateAutorRequest) (*Autor, error)

	// GetByID fails with ErrAutorNotFound / ErrAutorInativo.
	GetByID(ctx context.Context, id int64) (*Autor, error)

	// List returns active authors.
	List(ctx context.Context) ([]Autor, error)

	// Update re-validates changed natural keys only.
	Update(ctx context.Context, id int64, req *UpdateAutorRequest) (*Autor, error)

	// Delete soft-deletes the author, cascading inactivation to every
	// project that links it.
	Delete(ctx context.Context, id int64) error

	// GetProjetos lists the author's active projects.
	GetProjetos(ctx context.Context, autorID int64) ([]ProjetoResumo, error)

	// CountProjetos counts the author's active projects.
	CountProjetos(ctx context.Context, autorID int64) (int64, error)

	// MediaNotas returns the average grade of the author's projects,
	// nil when there are none.
	MediaNotas(ctx context.Context, autorID int64) (*float64, error)
}

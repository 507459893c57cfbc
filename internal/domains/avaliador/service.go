package avaliador

import "context"

// Service defines business logic for the Avaliador domain.
type Service interface {
	Create(ctx context.Context, req *CreateAvaliadorRequest) (*Avaliador, error)
	GetByID(ctx context.Context, id int64) (*Avaliador, error)
	List(ctx context.Context) ([]Avaliador, error)
	Update(ctx context.Context, id int64, req *UpdateAvaliadorRequest) (*Avaliador, error)
	Delete(ctx context.Context, id int64) error
	GetProjetos(ctx context.Context, avaliadorID int64) ([]ProjetoResumo, error)
	CountProjetos(ctx context.Context, avaliadorID int64) (int64, error)
	MediaNotas(ctx context.Context, avaliadorID int64) (*float64, error)
}

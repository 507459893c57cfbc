package premio

import "context"

// Service defines business logic for the Premio domain.
type Service interface {
	Create(ctx context.Context, req *CreatePremioRequest) (*Premio, error)
	GetByID(ctx context.Context, id int64) (*Premio, error)
	List(ctx context.Context, apenasAtivos bool) ([]Premio, error)
	GetByAno(ctx context.Context, anoEdicao int) ([]Premio, error)
	Update(ctx context.Context, id int64, req *UpdatePremioRequest) (*Premio, error)
	Delete(ctx context.Context, id int64) error
	GetProjetos(ctx context.Context, premioID int64) ([]ProjetoResumo, error)
	CountProjetos(ctx context.Context, premioID int64) (int64, error)
}

package projeto

import "context"

// Service defines business logic for the Projeto domain.
type Service interface {
	Create(ctx context.Context, req *CreateProjetoRequest) (*Projeto, error)
	GetByID(ctx context.Context, id int64) (*Projeto, error)
	List(ctx context.Context, apenasAtivos bool) ([]Projeto, error)
	GetByArea(ctx context.Context, area string, apenasAtivos bool) ([]Projeto, error)
	GetBySituacao(ctx context.Context, situacao string, apenasAtivos bool) ([]Projeto, error)
	GetByAutor(ctx context.Context, autorID int64, apenasAtivos bool) ([]Projeto, error)
	GetByPremio(ctx context.Context, premioID int64, apenasAtivos bool) ([]Projeto, error)
	GetByAvaliador(ctx context.Context, avaliadorID int64, apenasAtivos bool) ([]Projeto, error)
	Update(ctx context.Context, id int64, req *UpdateProjetoRequest) (*Projeto, error)
	Evaluate(ctx context.Context, id int64, req *EvaluateProjetoRequest) (*Projeto, error)
	Delete(ctx context.Context, id int64) error
	AddAutor(ctx context.Context, projetoID, autorID int64) (*Projeto, error)
	RemoveAutor(ctx context.Context, projetoID, autorID int64) (*Projeto, error)
	CountBySituacaoAndPremio(ctx context.Context, premioID int64, situacao string) (int64, error)
}

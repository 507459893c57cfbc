package service

import (
	"context"

	"premios-backend/internal/domains/premio"
)

// premioService implements premio.Service.
type premioService struct {
	repo premio.Repository
}

func NewPremioService(repo premio.Repository) premio.Service {
	return &premioService{repo: repo}
}

func (s *premioService) Create(ctx context.Context, req *premio.CreatePremioRequest) (*premio.Premio, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.DataFim.After(req.DataInicio) {
		return nil, premio.ErrDatasInvalidas
	}

	existing, err := s.repo.FindByNomeAndAno(ctx, req.Nome, req.AnoEdicao)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, premio.ErrNomeAnoJaCadastrado
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *premioService) GetByID(ctx context.Context, id int64) (*premio.Premio, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Status {
		return nil, premio.ErrPremioInativo
	}
	return p, nil
}

func (s *premioService) List(ctx context.Context, apenasAtivos bool) ([]premio.Premio, error) {
	return s.repo.GetAll(ctx, apenasAtivos)
}

func (s *premioService) GetByAno(ctx context.Context, anoEdicao int) ([]premio.Premio, error) {
	return s.repo.GetByAno(ctx, anoEdicao)
}

func (s *premioService) Update(ctx context.Context, id int64, req *premio.UpdatePremioRequest) (*premio.Premio, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)

	// The window invariant holds over the merged values, so a request
	// changing only one endpoint is still checked against the other.
	if !updated.DataFim.After(updated.DataInicio) {
		return nil, premio.ErrDatasInvalidas
	}

	if updated.Nome != current.Nome || updated.AnoEdicao != current.AnoEdicao {
		conflict, err := s.repo.FindByNomeAndAno(ctx, updated.Nome, updated.AnoEdicao)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, premio.ErrNomeAnoJaCadastrado
		}
	}

	return s.repo.Update(ctx, &updated)
}

// Delete soft-deletes the prize, refused while any active project
// still references it.
func (s *premioService) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Status {
		return premio.ErrPremioInativo
	}

	count, err := s.repo.CountProjetos(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return premio.ErrPremioComProjetos
	}

	return s.repo.Delete(ctx, id)
}

func (s *premioService) GetProjetos(ctx context.Context, premioID int64) ([]premio.ProjetoResumo, error) {
	if _, err := s.GetByID(ctx, premioID); err != nil {
		return nil, err
	}
	return s.repo.GetProjetos(ctx, premioID)
}

func (s *premioService) CountProjetos(ctx context.Context, premioID int64) (int64, error) {
	if _, err := s.GetByID(ctx, premioID); err != nil {
		return 0, err
	}
	return s.repo.CountProjetos(ctx, premioID)
}

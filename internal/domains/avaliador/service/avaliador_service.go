package service

import (
	"context"

	"github.com/shopspring/decimal"

	"premios-backend/internal/domains/avaliador"
)

// avaliadorService implements avaliador.Service.
type avaliadorService struct {
	repo avaliador.Repository
}

func NewAvaliadorService(repo avaliador.Repository) avaliador.Service {
	return &avaliadorService{repo: repo}
}

func (s *avaliadorService) Create(ctx context.Context, req *avaliador.CreateAvaliadorRequest) (*avaliador.Avaliador, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByCPF(ctx, req.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, avaliador.ErrCPFJaCadastrado
	}

	existing, err = s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, avaliador.ErrEmailJaCadastrado
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *avaliadorService) GetByID(ctx context.Context, id int64) (*avaliador.Avaliador, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Status {
		return nil, avaliador.ErrAvaliadorInativo
	}
	return a, nil
}

func (s *avaliadorService) List(ctx context.Context) ([]avaliador.Avaliador, error) {
	return s.repo.GetAll(ctx)
}

func (s *avaliadorService) Update(ctx context.Context, id int64, req *avaliador.UpdateAvaliadorRequest) (*avaliador.Avaliador, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CPF != nil && *req.CPF != current.CPF {
		conflict, err := s.repo.FindByCPF(ctx, *req.CPF)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, avaliador.ErrCPFJaCadastrado
		}
	}

	if req.Email != nil && *req.Email != current.Email {
		conflict, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, avaliador.ErrEmailJaCadastrado
		}
	}

	updated := *current
	req.ApplyToEntity(&updated)

	return s.repo.Update(ctx, &updated)
}

// Delete soft-deletes the evaluator only; assigned projects are not
// touched (unlike the autor cascade).
func (s *avaliadorService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !a.Status {
		return avaliador.ErrAvaliadorInativo
	}

	return s.repo.Delete(ctx, id)
}

func (s *avaliadorService) GetProjetos(ctx context.Context, avaliadorID int64) ([]avaliador.ProjetoResumo, error) {
	if _, err := s.GetByID(ctx, avaliadorID); err != nil {
		return nil, err
	}
	return s.repo.GetProjetos(ctx, avaliadorID)
}

func (s *avaliadorService) CountProjetos(ctx context.Context, avaliadorID int64) (int64, error) {
	if _, err := s.GetByID(ctx, avaliadorID); err != nil {
		return 0, err
	}
	return s.repo.CountProjetos(ctx, avaliadorID)
}

func (s *avaliadorService) MediaNotas(ctx context.Context, avaliadorID int64) (*float64, error) {
	if _, err := s.GetByID(ctx, avaliadorID); err != nil {
		return nil, err
	}

	media, err := s.repo.MediaNotas(ctx, avaliadorID)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, nil
	}

	rounded, _ := decimal.NewFromFloat(*media).Round(2).Float64()
	return &rounded, nil
}

package service

import (
	"context"

	"github.com/shopspring/decimal"

	"premios-backend/internal/domains/autor"
)

// autorService implements autor.Service.
type autorService struct {
	repo autor.Repository
}

func NewAutorService(repo autor.Repository) autor.Service {
	return &autorService{repo: repo}
}

func (s *autorService) Create(ctx context.Context, req *autor.CreateAutorRequest) (*autor.Autor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByCPF(ctx, req.CPF)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autor.ErrCPFJaCadastrado
	}

	existing, err = s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autor.ErrEmailJaCadastrado
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *autorService) GetByID(ctx context.Context, id int64) (*autor.Autor, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Status {
		return nil, autor.ErrAutorInativo
	}
	return a, nil
}

func (s *autorService) List(ctx context.Context) ([]autor.Autor, error) {
	return s.repo.GetAll(ctx)
}

func (s *autorService) Update(ctx context.Context, id int64, req *autor.UpdateAutorRequest) (*autor.Autor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Natural keys are re-checked only when they actually change.
	if req.CPF != nil && *req.CPF != current.CPF {
		conflict, err := s.repo.FindByCPF(ctx, *req.CPF)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, autor.ErrCPFJaCadastrado
		}
	}

	if req.Email != nil && *req.Email != current.Email {
		conflict, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, autor.ErrEmailJaCadastrado
		}
	}

	updated := *current
	req.ApplyToEntity(&updated)

	return s.repo.Update(ctx, &updated)
}

func (s *autorService) Delete(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !a.Status {
		return autor.ErrAutorInativo
	}

	return s.repo.Delete(ctx, id)
}

func (s *autorService) GetProjetos(ctx context.Context, autorID int64) ([]autor.ProjetoResumo, error) {
	if _, err := s.GetByID(ctx, autorID); err != nil {
		return nil, err
	}
	return s.repo.GetProjetos(ctx, autorID)
}

func (s *autorService) CountProjetos(ctx context.Context, autorID int64) (int64, error) {
	if _, err := s.GetByID(ctx, autorID); err != nil {
		return 0, err
	}
	return s.repo.CountProjetos(ctx, autorID)
}

func (s *autorService) MediaNotas(ctx context.Context, autorID int64) (*float64, error) {
	if _, err := s.GetByID(ctx, autorID); err != nil {
		return nil, err
	}

	media, err := s.repo.MediaNotas(ctx, autorID)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, nil
	}

	rounded, _ := decimal.NewFromFloat(*media).Round(2).Float64()
	return &rounded, nil
}

package service

import (
	"context"
	"errors"

	"premios-backend/internal/domains/autor"
	"premios-backend/internal/domains/avaliador"
	"premios-backend/internal/domains/premio"
	"premios-backend/internal/domains/projeto"
	"premios-backend/pkg/logger"
)

// projetoService implements projeto.Service. Cross-entity rules pull
// from the other domains' repositories.
type projetoService struct {
	repo          projeto.Repository
	autorRepo     autor.Repository
	premioRepo    premio.Repository
	avaliadorRepo avaliador.Repository
}

func NewProjetoService(
	repo projeto.Repository,
	autorRepo autor.Repository,
	premioRepo premio.Repository,
	avaliadorRepo avaliador.Repository,
) projeto.Service {
	return &projetoService{
		repo:          repo,
		autorRepo:     autorRepo,
		premioRepo:    premioRepo,
		avaliadorRepo: avaliadorRepo,
	}
}

func (s *projetoService) Create(ctx context.Context, req *projeto.CreateProjetoRequest) (*projeto.Projeto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !projeto.AreaTematica(req.AreaTematica).IsValid() {
		return nil, projeto.ErrAreaTematicaInvalida
	}

	autorIDs := dedup(req.AutorIDs)
	if len(autorIDs) == 0 {
		return nil, projeto.ErrSemAutores
	}

	if err := s.checkPremioAtivo(ctx, req.PremioID); err != nil {
		return nil, err
	}
	if req.AvaliadorID != nil {
		if err := s.checkAvaliadorAtivo(ctx, *req.AvaliadorID); err != nil {
			return nil, err
		}
	}
	if err := s.checkAutoresAtivos(ctx, autorIDs); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByTituloAndPremio(ctx, req.Titulo, req.PremioID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, projeto.ErrTituloPremioJaCadastrado
	}

	return s.repo.Create(ctx, req.ToEntity(), autorIDs)
}

func (s *projetoService) GetByID(ctx context.Context, id int64) (*projeto.Projeto, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.Status {
		return nil, projeto.ErrProjetoInativo
	}
	return p, nil
}

func (s *projetoService) List(ctx context.Context, apenasAtivos bool) ([]projeto.Projeto, error) {
	return s.repo.GetAll(ctx, apenasAtivos)
}

func (s *projetoService) GetByArea(ctx context.Context, area string, apenasAtivos bool) ([]projeto.Projeto, error) {
	a := projeto.AreaTematica(area)
	if !a.IsValid() {
		return nil, projeto.ErrAreaTematicaInvalida
	}
	return s.repo.GetByArea(ctx, a, apenasAtivos)
}

func (s *projetoService) GetBySituacao(ctx context.Context, situacao string, apenasAtivos bool) ([]projeto.Projeto, error) {
	sit := projeto.Situacao(situacao)
	if !sit.IsValid() {
		return nil, projeto.ErrSituacaoInvalida
	}
	return s.repo.GetBySituacao(ctx, sit, apenasAtivos)
}

func (s *projetoService) GetByAutor(ctx context.Context, autorID int64, apenasAtivos bool) ([]projeto.Projeto, error) {
	return s.repo.GetByAutor(ctx, autorID, apenasAtivos)
}

func (s *projetoService) GetByPremio(ctx context.Context, premioID int64, apenasAtivos bool) ([]projeto.Projeto, error) {
	return s.repo.GetByPremio(ctx, premioID, apenasAtivos)
}

func (s *projetoService) GetByAvaliador(ctx context.Context, avaliadorID int64, apenasAtivos bool) ([]projeto.Projeto, error) {
	return s.repo.GetByAvaliador(ctx, avaliadorID, apenasAtivos)
}

func (s *projetoService) Update(ctx context.Context, id int64, req *projeto.UpdateProjetoRequest) (*projeto.Projeto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.AreaTematica != nil && !projeto.AreaTematica(*req.AreaTematica).IsValid() {
		return nil, projeto.ErrAreaTematicaInvalida
	}
	if req.Situacao != nil && !projeto.Situacao(*req.Situacao).IsValid() {
		return nil, projeto.ErrSituacaoInvalida
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)

	if updated.PremioID != current.PremioID {
		if err := s.checkPremioAtivo(ctx, updated.PremioID); err != nil {
			return nil, err
		}
	}
	if req.AvaliadorID != nil {
		if err := s.checkAvaliadorAtivo(ctx, *req.AvaliadorID); err != nil {
			return nil, err
		}
	}

	var autorIDs []int64
	if req.AutorIDs != nil {
		autorIDs = dedup(req.AutorIDs)
		if len(autorIDs) == 0 {
			return nil, projeto.ErrSemAutores
		}
		if err := s.checkAutoresAtivos(ctx, autorIDs); err != nil {
			return nil, err
		}
	}

	if updated.Titulo != current.Titulo || updated.PremioID != current.PremioID {
		conflict, err := s.repo.FindByTituloAndPremio(ctx, updated.Titulo, updated.PremioID)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, projeto.ErrTituloPremioJaCadastrado
		}
	}

	return s.repo.Update(ctx, &updated, autorIDs)
}

func (s *projetoService) Evaluate(ctx context.Context, id int64, req *projeto.EvaluateProjetoRequest) (*projeto.Projeto, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	nota := *req.Nota
	if nota < 0 || nota > 10 {
		return nil, projeto.ErrNotaInvalida
	}

	situacao := projeto.Situacao(req.Situacao)
	if !situacao.IsEvaluationOutcome() {
		return nil, projeto.ErrSituacaoInvalida
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Situacao.IsPreEvaluation() {
		logger.Warn("avaliando projeto fora do estágio esperado", map[string]interface{}{
			"projeto_id":      id,
			"situacao_atual":  string(current.Situacao),
			"situacao_pedida": string(situacao),
		})
	}

	return s.repo.Evaluate(ctx, id, nota, req.ParecerDescritivo, situacao)
}

func (s *projetoService) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Status {
		return projeto.ErrProjetoInativo
	}

	return s.repo.Delete(ctx, id)
}

func (s *projetoService) AddAutor(ctx context.Context, projetoID, autorID int64) (*projeto.Projeto, error) {
	current, err := s.GetByID(ctx, projetoID)
	if err != nil {
		return nil, err
	}
	if current.HasAutor(autorID) {
		return nil, projeto.ErrAutorJaVinculado
	}

	if err := s.checkAutoresAtivos(ctx, []int64{autorID}); err != nil {
		return nil, err
	}

	return s.repo.AddAutor(ctx, projetoID, autorID)
}

func (s *projetoService) RemoveAutor(ctx context.Context, projetoID, autorID int64) (*projeto.Projeto, error) {
	current, err := s.GetByID(ctx, projetoID)
	if err != nil {
		return nil, err
	}
	if !current.HasAutor(autorID) {
		return nil, projeto.ErrAutorNaoVinculado
	}
	if len(current.Autores) <= 1 {
		return nil, projeto.ErrUltimoAutor
	}

	return s.repo.RemoveAutor(ctx, projetoID, autorID)
}

func (s *projetoService) CountBySituacaoAndPremio(ctx context.Context, premioID int64, situacao string) (int64, error) {
	sit := projeto.Situacao(situacao)
	if !sit.IsValid() {
		return 0, projeto.ErrSituacaoInvalida
	}

	if err := s.checkPremioAtivo(ctx, premioID); err != nil {
		return 0, err
	}

	return s.repo.CountBySituacaoAndPremio(ctx, premioID, sit)
}

func (s *projetoService) checkPremioAtivo(ctx context.Context, premioID int64) error {
	p, err := s.premioRepo.GetByID(ctx, premioID)
	if err != nil {
		if errors.Is(err, premio.ErrPremioNotFound) {
			return projeto.ErrPremioInvalido
		}
		return err
	}
	if !p.Status {
		return projeto.ErrPremioInvalido
	}
	return nil
}

func (s *projetoService) checkAvaliadorAtivo(ctx context.Context, avaliadorID int64) error {
	a, err := s.avaliadorRepo.GetByID(ctx, avaliadorID)
	if err != nil {
		if errors.Is(err, avaliador.ErrAvaliadorNotFound) {
			return projeto.ErrAvaliadorInvalido
		}
		return err
	}
	if !a.Status {
		return projeto.ErrAvaliadorInvalido
	}
	return nil
}

func (s *projetoService) checkAutoresAtivos(ctx context.Context, autorIDs []int64) error {
	for _, id := range autorIDs {
		a, err := s.autorRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, autor.ErrAutorNotFound) {
				return projeto.ErrAutorInvalido
			}
			return err
		}
		if !a.Status {
			return projeto.ErrAutorInvalido
		}
	}
	return nil
}

func dedup(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

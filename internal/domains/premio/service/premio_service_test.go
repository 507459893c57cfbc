package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premios-backend/internal/domains/premio"
)

type fakePremioRepo struct {
	premios  map[int64]*premio.Premio
	projetos map[int64]int64 // active project count per prize
	nextID   int64
}

func newFakePremioRepo() *fakePremioRepo {
	return &fakePremioRepo{
		premios:  map[int64]*premio.Premio{},
		projetos: map[int64]int64{},
		nextID:   1,
	}
}

func (f *fakePremioRepo) seed(p premio.Premio) *premio.Premio {
	p.ID = f.nextID
	f.nextID++
	f.premios[p.ID] = &p
	return &p
}

func (f *fakePremioRepo) Create(_ context.Context, p *premio.Premio) (*premio.Premio, error) {
	return f.seed(*p), nil
}

func (f *fakePremioRepo) GetByID(_ context.Context, id int64) (*premio.Premio, error) {
	p, ok := f.premios[id]
	if !ok {
		return nil, premio.ErrPremioNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakePremioRepo) FindByNomeAndAno(_ context.Context, nome string, ano int) (*premio.Premio, error) {
	for _, p := range f.premios {
		if p.Nome == nome && p.AnoEdicao == ano {
			out := *p
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakePremioRepo) GetAll(_ context.Context, apenasAtivos bool) ([]premio.Premio, error) {
	out := []premio.Premio{}
	for _, p := range f.premios {
		if !apenasAtivos || p.Status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePremioRepo) GetByAno(_ context.Context, ano int) ([]premio.Premio, error) {
	out := []premio.Premio{}
	for _, p := range f.premios {
		if p.AnoEdicao == ano && p.Status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePremioRepo) Update(_ context.Context, p *premio.Premio) (*premio.Premio, error) {
	if _, ok := f.premios[p.ID]; !ok {
		return nil, premio.ErrPremioNotFound
	}
	stored := *p
	f.premios[p.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakePremioRepo) Delete(_ context.Context, id int64) error {
	p, ok := f.premios[id]
	if !ok {
		return premio.ErrPremioNotFound
	}
	p.Status = false
	return nil
}

func (f *fakePremioRepo) GetProjetos(_ context.Context, premioID int64) ([]premio.ProjetoResumo, error) {
	return []premio.ProjetoResumo{}, nil
}

func (f *fakePremioRepo) CountProjetos(_ context.Context, premioID int64) (int64, error) {
	return f.projetos[premioID], nil
}

func validPremioRequest() *premio.CreatePremioRequest {
	return &premio.CreatePremioRequest{
		Nome:       "Prêmio Inovação",
		AnoEdicao:  2024,
		DataInicio: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DataFim:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestPremioService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates prize with valid window", func(t *testing.T) {
		svc := NewPremioService(newFakePremioRepo())

		created, err := svc.Create(ctx, validPremioRequest())
		require.NoError(t, err)
		assert.True(t, created.Status)
	})

	t.Run("rejects dataFim equal to dataInicio", func(t *testing.T) {
		svc := NewPremioService(newFakePremioRepo())

		req := validPremioRequest()
		req.DataFim = req.DataInicio
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, premio.ErrDatasInvalidas)
	})

	t.Run("rejects dataFim before dataInicio", func(t *testing.T) {
		svc := NewPremioService(newFakePremioRepo())

		req := validPremioRequest()
		req.DataFim = req.DataInicio.AddDate(0, -1, 0)
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, premio.ErrDatasInvalidas)
	})

	t.Run("rejects duplicate nome and ano", func(t *testing.T) {
		repo := newFakePremioRepo()
		repo.seed(premio.Premio{Nome: "Prêmio Inovação", AnoEdicao: 2024, Status: false})
		svc := NewPremioService(repo)

		// Inactive records still hold the pair.
		_, err := svc.Create(ctx, validPremioRequest())
		assert.ErrorIs(t, err, premio.ErrNomeAnoJaCadastrado)
	})
}

func TestPremioService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("checks window over merged values", func(t *testing.T) {
		repo := newFakePremioRepo()
		p := repo.seed(premio.Premio{
			Nome:       "Prêmio",
			AnoEdicao:  2024,
			DataInicio: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			DataFim:    time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			Status:     true,
		})
		svc := NewPremioService(repo)

		// Moving only dataFim before the stored dataInicio must fail.
		fim := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.Update(ctx, p.ID, &premio.UpdatePremioRequest{DataFim: &fim})
		assert.ErrorIs(t, err, premio.ErrDatasInvalidas)
	})

	t.Run("allows widening the window", func(t *testing.T) {
		repo := newFakePremioRepo()
		p := repo.seed(premio.Premio{
			Nome:       "Prêmio",
			AnoEdicao:  2024,
			DataInicio: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			DataFim:    time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			Status:     true,
		})
		svc := NewPremioService(repo)

		fim := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		updated, err := svc.Update(ctx, p.ID, &premio.UpdatePremioRequest{DataFim: &fim})
		require.NoError(t, err)
		assert.Equal(t, fim, updated.DataFim)
	})
}

func TestPremioService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while active projects remain", func(t *testing.T) {
		repo := newFakePremioRepo()
		p := repo.seed(premio.Premio{Nome: "Prêmio", AnoEdicao: 2024, Status: true})
		repo.projetos[p.ID] = 2
		svc := NewPremioService(repo)

		err := svc.Delete(ctx, p.ID)
		assert.ErrorIs(t, err, premio.ErrPremioComProjetos)
		assert.True(t, repo.premios[p.ID].Status)
	})

	t.Run("succeeds with zero active projects", func(t *testing.T) {
		repo := newFakePremioRepo()
		p := repo.seed(premio.Premio{Nome: "Prêmio", AnoEdicao: 2024, Status: true})
		svc := NewPremioService(repo)

		require.NoError(t, svc.Delete(ctx, p.ID))
		assert.False(t, repo.premios[p.ID].Status)
	})

	t.Run("rejects already inactive prize", func(t *testing.T) {
		repo := newFakePremioRepo()
		p := repo.seed(premio.Premio{Nome: "Prêmio", AnoEdicao: 2024, Status: false})
		svc := NewPremioService(repo)

		err := svc.Delete(ctx, p.ID)
		assert.ErrorIs(t, err, premio.ErrPremioInativo)
	})
}

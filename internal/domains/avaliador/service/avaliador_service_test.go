package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premios-backend/internal/domains/avaliador"
)

type fakeAvaliadorRepo struct {
	avaliadores map[int64]*avaliador.Avaliador
	projetos    map[int64][]avaliador.ProjetoResumo
	medias      map[int64]*float64
	nextID      int64
}

func newFakeAvaliadorRepo() *fakeAvaliadorRepo {
	return &fakeAvaliadorRepo{
		avaliadores: map[int64]*avaliador.Avaliador{},
		projetos:    map[int64][]avaliador.ProjetoResumo{},
		medias:      map[int64]*float64{},
		nextID:      1,
	}
}

func (f *fakeAvaliadorRepo) seed(a avaliador.Avaliador) *avaliador.Avaliador {
	a.ID = f.nextID
	f.nextID++
	f.avaliadores[a.ID] = &a
	return &a
}

func (f *fakeAvaliadorRepo) Create(_ context.Context, a *avaliador.Avaliador) (*avaliador.Avaliador, error) {
	return f.seed(*a), nil
}

func (f *fakeAvaliadorRepo) GetByID(_ context.Context, id int64) (*avaliador.Avaliador, error) {
	a, ok := f.avaliadores[id]
	if !ok {
		return nil, avaliador.ErrAvaliadorNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeAvaliadorRepo) FindByCPF(_ context.Context, cpf string) (*avaliador.Avaliador, error) {
	for _, a := range f.avaliadores {
		if a.CPF == cpf {
			out := *a
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeAvaliadorRepo) FindByEmail(_ context.Context, email string) (*avaliador.Avaliador, error) {
	for _, a := range f.avaliadores {
		if a.Email == email {
			out := *a
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeAvaliadorRepo) GetAll(_ context.Context) ([]avaliador.Avaliador, error) {
	out := []avaliador.Avaliador{}
	for _, a := range f.avaliadores {
		if a.Status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAvaliadorRepo) Update(_ context.Context, a *avaliador.Avaliador) (*avaliador.Avaliador, error) {
	if _, ok := f.avaliadores[a.ID]; !ok {
		return nil, avaliador.ErrAvaliadorNotFound
	}
	stored := *a
	f.avaliadores[a.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeAvaliadorRepo) Delete(_ context.Context, id int64) error {
	a, ok := f.avaliadores[id]
	if !ok {
		return avaliador.ErrAvaliadorNotFound
	}
	a.Status = false
	return nil
}

func (f *fakeAvaliadorRepo) GetProjetos(_ context.Context, avaliadorID int64) ([]avaliador.ProjetoResumo, error) {
	return f.projetos[avaliadorID], nil
}

func (f *fakeAvaliadorRepo) CountProjetos(_ context.Context, avaliadorID int64) (int64, error) {
	return int64(len(f.projetos[avaliadorID])), nil
}

func (f *fakeAvaliadorRepo) MediaNotas(_ context.Context, avaliadorID int64) (*float64, error) {
	return f.medias[avaliadorID], nil
}

func TestAvaliadorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects duplicate cpf", func(t *testing.T) {
		repo := newFakeAvaliadorRepo()
		repo.seed(avaliador.Avaliador{Nome: "Ana", CPF: "12345678901", Email: "ana@example.com", Status: true})
		svc := NewAvaliadorService(repo)

		_, err := svc.Create(ctx, &avaliador.CreateAvaliadorRequest{
			Nome:  "Outra",
			CPF:   "12345678901",
			Email: "outra@example.com",
		})
		assert.ErrorIs(t, err, avaliador.ErrCPFJaCadastrado)
	})

	t.Run("creates active evaluator", func(t *testing.T) {
		svc := NewAvaliadorService(newFakeAvaliadorRepo())

		created, err := svc.Create(ctx, &avaliador.CreateAvaliadorRequest{
			Nome:  "Ana",
			CPF:   "12345678901",
			Email: "ana@example.com",
		})
		require.NoError(t, err)
		assert.True(t, created.Status)
	})
}

func TestAvaliadorService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("does not touch assigned projects", func(t *testing.T) {
		repo := newFakeAvaliadorRepo()
		a := repo.seed(avaliador.Avaliador{Nome: "Ana", CPF: "1", Email: "a@a.com", Status: true})
		repo.projetos[a.ID] = []avaliador.ProjetoResumo{
			{ID: 10, Titulo: "P1", Situacao: "Em Avaliação", Status: true},
		}
		svc := NewAvaliadorService(repo)

		require.NoError(t, svc.Delete(ctx, a.ID))

		assert.False(t, repo.avaliadores[a.ID].Status)
		assert.True(t, repo.projetos[a.ID][0].Status)
	})

	t.Run("rejects already inactive evaluator", func(t *testing.T) {
		repo := newFakeAvaliadorRepo()
		a := repo.seed(avaliador.Avaliador{Nome: "Ana", CPF: "1", Email: "a@a.com", Status: false})
		svc := NewAvaliadorService(repo)

		err := svc.Delete(ctx, a.ID)
		assert.ErrorIs(t, err, avaliador.ErrAvaliadorInativo)
	})
}

func TestAvaliadorService_MediaNotas(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAvaliadorRepo()
	a := repo.seed(avaliador.Avaliador{Nome: "Ana", CPF: "1", Email: "a@a.com", Status: true})
	svc := NewAvaliadorService(repo)

	got, err := svc.MediaNotas(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	media := 8.125
	repo.medias[a.ID] = &media
	got, err = svc.MediaNotas(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 8.13, *got, 0.0001)
}

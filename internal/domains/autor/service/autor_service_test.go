package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"premios-backend/internal/domains/autor"
)

type fakeAutorRepo struct {
	autores map[int64]*autor.Autor
	// projects linked per author, used to observe the delete cascade
	projetos map[int64][]autor.ProjetoResumo
	medias   map[int64]*float64
	nextID   int64
	cascaded []int64
}

func newFakeAutorRepo() *fakeAutorRepo {
	return &fakeAutorRepo{
		autores:  map[int64]*autor.Autor{},
		projetos: map[int64][]autor.ProjetoResumo{},
		medias:   map[int64]*float64{},
		nextID:   1,
	}
}

func (f *fakeAutorRepo) seed(a autor.Autor) *autor.Autor {
	a.ID = f.nextID
	f.nextID++
	f.autores[a.ID] = &a
	return &a
}

func (f *fakeAutorRepo) Create(_ context.Context, a *autor.Autor) (*autor.Autor, error) {
	return f.seed(*a), nil
}

func (f *fakeAutorRepo) GetByID(_ context.Context, id int64) (*autor.Autor, error) {
	a, ok := f.autores[id]
	if !ok {
		return nil, autor.ErrAutorNotFound
	}
	copy := *a
	return &copy, nil
}

func (f *fakeAutorRepo) FindByCPF(_ context.Context, cpf string) (*autor.Autor, error) {
	for _, a := range f.autores {
		if a.CPF == cpf {
			copy := *a
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeAutorRepo) FindByEmail(_ context.Context, email string) (*autor.Autor, error) {
	for _, a := range f.autores {
		if a.Email == email {
			copy := *a
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeAutorRepo) GetAll(_ context.Context) ([]autor.Autor, error) {
	out := []autor.Autor{}
	for _, a := range f.autores {
		if a.Status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAutorRepo) Update(_ context.Context, a *autor.Autor) (*autor.Autor, error) {
	if _, ok := f.autores[a.ID]; !ok {
		return nil, autor.ErrAutorNotFound
	}
	copy := *a
	f.autores[a.ID] = &copy
	result := copy
	return &result, nil
}

func (f *fakeAutorRepo) Delete(_ context.Context, id int64) error {
	a, ok := f.autores[id]
	if !ok {
		return autor.ErrAutorNotFound
	}
	a.Status = false
	f.cascaded = append(f.cascaded, id)
	for i := range f.projetos[id] {
		f.projetos[id][i].Status = false
	}
	return nil
}

func (f *fakeAutorRepo) GetProjetos(_ context.Context, autorID int64) ([]autor.ProjetoResumo, error) {
	out := []autor.ProjetoResumo{}
	for _, p := range f.projetos[autorID] {
		if p.Status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeAutorRepo) CountProjetos(_ context.Context, autorID int64) (int64, error) {
	projetos, _ := f.GetProjetos(context.Background(), autorID)
	return int64(len(projetos)), nil
}

func (f *fakeAutorRepo) MediaNotas(_ context.Context, autorID int64) (*float64, error) {
	return f.medias[autorID], nil
}

func validCreateRequest() *autor.CreateAutorRequest {
	return &autor.CreateAutorRequest{
		Nome:  "Maria Silva",
		CPF:   "12345678901",
		Email: "maria@example.com",
	}
}

func TestAutorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active author", func(t *testing.T) {
		svc := NewAutorService(newFakeAutorRepo())

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.True(t, created.Status)
		assert.NotZero(t, created.ID)
	})

	t.Run("rejects duplicate cpf", func(t *testing.T) {
		repo := newFakeAutorRepo()
		repo.seed(autor.Autor{Nome: "Outro", CPF: "12345678901", Email: "outro@example.com", Status: true})
		svc := NewAutorService(repo)

		_, err := svc.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, autor.ErrCPFJaCadastrado)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeAutorRepo()
		repo.seed(autor.Autor{Nome: "Outro", CPF: "99999999999", Email: "maria@example.com", Status: true})
		svc := NewAutorService(repo)

		_, err := svc.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, autor.ErrEmailJaCadastrado)
	})

	t.Run("rejects invalid email format", func(t *testing.T) {
		svc := NewAutorService(newFakeAutorRepo())

		req := validCreateRequest()
		req.Email = "not-an-email"
		_, err := svc.Create(ctx, req)
		assert.Error(t, err)
	})
}

func TestAutorService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAutorRepo()
	ativo := repo.seed(autor.Autor{Nome: "Ativa", CPF: "1", Email: "a@a.com", Status: true})
	inativo := repo.seed(autor.Autor{Nome: "Inativa", CPF: "2", Email: "b@b.com", Status: false})
	svc := NewAutorService(repo)

	got, err := svc.GetByID(ctx, ativo.ID)
	require.NoError(t, err)
	assert.Equal(t, ativo.ID, got.ID)

	_, err = svc.GetByID(ctx, inativo.ID)
	assert.ErrorIs(t, err, autor.ErrAutorInativo)

	_, err = svc.GetByID(ctx, 999)
	assert.ErrorIs(t, err, autor.ErrAutorNotFound)
}

func TestAutorService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("skips uniqueness check when cpf unchanged", func(t *testing.T) {
		repo := newFakeAutorRepo()
		a := repo.seed(autor.Autor{Nome: "Maria", CPF: "12345678901", Email: "maria@example.com", Status: true})
		svc := NewAutorService(repo)

		nome := "Maria Souza"
		cpf := a.CPF
		updated, err := svc.Update(ctx, a.ID, &autor.UpdateAutorRequest{Nome: &nome, CPF: &cpf})
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", updated.Nome)
	})

	t.Run("rejects cpf taken by another author", func(t *testing.T) {
		repo := newFakeAutorRepo()
		a := repo.seed(autor.Autor{Nome: "Maria", CPF: "11111111111", Email: "m@m.com", Status: true})
		repo.seed(autor.Autor{Nome: "Joana", CPF: "22222222222", Email: "j@j.com", Status: true})
		svc := NewAutorService(repo)

		cpf := "22222222222"
		_, err := svc.Update(ctx, a.ID, &autor.UpdateAutorRequest{CPF: &cpf})
		assert.ErrorIs(t, err, autor.ErrCPFJaCadastrado)
	})
}

func TestAutorService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("inactivates author and linked projects", func(t *testing.T) {
		repo := newFakeAutorRepo()
		a := repo.seed(autor.Autor{Nome: "Maria", CPF: "1", Email: "m@m.com", Status: true})
		repo.projetos[a.ID] = []autor.ProjetoResumo{
			{ID: 10, Titulo: "P1", Situacao: "Submetido", Status: true},
			{ID: 11, Titulo: "P2", Situacao: "Submetido", Status: true},
		}
		svc := NewAutorService(repo)

		require.NoError(t, svc.Delete(ctx, a.ID))

		assert.False(t, repo.autores[a.ID].Status)
		for _, p := range repo.projetos[a.ID] {
			assert.False(t, p.Status)
		}
	})

	t.Run("rejects already inactive author", func(t *testing.T) {
		repo := newFakeAutorRepo()
		a := repo.seed(autor.Autor{Nome: "Maria", CPF: "1", Email: "m@m.com", Status: false})
		svc := NewAutorService(repo)

		err := svc.Delete(ctx, a.ID)
		assert.ErrorIs(t, err, autor.ErrAutorInativo)
	})
}

func TestAutorService_MediaNotas(t *testing.T) {
	ctx := context.Background()

	t.Run("rounds to two decimals", func(t *testing.T) {
		repo := newFakeAutorRepo()
		a := repo.seed(autor.Autor{Nome: "Maria", CPF: "1", Email: "m@m.com", Status: true})
		media := 7.6666666
		repo.medias[a.ID] = &media
		svc := NewAutorService(repo)

		got, err := svc.MediaNotas(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.InDelta(t, 7.67, *got, 0.0001)
	})

	t.Run("nil when author has no projects", func(t *testing.T) {
		repo := newFakeAutorRepo()
		a := repo.seed(autor.Autor{Nome: "Maria", CPF: "1", Email: "m@m.com", Status: true})
		svc := NewAutorService(repo)

		got, err := svc.MediaNotas(ctx, a.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"premios-backend/internal/domains/usuario"
	"premios-backend/pkg/jwt"
)

type fakeUsuarioRepo struct {
	usuarios map[int64]*usuario.Usuario
	nextID   int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[int64]*usuario.Usuario{}, nextID: 1}
}

func (f *fakeUsuarioRepo) Create(_ context.Context, u *usuario.Usuario) (*usuario.Usuario, error) {
	stored := *u
	stored.ID = f.nextID
	f.nextID++
	f.usuarios[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeUsuarioRepo) GetByID(_ context.Context, id int64) (*usuario.Usuario, error) {
	u, ok := f.usuarios[id]
	if !ok {
		return nil, usuario.ErrUsuarioNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*usuario.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Update(_ context.Context, u *usuario.Usuario) (*usuario.Usuario, error) {
	if _, ok := f.usuarios[u.ID]; !ok {
		return nil, usuario.ErrUsuarioNotFound
	}
	stored := *u
	f.usuarios[u.ID] = &stored
	out := stored
	return &out, nil
}

func newTestService(repo usuario.Repository) usuario.Service {
	return NewUsuarioService(repo, jwt.NewManager("test-secret", time.Hour))
}

func TestUsuarioService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password before storage", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		svc := newTestService(repo)

		created, err := svc.Register(ctx, &usuario.RegisterRequest{
			Nome:  "Carlos",
			Email: "carlos@example.com",
			Senha: "senha-secreta",
		})
		require.NoError(t, err)
		assert.NotEqual(t, "senha-secreta", created.Senha)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Senha), []byte("senha-secreta")))
		assert.Equal(t, usuario.RoleUser, created.Role)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		svc := newTestService(repo)

		req := &usuario.RegisterRequest{Nome: "Carlos", Email: "carlos@example.com", Senha: "senha-secreta"}
		_, err := svc.Register(ctx, req)
		require.NoError(t, err)

		_, err = svc.Register(ctx, req)
		assert.ErrorIs(t, err, usuario.ErrEmailJaCadastrado)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := newTestService(newFakeUsuarioRepo())

		_, err := svc.Register(ctx, &usuario.RegisterRequest{
			Nome:  "Carlos",
			Email: "carlos@example.com",
			Senha: "123",
		})
		assert.Error(t, err)
	})
}

func TestUsuarioService_Login(t *testing.T) {
	ctx := context.Background()

	register := func(svc usuario.Service) *usuario.Usuario {
		u, err := svc.Register(ctx, &usuario.RegisterRequest{
			Nome:  "Carlos",
			Email: "carlos@example.com",
			Senha: "senha-secreta",
		})
		require.NoError(t, err)
		return u
	}

	t.Run("issues token on valid credentials", func(t *testing.T) {
		svc := newTestService(newFakeUsuarioRepo())
		registered := register(svc)

		result, err := svc.Login(ctx, &usuario.LoginRequest{Email: "carlos@example.com", Senha: "senha-secreta"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, registered.ID, result.Usuario.ID)

		claims, err := jwt.NewManager("test-secret", time.Hour).ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, "carlos@example.com", claims.Email)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		svc := newTestService(newFakeUsuarioRepo())
		register(svc)

		_, err := svc.Login(ctx, &usuario.LoginRequest{Email: "carlos@example.com", Senha: "errada-errada"})
		assert.ErrorIs(t, err, usuario.ErrCredenciaisInvalidas)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		svc := newTestService(newFakeUsuarioRepo())

		_, err := svc.Login(ctx, &usuario.LoginRequest{Email: "ninguem@example.com", Senha: "senha-secreta"})
		assert.ErrorIs(t, err, usuario.ErrCredenciaisInvalidas)
	})
}

func TestUsuarioService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rehashes changed password", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		svc := newTestService(repo)

		created, err := svc.Register(ctx, &usuario.RegisterRequest{
			Nome:  "Carlos",
			Email: "carlos@example.com",
			Senha: "senha-antiga",
		})
		require.NoError(t, err)

		nova := "senha-nova-123"
		updated, err := svc.Update(ctx, created.ID, &usuario.UpdateUsuarioRequest{Senha: &nova})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Senha), []byte(nova)))
	})

	t.Run("rejects email taken by another account", func(t *testing.T) {
		repo := newFakeUsuarioRepo()
		svc := newTestService(repo)

		first, err := svc.Register(ctx, &usuario.RegisterRequest{Nome: "Ana", Email: "a@example.com", Senha: "senha-secreta"})
		require.NoError(t, err)
		_, err = svc.Register(ctx, &usuario.RegisterRequest{Nome: "Bia", Email: "b@example.com", Senha: "senha-secreta"})
		require.NoError(t, err)

		taken := "b@example.com"
		_, err = svc.Update(ctx, first.ID, &usuario.UpdateUsuarioRequest{Email: &taken})
		assert.ErrorIs(t, err, usuario.ErrEmailJaCadastrado)
	})
}

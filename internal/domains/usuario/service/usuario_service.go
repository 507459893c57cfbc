package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"premios-backend/internal/domains/usuario"
	"premios-backend/pkg/jwt"
)

// usuarioService implements usuario.Service.
type usuarioService struct {
	repo       usuario.Repository
	jwtManager *jwt.Manager
}

func NewUsuarioService(repo usuario.Repository, jwtManager *jwt.Manager) usuario.Service {
	return &usuarioService{repo: repo, jwtManager: jwtManager}
}

func (s *usuarioService) Register(ctx context.Context, req *usuario.RegisterRequest) (*usuario.Usuario, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, usuario.ErrEmailJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &usuario.Usuario{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: string(hash),
		Role:  usuario.RoleUser,
	})
}

func (s *usuarioService) Login(ctx context.Context, req *usuario.LoginRequest) (*usuario.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, usuario.ErrCredenciaisInvalidas
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte(req.Senha)) != nil {
		return nil, usuario.ErrCredenciaisInvalidas
	}

	token, err := s.jwtManager.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	return &usuario.LoginResponse{Token: token, Usuario: u}, nil
}

func (s *usuarioService) GetByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *usuarioService) Update(ctx context.Context, id int64, req *usuario.UpdateUsuarioRequest) (*usuario.Usuario, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != current.Email {
		conflict, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, usuario.ErrEmailJaCadastrado
		}
	}

	updated := *current
	if req.Nome != nil {
		updated.Nome = *req.Nome
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updated.Senha = string(hash)
	}

	return s.repo.Update(ctx, &updated)
}

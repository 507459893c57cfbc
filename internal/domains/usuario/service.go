package usuario

import "context"

// Service defines business logic for the Usuario domain.
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*Usuario, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	GetByID(ctx context.Context, id int64) (*Usuario, error)
	Update(ctx context.Context, id int64, req *UpdateUsuarioRequest) (*Usuario, error)
}

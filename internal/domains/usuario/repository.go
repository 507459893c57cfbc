package usuario

import "context"

// Repository defines data access for the Usuario entity.
type Repository interface {
	Create(ctx context.Context, u *Usuario) (*Usuario, error)

	// GetByID errors with ErrUsuarioNotFound when absent.
	GetByID(ctx context.Context, id int64) (*Usuario, error)

	// FindByEmail returns (nil, nil) when no account carries the email.
	FindByEmail(ctx context.Context, email string) (*Usuario, error)

	Update(ctx context.Context, u *Usuario) (*Usuario, error)
}

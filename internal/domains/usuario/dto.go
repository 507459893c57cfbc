package usuario

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterRequest - POST /users
type RegisterRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome,
			validation.Required.Error("nome é obrigatório"),
			validation.Length(2, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email é obrigatório"),
			is.Email.Error("formato de email inválido"),
		),
		validation.Field(&r.Senha,
			validation.Required.Error("senha é obrigatória"),
			validation.Length(6, 72).Error("senha deve ter entre 6 e 72 caracteres"),
		),
	)
}

// LoginRequest - POST /login
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email é obrigatório"),
			is.Email.Error("formato de email inválido"),
		),
		validation.Field(&r.Senha, validation.Required.Error("senha é obrigatória")),
	)
}

// LoginResponse carries the signed token and the authenticated account.
type LoginResponse struct {
	Token   string   `json:"token"`
	Usuario *Usuario `json:"usuario"`
}

// UpdateUsuarioRequest - PUT /users/:id
type UpdateUsuarioRequest struct {
	Nome  *string `json:"nome,omitempty"`
	Email *string `json:"email,omitempty"`
	Senha *string `json:"senha,omitempty"`
}

func (r UpdateUsuarioRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&r.Senha, validation.NilOrNotEmpty, validation.Length(6, 72)),
	)
}

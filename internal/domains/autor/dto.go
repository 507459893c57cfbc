package autor

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateAutorRequest - POST /autores
type CreateAutorRequest struct {
	Nome  string `json:"nome" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (r CreateAutorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome,
			validation.Required.Error("nome é obrigatório"),
			validation.Length(2, 255),
		),
		validation.Field(&r.CPF,
			validation.Required.Error("cpf é obrigatório"),
			validation.Length(11, 14).Error("cpf deve ter entre 11 e 14 caracteres"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email é obrigatório"),
			is.Email.Error("formato de email inválido"),
		),
	)
}

func (r *CreateAutorRequest) ToEntity() *Autor {
	return &Autor{
		Nome:   r.Nome,
		CPF:    r.CPF,
		Email:  r.Email,
		Status: true,
	}
}

// UpdateAutorRequest - PUT /autores/:id
// All fields optional for partial updates.
type UpdateAutorRequest struct {
	Nome  *string `json:"nome,omitempty"`
	CPF   *string `json:"cpf,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateAutorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.CPF, validation.NilOrNotEmpty, validation.Length(11, 14)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
	)
}

// ApplyToEntity merges the non-nil fields onto an existing Autor.
func (r *UpdateAutorRequest) ApplyToEntity(a *Autor) {
	if r.Nome != nil {
		a.Nome = *r.Nome
	}
	if r.CPF != nil {
		a.CPF = *r.CPF
	}
	if r.Email != nil {
		a.Email = *r.Email
	}
}

// MediaResponse - POST /autores/:id/projetos/media
// Media is nil when the author has no projects with grades.
type MediaResponse struct {
	Media *float64 `json:"media"`
}

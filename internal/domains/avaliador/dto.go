package avaliador

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateAvaliadorRequest - POST /avaliadores
type CreateAvaliadorRequest struct {
	Nome  string `json:"nome" binding:"required"`
	CPF   string `json:"cpf" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (r CreateAvaliadorRequest) Validate() error {
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

func (r *CreateAvaliadorRequest) ToEntity() *Avaliador {
	return &Avaliador{
		Nome:   r.Nome,
		CPF:    r.CPF,
		Email:  r.Email,
		Status: true,
	}
}

// UpdateAvaliadorRequest - PUT /avaliadores/:id
type UpdateAvaliadorRequest struct {
	Nome  *string `json:"nome,omitempty"`
	CPF   *string `json:"cpf,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r UpdateAvaliadorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.CPF, validation.NilOrNotEmpty, validation.Length(11, 14)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
	)
}

func (r *UpdateAvaliadorRequest) ApplyToEntity(a *Avaliador) {
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

// MediaResponse - GET /avaliadores/:id/projetos/media
type MediaResponse struct {
	Media *float64 `json:"media"`
}

package premio

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreatePremioRequest - POST /premios
type CreatePremioRequest struct {
	Nome       string    `json:"nome" binding:"required"`
	AnoEdicao  int       `json:"anoEdicao" binding:"required"`
	DataInicio time.Time `json:"dataInicio" binding:"required"`
	DataFim    time.Time `json:"dataFim" binding:"required"`
}

func (r CreatePremioRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome,
			validation.Required.Error("nome é obrigatório"),
			validation.Length(2, 255),
		),
		validation.Field(&r.AnoEdicao,
			validation.Required.Error("anoEdicao é obrigatório"),
			validation.Min(1900),
			validation.Max(2200),
		),
		validation.Field(&r.DataInicio, validation.Required.Error("dataInicio é obrigatória")),
		validation.Field(&r.DataFim, validation.Required.Error("dataFim é obrigatória")),
	)
}

func (r *CreatePremioRequest) ToEntity() *Premio {
	return &Premio{
		Nome:       r.Nome,
		AnoEdicao:  r.AnoEdicao,
		DataInicio: r.DataInicio,
		DataFim:    r.DataFim,
		Status:     true,
	}
}

// UpdatePremioRequest - PUT /premios/:id
type UpdatePremioRequest struct {
	Nome       *string    `json:"nome,omitempty"`
	AnoEdicao  *int       `json:"anoEdicao,omitempty"`
	DataInicio *time.Time `json:"dataInicio,omitempty"`
	DataFim    *time.Time `json:"dataFim,omitempty"`
}

func (r UpdatePremioRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.AnoEdicao, validation.Min(1900), validation.Max(2200)),
	)
}

func (r *UpdatePremioRequest) ApplyToEntity(p *Premio) {
	if r.Nome != nil {
		p.Nome = *r.Nome
	}
	if r.AnoEdicao != nil {
		p.AnoEdicao = *r.AnoEdicao
	}
	if r.DataInicio != nil {
		p.DataInicio = *r.DataInicio
	}
	if r.DataFim != nil {
		p.DataFim = *r.DataFim
	}
}

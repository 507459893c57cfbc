package projeto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateProjetoRequest - POST /projetos
type CreateProjetoRequest struct {
	Titulo       string  `json:"titulo" binding:"required"`
	AreaTematica string  `json:"areaTematica" binding:"required"`
	Resumo       string  `json:"resumo"`
	PremioID     int64   `json:"premioId" binding:"required"`
	AvaliadorID  *int64  `json:"avaliadorId,omitempty"`
	AutorIDs     []int64 `json:"autorIds" binding:"required"`
}

func (r CreateProjetoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Titulo,
			validation.Required.Error("titulo é obrigatório"),
			validation.Length(2, 255),
		),
		validation.Field(&r.AreaTematica, validation.Required.Error("areaTematica é obrigatória")),
		validation.Field(&r.Resumo, validation.Length(0, 5000)),
		validation.Field(&r.PremioID, validation.Required.Error("premioId é obrigatório")),
	)
}

// ToEntity builds the project with its submission defaults. Author
// links are carried separately.
func (r *CreateProjetoRequest) ToEntity() *Projeto {
	return &Projeto{
		Titulo:            r.Titulo,
		AreaTematica:      AreaTematica(r.AreaTematica),
		Resumo:            r.Resumo,
		Situacao:          SituacaoSubmetido,
		Nota:              0,
		ParecerDescritivo: ParecerPendente,
		PremioID:          r.PremioID,
		AvaliadorID:       r.AvaliadorID,
		Status:            true,
		DataCadastro:      time.Now(),
	}
}

// UpdateProjetoRequest - PUT /projetos/:id. A nil AutorIDs keeps the
// current author set; a non-nil slice replaces it wholesale.
type UpdateProjetoRequest struct {
	Titulo       *string `json:"titulo,omitempty"`
	AreaTematica *string `json:"areaTematica,omitempty"`
	Resumo       *string `json:"resumo,omitempty"`
	Situacao     *string `json:"situacao,omitempty"`
	PremioID     *int64  `json:"premioId,omitempty"`
	AvaliadorID  *int64  `json:"avaliadorId,omitempty"`
	AutorIDs     []int64 `json:"autorIds,omitempty"`
}

func (r UpdateProjetoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Titulo, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.AreaTematica, validation.NilOrNotEmpty),
		validation.Field(&r.Resumo, validation.Length(0, 5000)),
		validation.Field(&r.Situacao, validation.NilOrNotEmpty),
	)
}

func (r *UpdateProjetoRequest) ApplyToEntity(p *Projeto) {
	if r.Titulo != nil {
		p.Titulo = *r.Titulo
	}
	if r.AreaTematica != nil {
		p.AreaTematica = AreaTematica(*r.AreaTematica)
	}
	if r.Resumo != nil {
		p.Resumo = *r.Resumo
	}
	if r.Situacao != nil {
		p.Situacao = Situacao(*r.Situacao)
	}
	if r.PremioID != nil {
		p.PremioID = *r.PremioID
	}
	if r.AvaliadorID != nil {
		p.AvaliadorID = r.AvaliadorID
	}
}

// EvaluateProjetoRequest - PATCH /projetos/:id/avaliar. Nota is a
// pointer so an explicit zero survives binding.
type EvaluateProjetoRequest struct {
	Nota              *float64 `json:"nota" binding:"required"`
	ParecerDescritivo string   `json:"parecerDescritivo" binding:"required"`
	Situacao          string   `json:"situacao" binding:"required"`
}

func (r EvaluateProjetoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nota, validation.NotNil.Error("nota é obrigatória")),
		validation.Field(&r.ParecerDescritivo,
			validation.Required.Error("parecerDescritivo é obrigatório"),
			validation.Length(1, 5000),
		),
		validation.Field(&r.Situacao, validation.Required.Error("situacao é obrigatória")),
	)
}

// AddAutorRequest - POST /projetos/:id/autores
type AddAutorRequest struct {
	AutorID int64 `json:"autorId" binding:"required"`
}

func (r AddAutorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AutorID, validation.Required.Error("autorId é obrigatório")),
	)
}

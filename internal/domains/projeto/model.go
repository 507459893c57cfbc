package projeto

import (
	"time"

	"premios-backend/internal/domains/autor"
	"premios-backend/internal/domains/avaliador"
	"premios-backend/internal/domains/premio"
)

// Situacao is the workflow stage of a submitted project.
type Situacao string

const (
	SituacaoSubmetido         Situacao = "Submetido"
	SituacaoEmAvaliacao       Situacao = "Em Avaliação"
	SituacaoAprovado          Situacao = "Avaliado - Aprovado"
	SituacaoReprovado         Situacao = "Avaliado - Reprovado"
	SituacaoPendentedeAjustes Situacao = "Pendente de Ajustes"
	SituacaoFinalizado        Situacao = "Finalizado"
	SituacaoCancelado         Situacao = "Cancelado"
)

func (s Situacao) IsValid() bool {
	switch s {
	case SituacaoSubmetido, SituacaoEmAvaliacao, SituacaoAprovado,
		SituacaoReprovado, SituacaoPendentedeAjustes, SituacaoFinalizado,
		SituacaoCancelado:
		return true
	}
	return false
}

// IsEvaluationOutcome reports whether s may be assigned by the
// evaluation endpoint.
func (s Situacao) IsEvaluationOutcome() bool {
	switch s {
	case SituacaoAprovado, SituacaoReprovado, SituacaoPendentedeAjustes:
		return true
	}
	return false
}

// IsPreEvaluation reports whether a project in stage s is expected to
// receive an evaluation.
func (s Situacao) IsPreEvaluation() bool {
	switch s {
	case SituacaoSubmetido, SituacaoEmAvaliacao, SituacaoPendentedeAjustes:
		return true
	}
	return false
}

// AreaTematica is the thematic area of a project.
type AreaTematica string

const (
	AreaCienciasExatas     AreaTematica = "Ciências Exatas"
	AreaCienciasHumanas    AreaTematica = "Ciências Humanas"
	AreaCienciasBiologicas AreaTematica = "Ciências Biológicas"
	AreaEngenharias        AreaTematica = "Engenharias"
	AreaSaude              AreaTematica = "Saúde"
	AreaTecnologia         AreaTematica = "Tecnologia da Informação"
)

func (a AreaTematica) IsValid() bool {
	switch a {
	case AreaCienciasExatas, AreaCienciasHumanas, AreaCienciasBiologicas,
		AreaEngenharias, AreaSaude, AreaTecnologia:
		return true
	}
	return false
}

// ParecerPendente is the descriptive report before any evaluation.
const ParecerPendente = "Pendente de avaliação."

// Projeto is the relational hub of the awards workflow. Relations are
// always loaded on reads.
type Projeto struct {
	ID                int64        `json:"id"`
	Titulo            string       `json:"titulo"`
	AreaTematica      AreaTematica `json:"areaTematica"`
	Resumo            string       `json:"resumo"`
	Situacao          Situacao     `json:"situacao"`
	Nota              float64      `json:"nota"`
	ParecerDescritivo string       `json:"parecerDescritivo"`
	PremioID          int64        `json:"premioId"`
	AvaliadorID       *int64       `json:"avaliadorId,omitempty"`
	Status            bool         `json:"status"`
	DataCadastro      time.Time    `json:"dataCadastro"`

	Autores   []autor.Autor        `json:"autores"`
	Premio    *premio.Premio       `json:"premio,omitempty"`
	Avaliador *avaliador.Avaliador `json:"avaliador,omitempty"`
}

// HasAutor reports whether the author is linked to the project.
func (p *Projeto) HasAutor(autorID int64) bool {
	for _, a := range p.Autores {
		if a.ID == autorID {
			return true
		}
	}
	return false
}

package projeto

import (
	"errors"
	"net/http"
)

var (
	ErrProjetoNotFound          = errors.New("projeto não encontrado")
	ErrProjetoInativo           = errors.New("projeto está inativo")
	ErrTituloPremioJaCadastrado = errors.New("já existe um projeto com este título neste prêmio")
	ErrPremioInvalido           = errors.New("prêmio não encontrado ou inativo")
	ErrAvaliadorInvalido        = errors.New("avaliador não encontrado ou inativo")
	ErrAutorInvalido            = errors.New("autor não encontrado ou inativo")
	ErrSemAutores               = errors.New("projeto deve ter pelo menos um autor")
	ErrAutorJaVinculado         = errors.New("autor já vinculado ao projeto")
	ErrAutorNaoVinculado        = errors.New("autor não vinculado ao projeto")
	ErrUltimoAutor              = errors.New("não é possível remover o único autor do projeto")
	ErrNotaInvalida             = errors.New("nota deve estar entre 0 e 10")
	ErrSituacaoInvalida         = errors.New("situação inválida")
	ErrAreaTematicaInvalida     = errors.New("área temática inválida")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrProjetoNotFound):
		return "PROJETO_NOT_FOUND"
	case errors.Is(err, ErrProjetoInativo):
		return "PROJETO_INATIVO"
	case errors.Is(err, ErrTituloPremioJaCadastrado):
		return "TITULO_PREMIO_CONFLICT"
	case errors.Is(err, ErrPremioInvalido):
		return "PREMIO_INVALIDO"
	case errors.Is(err, ErrAvaliadorInvalido):
		return "AVALIADOR_INVALIDO"
	case errors.Is(err, ErrAutorInvalido):
		return "AUTOR_INVALIDO"
	case errors.Is(err, ErrSemAutores):
		return "SEM_AUTORES"
	case errors.Is(err, ErrAutorJaVinculado):
		return "AUTOR_JA_VINCULADO"
	case errors.Is(err, ErrAutorNaoVinculado):
		return "AUTOR_NAO_VINCULADO"
	case errors.Is(err, ErrUltimoAutor):
		return "ULTIMO_AUTOR"
	case errors.Is(err, ErrNotaInvalida):
		return "NOTA_INVALIDA"
	case errors.Is(err, ErrSituacaoInvalida):
		return "SITUACAO_INVALIDA"
	case errors.Is(err, ErrAreaTematicaInvalida):
		return "AREA_TEMATICA_INVALIDA"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrProjetoNotFound),
		errors.Is(err, ErrProjetoInativo),
		errors.Is(err, ErrPremioInvalido),
		errors.Is(err, ErrAvaliadorInvalido),
		errors.Is(err, ErrAutorInvalido),
		errors.Is(err, ErrAutorNaoVinculado):
		return http.StatusNotFound
	case errors.Is(err, ErrSemAutores),
		errors.Is(err, ErrNotaInvalida),
		errors.Is(err, ErrSituacaoInvalida),
		errors.Is(err, ErrAreaTematicaInvalida):
		return http.StatusBadRequest
	case errors.Is(err, ErrTituloPremioJaCadastrado),
		errors.Is(err, ErrAutorJaVinculado),
		errors.Is(err, ErrUltimoAutor):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

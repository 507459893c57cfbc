package premio

import (
	"errors"
	"net/http"
)

var (
	ErrPremioNotFound      = errors.New("prêmio não encontrado")
	ErrPremioInativo       = errors.New("prêmio está inativo")
	ErrNomeAnoJaCadastrado = errors.New("já existe um prêmio com este nome e ano de edição")
	ErrDatasInvalidas      = errors.New("a data de fim deve ser posterior à data de início")
	ErrPremioComProjetos   = errors.New("prêmio possui projetos ativos e não pode ser inativado")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPremioNotFound):
		return "PREMIO_NOT_FOUND"
	case errors.Is(err, ErrPremioInativo):
		return "PREMIO_INATIVO"
	case errors.Is(err, ErrNomeAnoJaCadastrado):
		return "NOME_ANO_CONFLICT"
	case errors.Is(err, ErrDatasInvalidas):
		return "DATAS_INVALIDAS"
	case errors.Is(err, ErrPremioComProjetos):
		return "PREMIO_COM_PROJETOS"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPremioNotFound), errors.Is(err, ErrPremioInativo):
		return http.StatusNotFound
	case errors.Is(err, ErrDatasInvalidas):
		return http.StatusBadRequest
	case errors.Is(err, ErrNomeAnoJaCadastrado), errors.Is(err, ErrPremioComProjetos):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

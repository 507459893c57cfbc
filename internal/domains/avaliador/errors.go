package avaliador

import "errors"

var (
	ErrAvaliadorNotFound = errors.New("avaliador não encontrado")
	ErrAvaliadorInativo  = errors.New("avaliador inativo")

	ErrCPFJaCadastrado   = errors.New("avaliador com este CPF já existe")
	ErrEmailJaCadastrado = errors.New("avaliador com este email já existe")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAvaliadorNotFound):
		return "AVALIADOR_NOT_FOUND"
	case errors.Is(err, ErrAvaliadorInativo):
		return "AVALIADOR_INATIVO"
	case errors.Is(err, ErrCPFJaCadastrado):
		return "CPF_DUPLICADO"
	case errors.Is(err, ErrEmailJaCadastrado):
		return "EMAIL_DUPLICADO"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAvaliadorNotFound), errors.Is(err, ErrAvaliadorInativo):
		return 404
	case errors.Is(err, ErrCPFJaCadastrado), errors.Is(err, ErrEmailJaCadastrado):
		return 409
	default:
		return 500
	}
}

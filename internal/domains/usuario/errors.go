package usuario

import (
	"errors"
	"net/http"
)

var (
	ErrUsuarioNotFound      = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("email já cadastrado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUsuarioNotFound):
		return "USUARIO_NOT_FOUND"
	case errors.Is(err, ErrEmailJaCadastrado):
		return "EMAIL_CONFLICT"
	case errors.Is(err, ErrCredenciaisInvalidas):
		return "CREDENCIAIS_INVALIDAS"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUsuarioNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailJaCadastrado):
		return http.StatusConflict
	case errors.Is(err, ErrCredenciaisInvalidas):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

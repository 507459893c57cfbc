package autor

import "errors"

var (
	// Not found / inactive
	ErrAutorNotFound = errors.New("autor não encontrado")
	ErrAutorInativo  = errors.New("autor inativo")

	// Conflicts on natural keys
	ErrCPFJaCadastrado   = errors.New("autor com este CPF já existe")
	ErrEmailJaCadastrado = errors.New("autor com este email já existe")
)

// ToErrorCode converts a domain error to the API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAutorNotFound):
		return "AUTOR_NOT_FOUND"
	case errors.Is(err, ErrAutorInativo):
		return "AUTOR_INATIVO"
	case errors.Is(err, ErrCPFJaCadastrado):
		return "CPF_DUPLICADO"
	case errors.Is(err, ErrEmailJaCadastrado):
		return "EMAIL_DUPLICADO"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to the HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAutorNotFound), errors.Is(err, ErrAutorInativo):
		return 404
	case errors.Is(err, ErrCPFJaCadastrado), errors.Is(err, ErrEmailJaCadastrado):
		return 409
	default:
		return 500
	}
}

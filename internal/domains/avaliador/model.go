package avaliador

// Avaliador represents an evaluator assigned to projects (one-to-many).
// Soft-deleted via Status; inactivating an evaluator never touches the
// projects assigned to it.
type Avaliador struct {
	ID     int64  `json:"id" db:"id"`
	Nome   string `json:"nome" db:"nome"`
	CPF    string `json:"cpf" db:"cpf"`
	Email  string `json:"email" db:"email"`
	Status bool   `json:"status" db:"status"`
}

// ProjetoResumo is the evaluator-side view of an assigned project.
type ProjetoResumo struct {
	ID       int64   `json:"id" db:"id"`
	Titulo   string  `json:"titulo" db:"titulo"`
	Situacao string  `json:"situacao" db:"situacao"`
	Nota     float64 `json:"nota" db:"nota"`
	Status   bool    `json:"status" db:"status"`
}

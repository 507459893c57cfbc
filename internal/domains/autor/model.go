package autor

// Autor represents a project author. Soft-deleted via the Status flag:
// Status=false rows are invisible to default listings.
type Autor struct {
	ID     int64  `json:"id" db:"id"`
	Nome   string `json:"nome" db:"nome"`
	CPF    string `json:"cpf" db:"cpf"`
	Email  string `json:"email" db:"email"`
	Status bool   `json:"status" db:"status"`
}

// ProjetoResumo is the author-side view of a linked project. The full
// Projeto entity lives in the projeto domain; this summary avoids a
// package cycle on the many-to-many relation.
type ProjetoResumo struct {
	ID       int64   `json:"id" db:"id"`
	Titulo   string  `json:"titulo" db:"titulo"`
	Situacao string  `json:"situacao" db:"situacao"`
	Nota     float64 `json:"nota" db:"nota"`
	Status   bool    `json:"status" db:"status"`
}

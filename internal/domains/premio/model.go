package premio

import "time"

// Premio is an award edition with a validity window.
type Premio struct {
	ID         int64     `json:"id"`
	Nome       string    `json:"nome"`
	AnoEdicao  int       `json:"anoEdicao"`
	DataInicio time.Time `json:"dataInicio"`
	DataFim    time.Time `json:"dataFim"`
	Status     bool      `json:"status"`
}

// ProjetoResumo is a flat view of a submitted project, used by the
// prize relation endpoints without importing the projeto package.
type ProjetoResumo struct {
	ID       int64   `json:"id"`
	Titulo   string  `json:"titulo"`
	Situacao string  `json:"situacao"`
	Nota     float64 `json:"nota"`
	Status   bool    `json:"status"`
}

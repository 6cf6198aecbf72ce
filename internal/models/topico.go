package models

// LinhaBruta representa uma linha da planilha como lida da API, antes da
// normalização. Linha é a posição 1-based na planilha (cabeçalho = linha 1).
type LinhaBruta struct {
	Linha      int
	Cargo      string
	Disciplina string
	Conteudo   string
	Status     string
}

// Topico é o registro tipado de um conteúdo de estudo
type Topico struct {
	LinhaID    int    `json:"linha_id"`
	Cargo      string `json:"cargo"`
	Disciplina string `json:"disciplina"`
	Conteudo   string `json:"conteudo"`
	Estudado   bool   `json:"estudado"`
}

// Resumo agrega os totais de um cargo para os cards de métrica
type Resumo struct {
	Total      int     `json:"total"`
	Estudados  int     `json:"estudados"`
	Restantes  int     `json:"restantes"`
	Percentual float64 `json:"percentual"`
}

// ResumoDisciplina agrega os totais de uma disciplina dentro de um cargo
type ResumoDisciplina struct {
	Disciplina string  `json:"disciplina"`
	Estudados  int     `json:"estudados"`
	Total      int     `json:"total"`
	Percentual float64 `json:"percentual"`
	Cor        string  `json:"cor"`
}

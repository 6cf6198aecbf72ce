package constants

// CargosValidos contém os cargos do edital da Câmara Municipal de Goiânia
// acompanhados no painel
var CargosValidos = []string{
	"Analista Técnico Legislativo",
	"Agente Administrativo",
}

// CoresDisciplinas mapeia cada disciplina para sua cor de exibição.
// As cores são identificadores opacos repassados ao frontend.
var CoresDisciplinas = map[string]string{
	"LÍNGUA PORTUGUESA":         "red",
	"RLM":                       "green",
	"REALIDADE DE GOIÁS":        "blue",
	"LEGISLAÇÃO APLICADA":       "violet",
	"CONHECIMENTOS ESPECÍFICOS": "orange",
}

// CorPadrao é usada para disciplinas fora do conjunto conhecido
const CorPadrao = "steelblue"

// DisciplinaTodas é o valor do filtro que não restringe por disciplina
const DisciplinaTodas = "Todas"

// StatusVerdadeiros contém os valores da coluna Status que contam como
// conteúdo estudado (comparação após trim e caixa alta)
var StatusVerdadeiros = map[string]bool{
	"TRUE":       true,
	"VERDADEIRO": true,
	"1":          true,
	"SIM":        true,
	"YES":        true,
}

// ColunaStatusPadrao é o índice 1-based da coluna Status quando o cabeçalho
// da planilha não pode ser lido
const ColunaStatusPadrao = 4

// CargoValido verifica se o cargo pertence ao conjunto fechado do edital
func CargoValido(cargo string) bool {
	for _, c := range CargosValidos {
		if c == cargo {
			return true
		}
	}
	return false
}

// CorDaDisciplina retorna a cor de exibição da disciplina, com fallback
// para disciplinas desconhecidas
func CorDaDisciplina(disciplina string) string {
	if cor, ok := CoresDisciplinas[disciplina]; ok {
		return cor
	}
	return CorPadrao
}

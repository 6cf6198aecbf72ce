package services

import (
	"strings"

	"github.com/estudos-cmg/painel-estudos/internal/constants"
	"github.com/estudos-cmg/painel-estudos/internal/models"
)

// EstudadoDeStatus normaliza o texto livre da coluna Status para o flag de
// estudado. A comparação é feita após trim e caixa alta; qualquer valor fora
// do conjunto verdadeiro (inclusive vazio) conta como não estudado.
func EstudadoDeStatus(status string) bool {
	return constants.StatusVerdadeiros[strings.ToUpper(strings.TrimSpace(status))]
}

// StatusDeEstudado serializa o flag de volta para a planilha. A serialização
// é intencionalmente com perda: qualquer grafia aceita vira TRUE/FALSE.
func StatusDeEstudado(estudado bool) string {
	if estudado {
		return "TRUE"
	}
	return "FALSE"
}

// NormalizarLinha converte uma linha bruta da planilha no registro tipado
func NormalizarLinha(linha models.LinhaBruta) models.Topico {
	return models.Topico{
		LinhaID:    linha.Linha,
		Cargo:      strings.TrimSpace(linha.Cargo),
		Disciplina: strings.TrimSpace(linha.Disciplina),
		Conteudo:   strings.TrimSpace(linha.Conteudo),
		Estudado:   EstudadoDeStatus(linha.Status),
	}
}

// NormalizarTabela aplica NormalizarLinha a todas as linhas lidas
func NormalizarTabela(linhas []models.LinhaBruta) []models.Topico {
	topicos := make([]models.Topico, 0, len(linhas))
	for _, linha := range linhas {
		topicos = append(topicos, NormalizarLinha(linha))
	}
	return topicos
}

package services

import (
	"math"
	"sort"

	"github.com/estudos-cmg/painel-estudos/internal/constants"
	"github.com/estudos-cmg/painel-estudos/internal/models"
)

// Ordem define como a lista de disciplinas é ordenada
type Ordem int

const (
	// OrdemAlfabetica ordena por nome de disciplina (cards e grade de donuts)
	OrdemAlfabetica Ordem = iota
	// OrdemPercentual ordena por percentual crescente (gráfico de barras),
	// com desempate alfabético
	OrdemPercentual
)

// FiltrarPorCargo retorna apenas os tópicos do cargo, preservando a ordem
// da planilha
func FiltrarPorCargo(tabela []models.Topico, cargo string) []models.Topico {
	sub := make([]models.Topico, 0, len(tabela))
	for _, t := range tabela {
		if t.Cargo == cargo {
			sub = append(sub, t)
		}
	}
	return sub
}

// ResumoGeral calcula os totais dos cards de métrica. Tabela vazia produz
// percentual zero, nunca divisão por zero.
func ResumoGeral(sub []models.Topico) models.Resumo {
	resumo := models.Resumo{Total: len(sub)}
	for _, t := range sub {
		if t.Estudado {
			resumo.Estudados++
		}
	}
	resumo.Restantes = resumo.Total - resumo.Estudados
	resumo.Percentual = percentual(resumo.Estudados, resumo.Total)
	return resumo
}

// PorDisciplina agrega os totais por disciplina na ordem pedida
func PorDisciplina(sub []models.Topico, ordem Ordem) []models.ResumoDisciplina {
	porNome := make(map[string]*models.ResumoDisciplina)
	for _, t := range sub {
		r, ok := porNome[t.Disciplina]
		if !ok {
			r = &models.ResumoDisciplina{
				Disciplina: t.Disciplina,
				Cor:        constants.CorDaDisciplina(t.Disciplina),
			}
			porNome[t.Disciplina] = r
		}
		r.Total++
		if t.Estudado {
			r.Estudados++
		}
	}

	resumos := make([]models.ResumoDisciplina, 0, len(porNome))
	for _, r := range porNome {
		r.Percentual = percentual(r.Estudados, r.Total)
		resumos = append(resumos, *r)
	}

	switch ordem {
	case OrdemPercentual:
		sort.Slice(resumos, func(i, j int) bool {
			if resumos[i].Percentual != resumos[j].Percentual {
				return resumos[i].Percentual < resumos[j].Percentual
			}
			return resumos[i].Disciplina < resumos[j].Disciplina
		})
	default:
		sort.Slice(resumos, func(i, j int) bool {
			return resumos[i].Disciplina < resumos[j].Disciplina
		})
	}
	return resumos
}

// ListarTopicos filtra por disciplina mantendo a ordem da planilha.
// Disciplina vazia ou "Todas" lista tudo.
func ListarTopicos(sub []models.Topico, disciplina string) []models.Topico {
	if disciplina == "" || disciplina == constants.DisciplinaTodas {
		return sub
	}
	topicos := make([]models.Topico, 0, len(sub))
	for _, t := range sub {
		if t.Disciplina == disciplina {
			topicos = append(topicos, t)
		}
	}
	return topicos
}

// percentual arredonda para uma casa decimal, pronto para exibição
func percentual(parte, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(parte)/float64(total)*1000) / 10
}

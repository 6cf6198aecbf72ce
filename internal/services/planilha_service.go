package services

import (
	"context"
	"log"
	"time"

	"github.com/estudos-cmg/painel-estudos/internal/models"
)

// PlanilhaStore é a visão que o serviço tem do adaptador da planilha.
// *sheets.Client a implementa; os testes usam um store em memória.
type PlanilhaStore interface {
	LerTudo(ctx context.Context) ([]models.LinhaBruta, error)
	AtualizarCelula(ctx context.Context, linha, coluna int, valor string) error
	ColunaStatus() int
	Chave() string
}

// PlanilhaService é o dono da tabela normalizada em memória: lê através do
// cache, grava direto no store e expõe a invalidação explícita. A planilha
// continua sendo a única fonte de verdade; a tabela em memória é uma
// projeção efêmera reconstruída a cada cache miss.
type PlanilhaService struct {
	store PlanilhaStore
	cache Cache
	ttl   time.Duration
}

// NewPlanilhaService cria o serviço com o TTL da tabela
func NewPlanilhaService(store PlanilhaStore, cache Cache, ttl time.Duration) *PlanilhaService {
	return &PlanilhaService{
		store: store,
		cache: cache,
		ttl:   ttl,
	}
}

func (s *PlanilhaService) chaveTabela() string {
	return "tabela:" + s.store.Chave()
}

// Tabela retorna a tabela normalizada, lendo do store em caso de miss
func (s *PlanilhaService) Tabela(ctx context.Context) ([]models.Topico, error) {
	if cached := s.cache.Get(s.chaveTabela()); cached != nil {
		if tabela, ok := cached.([]models.Topico); ok {
			return tabela, nil
		}
	}

	linhas, err := s.store.LerTudo(ctx)
	if err != nil {
		return nil, err
	}

	tabela := NormalizarTabela(linhas)
	s.cache.Set(s.chaveTabela(), tabela, s.ttl)
	log.Printf("Tabela recarregada da planilha: %d conteúdos", len(tabela))
	return tabela, nil
}

// Invalidar descarta a tabela em cache; a próxima leitura repopula e
// portanto observa qualquer gravação concluída antes desta chamada
func (s *PlanilhaService) Invalidar() {
	s.cache.Delete(s.chaveTabela())
}

// Gravar persiste o flag de estudado na célula de Status da linha. Em caso
// de erro o cache não é tocado: o valor persistido não mudou.
func (s *PlanilhaService) Gravar(ctx context.Context, linhaID int, estudado bool) error {
	return s.store.AtualizarCelula(ctx, linhaID, s.store.ColunaStatus(), StatusDeEstudado(estudado))
}

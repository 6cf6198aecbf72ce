package painel

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/estudos-cmg/painel-estudos/internal/models"
	"github.com/estudos-cmg/painel-estudos/internal/services"
)

const cargoAgente = "Agente Administrativo"

// planilhaFalsa simula o adaptador da planilha em memória
type planilhaFalsa struct {
	linhas        []models.LinhaBruta
	falharLeitura bool
	falharEscrita bool
}

func (p *planilhaFalsa) LerTudo(ctx context.Context) ([]models.LinhaBruta, error) {
	if p.falharLeitura {
		return nil, fmt.Errorf("rede fora")
	}
	copia := make([]models.LinhaBruta, len(p.linhas))
	copy(copia, p.linhas)
	return copia, nil
}

func (p *planilhaFalsa) AtualizarCelula(ctx context.Context, linha, coluna int, valor string) error {
	if p.falharEscrita {
		return fmt.Errorf("rede fora")
	}
	for i := range p.linhas {
		if p.linhas[i].Linha == linha {
			p.linhas[i].Status = valor
			return nil
		}
	}
	return fmt.Errorf("linha %d não existe", linha)
}

func (p *planilhaFalsa) ColunaStatus() int { return 4 }
func (p *planilhaFalsa) Chave() string     { return "teste/Conteudos" }

func novoControllerTeste() (*Controller, *planilhaFalsa) {
	store := &planilhaFalsa{
		linhas: []models.LinhaBruta{
			{Linha: 2, Cargo: cargoAgente, Disciplina: "RLM", Conteudo: "Proporções", Status: "TRUE"},
			{Linha: 3, Cargo: cargoAgente, Disciplina: "RLM", Conteudo: "Juros", Status: "false"},
			{Linha: 4, Cargo: cargoAgente, Disciplina: "LÍNGUA PORTUGUESA", Conteudo: "Crase", Status: "1"},
		},
	}
	planilha := services.NewPlanilhaService(store, services.NewTTLCache(), time.Minute)
	return NewController(planilha, 0), store
}

func TestCarregar(t *testing.T) {
	controller, _ := novoControllerTeste()

	visao, err := controller.Carregar(context.Background(), cargoAgente)
	if err != nil {
		t.Fatalf("Carregar: %v", err)
	}

	if visao.Estado != EstadoPronto {
		t.Errorf("estado = %s, esperado pronto", visao.Estado)
	}
	if visao.Resumo.Total != 3 || visao.Resumo.Estudados != 2 || visao.Resumo.Restantes != 1 {
		t.Errorf("resumo = %+v", visao.Resumo)
	}
	if len(visao.Donut) != 2 || visao.Donut[0].Valor != 2 || visao.Donut[1].Valor != 1 {
		t.Errorf("donut = %+v", visao.Donut)
	}
	if len(visao.Barras) != 2 || visao.Barras[0].Disciplina != "RLM" {
		t.Errorf("barras = %+v, esperado RLM primeiro (menor percentual)", visao.Barras)
	}
	if len(visao.Cards) != 2 || visao.Cards[0].Disciplina != "LÍNGUA PORTUGUESA" {
		t.Errorf("cards = %+v, esperado ordem alfabética", visao.Cards)
	}
}

func TestCarregarCargoSemConteudos(t *testing.T) {
	controller, _ := novoControllerTeste()

	visao, err := controller.Carregar(context.Background(), "Analista Técnico Legislativo")
	if err != nil {
		t.Fatalf("Carregar: %v", err)
	}

	if visao.Estado != EstadoPronto {
		t.Errorf("estado = %s, cargo vazio não é falha", visao.Estado)
	}
	if visao.Aviso == "" {
		t.Error("esperado aviso neutro de cargo sem conteúdos")
	}
	if visao.Donut != nil || visao.Barras != nil {
		t.Error("cargo vazio não deve ter gráficos")
	}
}

func TestCarregarFalhaDeLeitura(t *testing.T) {
	controller, store := novoControllerTeste()
	ctx := context.Background()

	store.falharLeitura = true
	visao, err := controller.Carregar(ctx, cargoAgente)
	if err == nil {
		t.Fatal("esperado erro de leitura")
	}
	if visao.Estado != EstadoErro || visao.Erro == "" {
		t.Errorf("visao = %+v, esperado estado erro com mensagem", visao)
	}
	if controller.EstadoAtual() != EstadoErro {
		t.Errorf("estado da máquina = %s", controller.EstadoAtual())
	}

	// Recarregar é o caminho de recuperação
	store.falharLeitura = false
	visao, err = controller.Recarregar(ctx, cargoAgente)
	if err != nil {
		t.Fatalf("Recarregar: %v", err)
	}
	if visao.Estado != EstadoPronto {
		t.Errorf("estado após recarregar = %s", visao.Estado)
	}
}

func TestCarregarFalhaPreservaVisaoAnterior(t *testing.T) {
	controller, store := novoControllerTeste()
	ctx := context.Background()

	controller.Carregar(ctx, cargoAgente)
	store.falharLeitura = true

	// Recarregar invalida o cache e a leitura seguinte falha
	visao, _ := controller.Recarregar(ctx, cargoAgente)

	if visao.Estado != EstadoErro {
		t.Fatalf("estado = %s, esperado erro", visao.Estado)
	}
	if visao.Resumo.Total != 3 {
		t.Errorf("resumo anterior perdido: %+v", visao.Resumo)
	}
}

func TestAlternar(t *testing.T) {
	controller, store := novoControllerTeste()
	ctx := context.Background()

	controller.Carregar(ctx, cargoAgente)

	resultado := controller.Alternar(ctx, cargoAgente, 3, true)
	if resultado.ErroInline != "" {
		t.Fatalf("erro inline inesperado: %s", resultado.ErroInline)
	}
	if !resultado.Estudado {
		t.Error("valor persistido deveria ser true")
	}
	if resultado.Resumo.Estudados != 3 || resultado.Resumo.Restantes != 0 {
		t.Errorf("resumo após alternar = %+v, esperado 3/0", resultado.Resumo)
	}
	if resultado.Resumo.Percentual != 100 {
		t.Errorf("percentual = %.1f, esperado 100", resultado.Resumo.Percentual)
	}
	if store.linhas[1].Status != "TRUE" {
		t.Errorf("status gravado = %q, esperado TRUE", store.linhas[1].Status)
	}
	if controller.EstadoAtual() != EstadoPronto {
		t.Errorf("estado final = %s", controller.EstadoAtual())
	}
}

func TestAlternarIdempotente(t *testing.T) {
	controller, _ := novoControllerTeste()
	ctx := context.Background()

	antes, _ := controller.Carregar(ctx, cargoAgente)

	controller.Alternar(ctx, cargoAgente, 3, true)
	controller.Alternar(ctx, cargoAgente, 3, false)

	depois, _ := controller.Carregar(ctx, cargoAgente)
	if depois.Resumo != antes.Resumo {
		t.Errorf("alternar duas vezes deveria restaurar os agregados: antes=%+v depois=%+v",
			antes.Resumo, depois.Resumo)
	}
}

func TestAlternarFalhaDeGravacao(t *testing.T) {
	controller, store := novoControllerTeste()
	ctx := context.Background()

	controller.Carregar(ctx, cargoAgente)
	store.falharEscrita = true

	resultado := controller.Alternar(ctx, cargoAgente, 3, true)

	if resultado.ErroInline == "" {
		t.Fatal("esperado erro inline na falha de gravação")
	}
	if resultado.Estudado {
		t.Error("checkbox deve reverter ao valor anterior (false)")
	}
	if controller.EstadoAtual() != EstadoPronto {
		t.Errorf("estado = %s, falha de gravação mantém pronto", controller.EstadoAtual())
	}
	if store.linhas[1].Status != "false" {
		t.Errorf("status não deveria mudar, got %q", store.linhas[1].Status)
	}

	// Cache não foi invalidado: os agregados seguem os de antes
	visao, _ := controller.Carregar(ctx, cargoAgente)
	if visao.Resumo.Estudados != 2 {
		t.Errorf("agregados mudaram após falha de gravação: %+v", visao.Resumo)
	}
}

func TestAlternarLinhaInexistente(t *testing.T) {
	controller, _ := novoControllerTeste()

	resultado := controller.Alternar(context.Background(), cargoAgente, 99, true)
	if resultado.ErroInline == "" {
		t.Error("esperado erro inline para linha inexistente")
	}
}

func TestTopicos(t *testing.T) {
	controller, _ := novoControllerTeste()
	ctx := context.Background()

	t.Run("todos os tópicos na ordem da planilha", func(t *testing.T) {
		topicos, err := controller.Topicos(ctx, cargoAgente, "Todas")
		if err != nil {
			t.Fatalf("Topicos: %v", err)
		}
		if len(topicos) != 3 {
			t.Fatalf("len = %d, esperado 3", len(topicos))
		}
		if topicos[0].Conteudo != "Proporções" {
			t.Errorf("primeiro = %q", topicos[0].Conteudo)
		}
	})

	t.Run("filtro por disciplina", func(t *testing.T) {
		topicos, _ := controller.Topicos(ctx, cargoAgente, "LÍNGUA PORTUGUESA")
		if len(topicos) != 1 || topicos[0].Conteudo != "Crase" {
			t.Errorf("topicos = %+v", topicos)
		}
	})
}

func TestTopicosLimpaMarkdown(t *testing.T) {
	store := &planilhaFalsa{
		linhas: []models.LinhaBruta{
			{Linha: 2, Cargo: cargoAgente, Disciplina: "RLM", Conteudo: "**Juros** _compostos_", Status: "false"},
		},
	}
	planilha := services.NewPlanilhaService(store, services.NewTTLCache(), time.Minute)
	controller := NewController(planilha, 0)

	topicos, err := controller.Topicos(context.Background(), cargoAgente, "Todas")
	if err != nil {
		t.Fatalf("Topicos: %v", err)
	}
	if topicos[0].Conteudo != "Juros compostos" {
		t.Errorf("conteúdo = %q, esperado sem markdown", topicos[0].Conteudo)
	}
}

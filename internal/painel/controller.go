// Package painel implementa o controlador de visão do dashboard: a máquina
// de estados que orquestra carregar -> filtrar -> agregar -> responder e o
// protocolo de gravação write-through dos checkboxes.
package painel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/estudos-cmg/painel-estudos/internal/models"
	"github.com/estudos-cmg/painel-estudos/internal/services"
	"github.com/estudos-cmg/painel-estudos/internal/sheets"
	"github.com/estudos-cmg/painel-estudos/internal/utils"
)

// Estado da máquina do controlador
type Estado string

const (
	EstadoCarregando Estado = "carregando"
	EstadoPronto     Estado = "pronto"
	EstadoSalvando   Estado = "salvando"
	EstadoErro       Estado = "erro"
)

// Visao é a resposta completa de uma carga do painel para um cargo
type Visao struct {
	Estado Estado        `json:"estado"`
	Cargo  string        `json:"cargo"`
	Resumo models.Resumo `json:"resumo"`

	// Donut geral: estudados vs restantes
	Donut []FatiaDonut `json:"donut"`
	// Barras horizontais por disciplina, percentual crescente
	Barras []models.ResumoDisciplina `json:"barras"`
	// Cards de donut por disciplina, ordem alfabética
	Cards []models.ResumoDisciplina `json:"cards"`

	// Aviso neutro quando o cargo não tem conteúdos
	Aviso string `json:"aviso,omitempty"`
	// Erro bloqueante ou banner de leitura
	Erro string `json:"erro,omitempty"`
}

// FatiaDonut é uma fatia do gráfico geral
type FatiaDonut struct {
	Rotulo string `json:"rotulo"`
	Valor  int    `json:"valor"`
}

// ResultadoAlternar é a resposta do protocolo de gravação. Estudado sempre
// reflete o último valor persistido: o novo em caso de sucesso, o anterior
// quando a gravação falha (o checkbox deve reverter).
type ResultadoAlternar struct {
	LinhaID    int           `json:"linha_id"`
	Estudado   bool          `json:"estudado"`
	Resumo     models.Resumo `json:"resumo"`
	ErroInline string        `json:"erro_inline,omitempty"`
}

// Controller re-executa o pipeline de visão a cada evento do usuário. O
// painel atende uma única sessão; as transições são serializadas por um
// único mutex para o runtime preemptivo não intercalar eventos.
type Controller struct {
	mu       sync.Mutex
	planilha *services.PlanilhaService

	// Espera após gravação bem-sucedida antes de invalidar o cache, para
	// absorver a latência de propagação do backend
	atrasoGravacao time.Duration

	estado Estado
	// Última visão renderizada por cargo, mantida para o banner de erro de
	// leitura não apagar o painel
	ultimaVisao map[string]*Visao
}

// NewController cria o controlador no estado inicial de carga
func NewController(planilha *services.PlanilhaService, atrasoGravacao time.Duration) *Controller {
	return &Controller{
		planilha:       planilha,
		atrasoGravacao: atrasoGravacao,
		estado:         EstadoCarregando,
		ultimaVisao:    make(map[string]*Visao),
	}
}

// EstadoAtual retorna o estado corrente da máquina
func (c *Controller) EstadoAtual() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estado
}

// Carregar executa uma entrada completa no controlador para o cargo.
// O erro retornado carrega o tipo da falha de leitura; a visão devolvida
// junto dele preserva o último painel renderizado sob o banner de erro.
func (c *Controller) Carregar(ctx context.Context, cargo string) (*Visao, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.carregar(ctx, cargo)
}

// Recarregar invalida o cache da tabela e refaz a carga (ação do usuário;
// também é o único caminho de recuperação do estado de erro)
func (c *Controller) Recarregar(ctx context.Context, cargo string) (*Visao, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.planilha.Invalidar()
	return c.carregar(ctx, cargo)
}

// carregar deve ser chamado com o lock tomado
func (c *Controller) carregar(ctx context.Context, cargo string) (*Visao, error) {
	c.estado = EstadoCarregando

	tabela, err := c.planilha.Tabela(ctx)
	if err != nil {
		c.estado = EstadoErro
		return c.visaoDeErro(cargo, err), err
	}

	sub := services.FiltrarPorCargo(tabela, cargo)
	visao := montarVisao(cargo, sub)

	c.estado = EstadoPronto
	c.ultimaVisao[cargo] = visao
	return visao, nil
}

// Alternar executa o protocolo write-through de um checkbox: grava o novo
// valor, espera a propagação, invalida o cache e recarrega. Sem UI otimista:
// a resposta carrega o valor persistido, revertido quando a gravação falha.
func (c *Controller) Alternar(ctx context.Context, cargo string, linhaID int, estudado bool) *ResultadoAlternar {
	c.mu.Lock()
	defer c.mu.Unlock()

	anterior, encontrado := c.valorAtual(ctx, cargo, linhaID)
	if !encontrado {
		return &ResultadoAlternar{
			LinhaID:    linhaID,
			Estudado:   anterior,
			ErroInline: "conteúdo não encontrado na tabela atual",
		}
	}

	c.estado = EstadoSalvando

	if err := c.planilha.Gravar(ctx, linhaID, estudado); err != nil {
		// Gravação falhou: o cache permanece intacto e o checkbox volta
		// ao valor anterior
		c.estado = EstadoPronto
		visao := c.ultimaVisao[cargo]
		resultado := &ResultadoAlternar{
			LinhaID:    linhaID,
			Estudado:   anterior,
			ErroInline: "não foi possível salvar, tente novamente",
		}
		if visao != nil {
			resultado.Resumo = visao.Resumo
		}
		return resultado
	}

	if c.atrasoGravacao > 0 {
		time.Sleep(c.atrasoGravacao)
	}
	c.planilha.Invalidar()

	visao, _ := c.carregar(ctx, cargo)
	return &ResultadoAlternar{
		LinhaID:  linhaID,
		Estudado: estudado,
		Resumo:   visao.Resumo,
	}
}

// valorAtual busca o flag persistido do tópico na tabela corrente
func (c *Controller) valorAtual(ctx context.Context, cargo string, linhaID int) (bool, bool) {
	tabela, err := c.planilha.Tabela(ctx)
	if err != nil {
		return false, false
	}
	for _, t := range tabela {
		if t.LinhaID == linhaID && t.Cargo == cargo {
			return t.Estudado, true
		}
	}
	return false, false
}

// Topicos lista os tópicos do cargo, opcionalmente filtrados por disciplina
// (nome exato ou slug), com o conteúdo livre limpo de markdown
func (c *Controller) Topicos(ctx context.Context, cargo, disciplina string) ([]models.Topico, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tabela, err := c.planilha.Tabela(ctx)
	if err != nil {
		return nil, err
	}

	sub := services.FiltrarPorCargo(tabela, cargo)
	topicos := services.ListarTopicos(sub, disciplina)

	limpos := make([]models.Topico, len(topicos))
	for i, t := range topicos {
		t.Conteudo = utils.LimparConteudo(t.Conteudo)
		limpos[i] = t
	}
	return limpos, nil
}

// visaoDeErro preserva a última visão renderizada sob um banner de erro de
// leitura; sem visão anterior, devolve o painel vazio com o erro bloqueante
func (c *Controller) visaoDeErro(cargo string, err error) *Visao {
	if anterior, ok := c.ultimaVisao[cargo]; ok {
		copia := *anterior
		copia.Estado = EstadoErro
		copia.Erro = mensagemDeErro(err)
		return &copia
	}
	return &Visao{
		Estado: EstadoErro,
		Cargo:  cargo,
		Erro:   mensagemDeErro(err),
	}
}

func mensagemDeErro(err error) string {
	switch {
	case errors.Is(err, sheets.ErrCredenciais):
		return "credenciais da planilha ausentes ou inválidas"
	case errors.Is(err, sheets.ErrNaoEncontrada):
		return "planilha ou aba não encontrada"
	default:
		return "falha ao ler a planilha, recarregue para tentar de novo"
	}
}

// montarVisao deriva todos os agregados exibidos a partir da sub-tabela do
// cargo. Agregados nunca são cacheados, sempre recomputados.
func montarVisao(cargo string, sub []models.Topico) *Visao {
	resumo := services.ResumoGeral(sub)

	visao := &Visao{
		Estado: EstadoPronto,
		Cargo:  cargo,
		Resumo: resumo,
	}

	if resumo.Total == 0 {
		visao.Aviso = "nenhum conteúdo cadastrado para este cargo"
		return visao
	}

	visao.Donut = []FatiaDonut{
		{Rotulo: "Estudados", Valor: resumo.Estudados},
		{Rotulo: "Restantes", Valor: resumo.Restantes},
	}
	visao.Barras = services.PorDisciplina(sub, services.OrdemPercentual)
	visao.Cards = services.PorDisciplina(sub, services.OrdemAlfabetica)
	return visao
}

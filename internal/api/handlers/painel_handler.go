package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estudos-cmg/painel-estudos/internal/constants"
	"github.com/estudos-cmg/painel-estudos/internal/painel"
	"github.com/estudos-cmg/painel-estudos/internal/sheets"
)

// PainelHandler atende a visão principal do dashboard
type PainelHandler struct {
	controller *painel.Controller
}

// NewPainelHandler cria um novo handler do painel
func NewPainelHandler(controller *painel.Controller) *PainelHandler {
	return &PainelHandler{
		controller: controller,
	}
}

// Painel godoc
// @Summary Visão do painel para um cargo
// @Description Retorna métricas, gráfico donut, barras por disciplina e cards do cargo selecionado
// @Tags painel
// @Produce json
// @Param cargo query string false "Cargo do edital" default(Analista Técnico Legislativo)
// @Success 200 {object} painel.Visao
// @Failure 400 {object} map[string]string
// @Failure 502 {object} painel.Visao
// @Failure 503 {object} painel.Visao
// @Router /api/v1/painel [get]
func (h *PainelHandler) Painel(c *gin.Context) {
	cargo, ok := cargoDaRequisicao(c)
	if !ok {
		return
	}

	visao, err := h.controller.Carregar(c.Request.Context(), cargo)
	responderVisao(c, visao, err)
}

// Recarregar godoc
// @Summary Recarrega o painel descartando o cache
// @Description Invalida o cache da tabela e refaz a leitura da planilha
// @Tags painel
// @Produce json
// @Param cargo query string false "Cargo do edital"
// @Success 200 {object} painel.Visao
// @Failure 400 {object} map[string]string
// @Failure 502 {object} painel.Visao
// @Failure 503 {object} painel.Visao
// @Router /api/v1/recarregar [post]
func (h *PainelHandler) Recarregar(c *gin.Context) {
	cargo, ok := cargoDaRequisicao(c)
	if !ok {
		return
	}

	visao, err := h.controller.Recarregar(c.Request.Context(), cargo)
	responderVisao(c, visao, err)
}

// cargoDaRequisicao resolve o cargo do query param contra o conjunto fechado
// do edital; sem parâmetro vale o primeiro cargo
func cargoDaRequisicao(c *gin.Context) (string, bool) {
	cargo := c.DefaultQuery("cargo", constants.CargosValidos[0])
	if !constants.CargoValido(cargo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cargo inválido"})
		return "", false
	}
	return cargo, true
}

// responderVisao mapeia o tipo de falha de leitura para o status HTTP:
// credenciais/planilha ausente bloqueiam (503), falha transitória vira um
// banner sobre a última visão renderizada (502)
func responderVisao(c *gin.Context, visao *painel.Visao, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, visao)
	case errors.Is(err, sheets.ErrCredenciais), errors.Is(err, sheets.ErrNaoEncontrada):
		c.JSON(http.StatusServiceUnavailable, visao)
	default:
		c.JSON(http.StatusBadGateway, visao)
	}
}

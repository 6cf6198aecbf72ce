package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/estudos-cmg/painel-estudos/internal/constants"
	"github.com/estudos-cmg/painel-estudos/internal/painel"
	"github.com/estudos-cmg/painel-estudos/internal/utils"
)

// TopicosHandler atende a lista de conteúdos e o protocolo de alternância
type TopicosHandler struct {
	controller *painel.Controller
	validator  *validator.Validate
}

// NewTopicosHandler cria um novo handler de tópicos
func NewTopicosHandler(controller *painel.Controller) *TopicosHandler {
	return &TopicosHandler{
		controller: controller,
		validator:  validator.New(),
	}
}

// AlternarRequest é o corpo do protocolo de alternância de um checkbox
type AlternarRequest struct {
	Cargo    string `json:"cargo" validate:"required"`
	LinhaID  int    `json:"linha_id" validate:"required,min=2"`
	Estudado *bool  `json:"estudado" validate:"required"`
}

// Listar godoc
// @Summary Lista os conteúdos de um cargo
// @Description Lista os conteúdos na ordem da planilha, opcionalmente filtrados por disciplina (nome ou slug, "Todas" lista tudo)
// @Tags topicos
// @Produce json
// @Param cargo query string false "Cargo do edital"
// @Param disciplina query string false "Disciplina ou slug (ex.: lingua-portuguesa)" default(Todas)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/topicos [get]
func (h *TopicosHandler) Listar(c *gin.Context) {
	cargo, ok := cargoDaRequisicao(c)
	if !ok {
		return
	}

	disciplina := c.DefaultQuery("disciplina", constants.DisciplinaTodas)
	if strings.EqualFold(disciplina, constants.DisciplinaTodas) {
		disciplina = constants.DisciplinaTodas
	} else {
		disciplina = utils.ResolverDisciplina(disciplina, chavesDisciplinas())
	}

	topicos, err := h.controller.Topicos(c.Request.Context(), cargo, disciplina)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erro ao ler a planilha"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cargo":      cargo,
		"disciplina": disciplina,
		"total":      len(topicos),
		"topicos":    topicos,
	})
}

// Alternar godoc
// @Summary Alterna o flag de estudado de um conteúdo
// @Description Grava TRUE/FALSE na coluna Status da linha e recarrega o painel; em falha de gravação o valor retornado é o anterior e o checkbox deve reverter
// @Tags topicos
// @Accept json
// @Produce json
// @Param request body AlternarRequest true "Linha e novo valor"
// @Success 200 {object} painel.ResultadoAlternar
// @Failure 400 {object} map[string]string
// @Router /api/v1/topicos/alternar [post]
func (h *TopicosHandler) Alternar(c *gin.Context) {
	var request AlternarRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Corpo da requisição inválido"})
		return
	}

	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !constants.CargoValido(request.Cargo) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cargo inválido"})
		return
	}

	resultado := h.controller.Alternar(c.Request.Context(), request.Cargo, request.LinhaID, *request.Estudado)
	c.JSON(http.StatusOK, resultado)
}

func chavesDisciplinas() []string {
	disciplinas := make([]string, 0, len(constants.CoresDisciplinas))
	for disciplina := range constants.CoresDisciplinas {
		disciplinas = append(disciplinas, disciplina)
	}
	return disciplinas
}

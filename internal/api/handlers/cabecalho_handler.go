package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estudos-cmg/painel-estudos/internal/services"
	"github.com/estudos-cmg/painel-estudos/internal/utils"
)

// Localizacao exibida no cabeçalho do painel
const Localizacao = "Goiânia - GO"

// CabecalhoHandler atende os dados do cabeçalho: data longa, local e
// temperatura atual
type CabecalhoHandler struct {
	clima *services.ClimaService
}

// NewCabecalhoHandler cria um novo handler de cabeçalho
func NewCabecalhoHandler(clima *services.ClimaService) *CabecalhoHandler {
	return &CabecalhoHandler{
		clima: clima,
	}
}

// CabecalhoResponse é a resposta do cabeçalho
type CabecalhoResponse struct {
	Data        string `json:"data"`
	Localizacao string `json:"localizacao"`
	Temperatura string `json:"temperatura"`
}

// Cabecalho godoc
// @Summary Dados do cabeçalho do painel
// @Description Data por extenso em português, localização e temperatura atual; falha de clima degrada para "N/A" sem erro
// @Tags painel
// @Produce json
// @Success 200 {object} CabecalhoResponse
// @Router /api/v1/cabecalho [get]
func (h *CabecalhoHandler) Cabecalho(c *gin.Context) {
	c.JSON(http.StatusOK, CabecalhoResponse{
		Data:        utils.FormatarDataLonga(time.Now()),
		Localizacao: Localizacao,
		Temperatura: h.clima.Temperatura(c.Request.Context()),
	})
}

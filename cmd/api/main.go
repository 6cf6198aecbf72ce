package main

import (
	"context"
	"log"

	_ "github.com/estudos-cmg/painel-estudos/docs"
	"github.com/estudos-cmg/painel-estudos/internal/api/routes"
	"github.com/estudos-cmg/painel-estudos/internal/config"
	"github.com/estudos-cmg/painel-estudos/internal/observability"
	"github.com/estudos-cmg/painel-estudos/internal/sheets"
)

// @title           Painel de Estudos API
// @version         1.0
// @description     API do painel de progresso de estudos para o concurso da Câmara Municipal de Goiânia, com persistência em planilha Google Sheets

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {

	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	client, err := sheets.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Erro ao abrir a planilha: %v", err)
	}

	r := routes.SetupRouter(cfg, client)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}

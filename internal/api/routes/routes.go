package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/estudos-cmg/painel-estudos/internal/api/handlers"
	"github.com/estudos-cmg/painel-estudos/internal/config"
	"github.com/estudos-cmg/painel-estudos/internal/middleware"
	"github.com/estudos-cmg/painel-estudos/internal/painel"
	"github.com/estudos-cmg/painel-estudos/internal/services"
	"github.com/estudos-cmg/painel-estudos/internal/sheets"
)

func SetupRouter(cfg *config.Config, client *sheets.Client) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	if cfg.TracingEnabled {
		r.Use(middlewares.RequestTiming())
	}

	// Cache da tabela (60 s) e do clima (600 s) vivem no mesmo serviço de
	// cache; o handle da planilha vive pelo processo
	cache := services.NewTTLCache()
	planilhaService := services.NewPlanilhaService(client, cache, cfg.TabelaTTL)
	climaService := services.NewClimaService(cfg.ClimaURL, cfg.ClimaLatitude, cfg.ClimaLongitude,
		cfg.ClimaTimeout, cache, cfg.ClimaTTL)

	controller := painel.NewController(planilhaService, cfg.GravacaoAtraso)

	painelHandler := handlers.NewPainelHandler(controller)
	topicosHandler := handlers.NewTopicosHandler(controller)
	cabecalhoHandler := handlers.NewCabecalhoHandler(climaService)
	healthHandler := handlers.NewHealthHandler(client)

	api := r.Group("/api/v1")
	{
		api.GET("/painel", painelHandler.Painel)
		api.POST("/recarregar", painelHandler.Recarregar)
		api.GET("/topicos", topicosHandler.Listar)
		api.POST("/topicos/alternar", topicosHandler.Alternar)
		api.GET("/cabecalho", cabecalhoHandler.Cabecalho)
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

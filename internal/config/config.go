// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Planilha (Google Sheets)
//   - SHEETS_SPREADSHEET_ID: ID do documento da planilha (obrigatório)
//   - SHEETS_SHEET_NAME: Nome da aba com os conteúdos (default: Conteudos)
//   - GOOGLE_APPLICATION_CREDENTIALS_JSON: Credencial de service account inline (JSON)
//   - GOOGLE_APPLICATION_CREDENTIALS: Caminho do arquivo de credencial
//     (fallback final: arquivo local credentials.json)
//
// ## Cache
//   - CACHE_TABELA_TTL_SECONDS: TTL do cache da tabela de conteúdos (default: 60)
//   - CACHE_CLIMA_TTL_SECONDS: TTL do cache de temperatura (default: 600)
//
// ## Clima
//   - CLIMA_URL: Endpoint da API de clima (default: https://api.open-meteo.com/v1/forecast)
//   - CLIMA_LATITUDE: Latitude para a consulta de temperatura (default: -16.6869, Goiânia)
//   - CLIMA_LONGITUDE: Longitude para a consulta (default: -49.2648)
//   - CLIMA_TIMEOUT_SECONDS: Timeout da consulta de clima (default: 5)
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GRAVACAO_ATRASO_MS: Espera após gravar antes de invalidar o cache,
//     para absorver a propagação do backend (default: 200)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita tracing OpenTelemetry (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SpreadsheetID string
	SheetName     string

	ServerPort string

	// TTLs dos caches (tabela de conteúdos e temperatura)
	TabelaTTL time.Duration
	ClimaTTL  time.Duration

	// Consulta de clima
	ClimaURL       string
	ClimaLatitude  float64
	ClimaLongitude float64
	ClimaTimeout   time.Duration

	// Espera entre gravação e invalidação do cache
	GravacaoAtraso time.Duration

	// Tracing
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		SpreadsheetID: getEnv("SHEETS_SPREADSHEET_ID", ""),
		SheetName:     getEnv("SHEETS_SHEET_NAME", "Conteudos"),

		ServerPort: getEnv("SERVER_PORT", "8080"),

		TabelaTTL: time.Duration(getEnvInt("CACHE_TABELA_TTL_SECONDS", 60)) * time.Second,
		ClimaTTL:  time.Duration(getEnvInt("CACHE_CLIMA_TTL_SECONDS", 600)) * time.Second,

		ClimaURL:       getEnv("CLIMA_URL", "https://api.open-meteo.com/v1/forecast"),
		ClimaLatitude:  getEnvFloat("CLIMA_LATITUDE", -16.6869),
		ClimaLongitude: getEnvFloat("CLIMA_LONGITUDE", -49.2648),
		ClimaTimeout:   time.Duration(getEnvInt("CLIMA_TIMEOUT_SECONDS", 5)) * time.Second,

		GravacaoAtraso: time.Duration(getEnvInt("GRAVACAO_ATRASO_MS", 200)) * time.Millisecond,

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
